package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
)

const frame = 16 * time.Millisecond

// safeLaneRandom spawns SUVs in lane 0, clear of a centred player
func safeLaneRandom() *core.SequenceRandom {
	return &core.SequenceRandom{Floats: []float64{0}, Ints: []int{0}}
}

func suv() content.ObstacleKind { return content.Obstacles[0] }

func TestRaceStartsRunningCentred(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())
	assert.Equal(t, RaceRunning, r.Phase())
	assert.Equal(t, constants.BaseWidth/2, r.PlayerX)
	assert.Equal(t, 0.0, r.Distance)
	assert.Empty(t, r.Obstacles)
	assert.Equal(t, 120.0, LaneX(0))
	assert.Equal(t, 200.0, LaneX(1))
	assert.Equal(t, 280.0, LaneX(2))
}

func TestRaceDistanceIntegratesSpeed(t *testing.T) {
	v := content.MustVehicle(content.VehicleBike)
	r := NewRace(v, safeLaneRandom())

	const ticks = 30
	for i := 0; i < ticks; i++ {
		r.Update(frame)
	}
	assert.InDelta(t, v.Speed*60*frame.Seconds()*ticks, r.Distance, 1e-6)
	assert.Equal(t, RaceRunning, r.Phase())
}

func TestRaceCollision(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())

	inside := Obstacle{Kind: suv(), X: r.PlayerX + 5, Y: PlayerY() - 5}
	assert.True(t, r.Collides(inside))

	// Car half-width 20 plus SUV half-width 18
	touching := Obstacle{Kind: suv(), X: r.PlayerX + 38, Y: PlayerY()}
	assert.False(t, r.Collides(touching))

	adjacentLane := Obstacle{Kind: suv(), X: LaneX(0), Y: PlayerY()}
	assert.False(t, r.Collides(adjacentLane))
}

func TestRaceCrashAndRecover(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())
	for i := 0; i < 10; i++ {
		r.Update(frame)
	}
	require.Greater(t, r.Distance, 0.0)

	r.Obstacles = append(r.Obstacles, Obstacle{Kind: suv(), X: r.PlayerX, Y: PlayerY() - 10})
	r.Update(frame)

	assert.Equal(t, RaceCrashed, r.Phase())
	assert.Equal(t, "crashed", r.PhaseName())
	assert.Equal(t, []RaceEvent{RaceEventCrashed}, r.DrainEvents())
	distance := r.Distance

	// Frozen while crashed
	r.Update(time.Second)
	assert.Equal(t, distance, r.Distance)
	assert.Equal(t, RaceCrashed, r.Phase())

	r.Update(time.Second)
	assert.Equal(t, RaceRunning, r.Phase())
	assert.Equal(t, []RaceEvent{RaceEventRestarted}, r.DrainEvents())
	assert.Equal(t, 0.0, r.Distance)
	assert.Empty(t, r.Obstacles)
	assert.Equal(t, constants.BaseWidth/2, r.PlayerX)
	assert.Equal(t, r.PlayerX, r.TargetX)
}

func TestRaceReachesGoal(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())

	for i := 0; i < 400 && r.Phase() == RaceRunning; i++ {
		r.Update(50 * time.Millisecond)
	}
	require.Equal(t, RaceGoal, r.Phase())
	assert.GreaterOrEqual(t, r.Distance, constants.RaceGoal)
	assert.Equal(t, 1.0, r.Progress())
	assert.Contains(t, r.DrainEvents(), RaceEventGoal)

	assert.False(t, r.GoalDwellDone())
	r.Update(2 * time.Second)
	assert.False(t, r.GoalDwellDone())
	r.Update(500 * time.Millisecond)
	assert.True(t, r.GoalDwellDone())
}

func TestRaceSteering(t *testing.T) {
	v := content.MustVehicle(content.VehicleCar)
	r := NewRace(v, safeLaneRandom())

	r.SetKey("ArrowRight", true)
	r.Update(frame)
	assert.InDelta(t, 200+v.Speed*1.8, r.TargetX, 1e-9)
	assert.InDelta(t, 200+v.Speed*1.8*0.2, r.PlayerX, 1e-9)

	for i := 0; i < 100; i++ {
		r.Update(time.Millisecond)
	}
	assert.Equal(t, RoadRight()-constants.SteerMargin, r.TargetX)

	// Keys override the pointer side
	r.SetPointerSide(1)
	r.SetKey("ArrowRight", false)
	r.SetKey("a", true)
	before := r.TargetX
	r.Update(time.Millisecond)
	assert.Less(t, r.TargetX, before)

	// Right wins when both directions are held
	r.SetKey("d", true)
	before = r.TargetX
	r.Update(time.Millisecond)
	assert.Greater(t, r.TargetX, before)
	r.SetKey("d", false)

	r.SetKey("a", false)
	r.SetPointerSide(0)
	before = r.TargetX
	r.Update(time.Millisecond)
	assert.Equal(t, before, r.TargetX)
}

func TestRaceChaserTracksPlayer(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())
	police := content.Obstacles[len(content.Obstacles)-1]
	require.True(t, police.Chaser)

	r.Obstacles = append(r.Obstacles,
		Obstacle{Kind: police, X: LaneX(0), Y: 0},
		Obstacle{Kind: suv(), X: LaneX(2), Y: 0},
	)
	r.Update(frame)

	assert.InDelta(t, LaneX(0)+(200-LaneX(0))*0.02, r.Obstacles[0].X, 1e-9)
	assert.Equal(t, LaneX(2), r.Obstacles[1].X)
}

func TestRaceCullsPassedObstacles(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())
	r.Obstacles = append(r.Obstacles, Obstacle{Kind: suv(), X: LaneX(0), Y: constants.BaseHeight + 99})
	r.Update(frame)
	assert.Empty(t, r.Obstacles)
}

func TestRaceSpawnCadence(t *testing.T) {
	r := NewRace(content.MustVehicle(content.VehicleCar), safeLaneRandom())

	r.Update(time.Second)
	assert.Empty(t, r.Obstacles)
	r.Update(300 * time.Millisecond)
	require.Len(t, r.Obstacles, 1)
	assert.Equal(t, 0, r.Obstacles[0].Lane)
	assert.Equal(t, LaneX(0), r.Obstacles[0].X)
	// Spawned this tick, then moved with the rest of the field
	assert.Greater(t, r.Obstacles[0].Y, constants.ObstacleSpawnY)
}

func TestPickObstacleWeighted(t *testing.T) {
	tests := []struct {
		roll  float64
		glyph string
	}{
		{0, "🚙"},
		{0.4, "🚙"},
		{0.41, "🚕"},
		{0.75, "🚌"},
		{0.9, "🚛"},
		{0.99, "🚓"},
	}
	for _, tt := range tests {
		got := pickObstacle(&core.SequenceRandom{Floats: []float64{tt.roll}})
		assert.Equal(t, tt.glyph, got.Glyph, "roll %v", tt.roll)
	}
}
