package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/engine/fsm"
	"github.com/lixenwraith/kickdrive/input"
)

// Race phases
const (
	raceRoot fsm.StateID = iota + 1
	RaceRunning
	RaceCrashed
	RaceGoal
)

// RaceEvent reports a phase change to the owning scene
type RaceEvent int

const (
	RaceEventCrashed RaceEvent = iota + 1
	RaceEventGoal
	RaceEventRestarted
)

// Obstacle is a live traffic vehicle on the road
type Obstacle struct {
	Kind content.ObstacleKind
	X, Y float64
	Lane int
}

// Race simulates lane traffic, steering and collision for one vehicle
type Race struct {
	vehicle content.Vehicle
	rng     core.Random
	machine *fsm.Machine[*Race]

	PlayerX    float64
	TargetX    float64
	Distance   float64
	RoadOffset float64
	Obstacles  []Obstacle

	// ShakeX/ShakeY offset the camera while crashed
	ShakeX, ShakeY float64

	spawnTimer  float64
	pointerSide int
	keys        map[string]bool

	dt       float64
	collided bool
	events   []RaceEvent
}

// RoadLeft is the left edge of the drivable road
func RoadLeft() float64 { return constants.RoadMargin }

// RoadRight is the right edge of the drivable road
func RoadRight() float64 { return constants.BaseWidth - constants.RoadMargin }

// LaneX returns the centre x of lane
func LaneX(lane int) float64 {
	return RoadLeft() + constants.LaneWidth*(float64(lane)+0.5)
}

// PlayerY is the fixed vertical position of the player vehicle
func PlayerY() float64 { return constants.BaseHeight * constants.PlayerYRatio }

// NewRace starts a race for vehicle in the running phase
func NewRace(vehicle content.Vehicle, rng core.Random) *Race {
	r := &Race{
		vehicle: vehicle,
		rng:     rng,
		keys:    make(map[string]bool),
	}
	r.resetTrack()

	m := fsm.NewMachine[*Race]()
	m.AddState(raceRoot, "race", fsm.StateNone)
	m.AddState(RaceRunning, "running", raceRoot).Tick((*Race).stepRunning)
	m.AddState(RaceCrashed, "crashed", raceRoot).
		Enter(func(r *Race) { r.emit(RaceEventCrashed) }).
		Tick((*Race).stepCrashed).
		Exit(func(r *Race) {
			r.resetTrack()
			r.emit(RaceEventRestarted)
		})
	m.AddState(RaceGoal, "goal", raceRoot).
		Enter(func(r *Race) { r.emit(RaceEventGoal) })

	// Collision is checked before the goal within one tick
	m.AddTransition(RaceRunning, fsm.Transition[*Race]{
		TargetID: RaceCrashed,
		Guard:    func(r *Race) bool { return r.collided },
	})
	m.AddTransition(RaceRunning, fsm.Transition[*Race]{
		TargetID: RaceGoal,
		Guard: fsm.All(
			fsm.Not(func(r *Race) bool { return r.collided }),
			func(r *Race) bool { return r.Distance >= constants.RaceGoal },
		),
	})
	m.AddTransition(RaceCrashed, fsm.Transition[*Race]{
		TargetID: RaceRunning,
		Guard:    m.TimeExceeds(constants.CrashRecovery),
	})

	// Graph is static; errors here are programming mistakes
	if err := m.CompilePaths(); err != nil {
		panic(err)
	}
	if err := m.Init(r, RaceRunning); err != nil {
		panic(err)
	}
	r.machine = m
	return r
}

// Vehicle returns the raced vehicle
func (r *Race) Vehicle() content.Vehicle { return r.vehicle }

// Phase returns the active phase
func (r *Race) Phase() fsm.StateID { return r.machine.State() }

// PhaseName returns the active phase name for logs
func (r *Race) PhaseName() string { return r.machine.StateName() }

// PhaseTime returns time spent in the active phase
func (r *Race) PhaseTime() time.Duration { return r.machine.TimeInState() }

// Progress is the goal completion fraction in [0, 1]
func (r *Race) Progress() float64 {
	return core.ClampF(r.Distance/constants.RaceGoal, 0, 1)
}

// GoalDwellDone reports the finish celebration has elapsed
func (r *Race) GoalDwellDone() bool {
	return r.machine.InState(RaceGoal) && r.PhaseTime() >= constants.GoalDwell
}

// SetPointerSide steers toward -1 (left), +1 (right) or 0 (released)
func (r *Race) SetPointerSide(side int) {
	r.pointerSide = side
}

// SetKey records a held or released steering key
func (r *Race) SetKey(key string, down bool) {
	if down {
		r.keys[key] = true
	} else {
		delete(r.keys, key)
	}
}

// Update advances the race by dt
func (r *Race) Update(dt time.Duration) {
	r.dt = dt.Seconds()
	r.machine.Update(r, dt)
}

// DrainEvents returns and clears pending phase events
func (r *Race) DrainEvents() []RaceEvent {
	ev := r.events
	r.events = nil
	return ev
}

func (r *Race) emit(e RaceEvent) {
	r.events = append(r.events, e)
}

func (r *Race) resetTrack() {
	r.Distance = 0
	r.Obstacles = r.Obstacles[:0]
	r.PlayerX = constants.BaseWidth / 2
	r.TargetX = r.PlayerX
	r.ShakeX, r.ShakeY = 0, 0
	r.collided = false
}

func (r *Race) steerDirection() float64 {
	dir := r.pointerSide
	left, right := false, false
	for key := range r.keys {
		left = left || input.IsLeft(key)
		right = right || input.IsRight(key)
	}
	// Right wins when both are held
	switch {
	case right:
		dir = 1
	case left:
		dir = -1
	}
	return float64(dir)
}

func (r *Race) stepRunning() {
	dt := r.dt
	speed := r.vehicle.Speed

	r.TargetX += r.steerDirection() * speed * constants.SteerGain
	r.TargetX = core.ClampF(r.TargetX, RoadLeft()+constants.SteerMargin, RoadRight()-constants.SteerMargin)
	r.PlayerX = core.Ease(r.PlayerX, r.TargetX, constants.SteerEase)

	r.Distance += speed * constants.DistancePerSpeed * dt
	r.RoadOffset = math.Mod(r.RoadOffset+speed*constants.StripePerSpeed*dt, constants.StripePeriod)

	interval := math.Max(constants.SpawnIntervalMin, constants.SpawnIntervalStart-r.Distance/constants.SpawnRampDistance)
	r.spawnTimer += dt
	if r.spawnTimer > interval {
		r.spawnObstacle()
		r.spawnTimer = 0
	}

	kept := r.Obstacles[:0]
	for _, o := range r.Obstacles {
		o.Y += (speed*constants.DistancePerSpeed + o.Kind.BaseSpeed*constants.DistancePerSpeed) * dt
		if o.Kind.Chaser {
			o.X = core.Ease(o.X, r.PlayerX, constants.ChaserEase)
		}
		if o.Y < constants.BaseHeight+constants.ObstacleCullPast {
			kept = append(kept, o)
		}
	}
	r.Obstacles = kept

	for _, o := range r.Obstacles {
		if r.Collides(o) {
			r.collided = true
			return
		}
	}
}

func (r *Race) stepCrashed() {
	fade := math.Max(0, 1-r.PhaseTime().Seconds())
	r.ShakeX = (r.rng.Float64() - 0.5) * 10 * fade
	r.ShakeY = (r.rng.Float64() - 0.5) * 10 * fade
}

// Collides tests the player hitbox against an obstacle
func (r *Race) Collides(o Obstacle) bool {
	return core.Overlap(
		r.PlayerX, PlayerY(), r.vehicle.HitWidth, r.vehicle.HitHeight,
		o.X, o.Y, o.Kind.Width, o.Kind.Height,
	)
}

func (r *Race) spawnObstacle() {
	kind := pickObstacle(r.rng)
	lane := r.rng.Intn(constants.RoadLanes)
	r.Obstacles = append(r.Obstacles, Obstacle{
		Kind: kind,
		X:    LaneX(lane),
		Y:    constants.ObstacleSpawnY,
		Lane: lane,
	})
}

// pickObstacle performs a weighted draw over the obstacle catalog
func pickObstacle(rng core.Random) content.ObstacleKind {
	roll := rng.Float64() * content.TotalObstacleWeight()
	for _, o := range content.Obstacles {
		roll -= o.SpawnWeight
		if roll <= 0 {
			return o
		}
	}
	return content.Obstacles[len(content.Obstacles)-1]
}
