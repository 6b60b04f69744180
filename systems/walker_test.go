package systems

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/kickdrive/constants"
)

var humanBounds = Bounds{MinX: 20, MaxX: 380, MinY: 200, MaxY: 550}

func TestWalkerMovesTowardTarget(t *testing.T) {
	w := NewWalker(200, 385, constants.HumanSpeed, humanBounds)
	w.SetTarget(300, 385)

	w.Update(100 * time.Millisecond)
	assert.InDelta(t, 200+2.5*60*0.1, w.X, 1e-9)
	assert.InDelta(t, 385, w.Y, 1e-9)
}

func TestWalkerRunDoublesSpeed(t *testing.T) {
	w := NewWalker(200, 385, constants.HumanSpeed, humanBounds)
	w.Running = true
	w.SetTarget(200, 500)

	w.Update(100 * time.Millisecond)
	assert.InDelta(t, 385+2*2.5*60*0.1, w.Y, 1e-9)
}

func TestWalkerStopsNearTarget(t *testing.T) {
	w := NewWalker(200, 385, constants.HumanSpeed, humanBounds)
	w.SetTarget(204, 385)
	w.Update(time.Second)
	assert.Equal(t, 200.0, w.X)
}

func TestWalkerTargetClamped(t *testing.T) {
	w := NewWalker(200, 385, constants.HumanSpeed, humanBounds)
	w.SetTarget(-50, 900)
	assert.Equal(t, 20.0, w.TargetX)
	assert.Equal(t, 550.0, w.TargetY)

	for i := 0; i < 200; i++ {
		w.Update(50 * time.Millisecond)
	}
	assert.LessOrEqual(t, math.Hypot(w.X-20, w.Y-550), constants.ArriveDistance)
	assert.GreaterOrEqual(t, w.X, 20.0)
	assert.LessOrEqual(t, w.Y, 550.0)
}

func TestWalkerKickPose(t *testing.T) {
	w := NewWalker(200, 385, constants.HumanSpeed, humanBounds)
	assert.False(t, w.Kicking())

	w.Kick()
	assert.True(t, w.Kicking())
	w.Update(200 * time.Millisecond)
	assert.True(t, w.Kicking())

	// Re-kick restarts the pose
	w.Kick()
	w.Update(200 * time.Millisecond)
	assert.True(t, w.Kicking())
	w.Update(100 * time.Millisecond)
	assert.False(t, w.Kicking())
}
