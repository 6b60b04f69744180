package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/core"
)

// Bounds is an inclusive axis-aligned rectangle in canvas units
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// Clamp pulls a point inside the rectangle
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return core.ClampF(x, b.MinX, b.MaxX), core.ClampF(y, b.MinY, b.MaxY)
}

// Walker is the player avatar in the roaming scenes
type Walker struct {
	X, Y             float64
	TargetX, TargetY float64
	Speed            float64
	Running          bool
	Bounds           Bounds

	kickTimer time.Duration
}

// NewWalker places a walker at rest at (x, y)
func NewWalker(x, y, speed float64, bounds Bounds) *Walker {
	return &Walker{X: x, Y: y, TargetX: x, TargetY: y, Speed: speed, Bounds: bounds}
}

// SetTarget clamps the destination into the playable rectangle
func (w *Walker) SetTarget(x, y float64) {
	w.TargetX, w.TargetY = w.Bounds.Clamp(x, y)
}

// Kick starts or restarts the kick pose
func (w *Walker) Kick() {
	w.kickTimer = constants.KickPose
}

// Kicking reports whether the kick pose is showing
func (w *Walker) Kicking() bool {
	return w.kickTimer > 0
}

// Update steps toward the target and decays the kick pose
func (w *Walker) Update(dt time.Duration) {
	dx := w.TargetX - w.X
	dy := w.TargetY - w.Y
	dist := math.Hypot(dx, dy)

	if dist > constants.ArriveDistance {
		speed := w.Speed
		if w.Running {
			speed *= constants.RunMultiplier
		}
		step := speed * constants.MoveScale * dt.Seconds()
		w.X += dx / dist * step
		w.Y += dy / dist * step
	}
	w.X, w.Y = w.Bounds.Clamp(w.X, w.Y)

	if w.kickTimer > 0 {
		w.kickTimer -= dt
		if w.kickTimer < 0 {
			w.kickTimer = 0
		}
	}
}
