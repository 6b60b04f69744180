package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

// ErrUnknownScene is returned when a transition names an unregistered scene
var ErrUnknownScene = errors.New("unknown scene")

// Director owns the scene registry and the single active scene
type Director struct {
	scenes     map[string]Scene
	active     Scene
	activeName string
	changes    uint64
}

// NewDirector creates an empty director
func NewDirector() *Director {
	return &Director{scenes: make(map[string]Scene)}
}

// Register adds or replaces a scene under name
func (d *Director) Register(name string, sc Scene) {
	d.scenes[name] = sc
}

// Registered reports whether name has a scene
func (d *Director) Registered(name string) bool {
	_, ok := d.scenes[name]
	return ok
}

// Active returns the active scene name, empty before the first transition
func (d *Director) Active() string {
	return d.activeName
}

// Current returns the active scene, nil before the first transition
func (d *Director) Current() Scene {
	return d.active
}

// Changes counts successful scene transitions, re-entries included
func (d *Director) Changes() uint64 {
	return d.changes
}

// ChangeScene activates name and runs its entry hook
// Unknown names leave the active scene untouched; the previous scene is not torn down
func (d *Director) ChangeScene(s *Session, name string, p Params) error {
	sc, ok := d.scenes[name]
	if !ok {
		return errors.Wrapf(ErrUnknownScene, "change to %q", name)
	}
	d.active = sc
	d.activeName = name
	d.changes++
	sc.Enter(s, p)
	return nil
}

func (d *Director) Update(s *Session, dt time.Duration) {
	if d.active != nil {
		d.active.Update(s, dt)
	}
}

func (d *Director) Render(s *Session, surf render.Surface) {
	if d.active != nil {
		d.active.Render(s, surf)
	}
}

func (d *Director) PointerDown(s *Session, x, y float64) {
	if d.active != nil {
		d.active.OnPointerDown(s, x, y)
	}
}

func (d *Director) PointerUp(s *Session) {
	if d.active != nil {
		d.active.OnPointerUp(s)
	}
}

func (d *Director) KeyDown(s *Session, key string) {
	if d.active != nil {
		d.active.OnKeyDown(s, key)
	}
}

func (d *Director) KeyUp(s *Session, key string) {
	if d.active != nil {
		d.active.OnKeyUp(s, key)
	}
}

// Dispatch routes a translated input event to the matching hook
func (d *Director) Dispatch(s *Session, ev input.Event) {
	switch ev.Kind {
	case input.PointerDown:
		d.PointerDown(s, ev.X, ev.Y)
	case input.PointerUp:
		d.PointerUp(s)
	case input.KeyDown:
		d.KeyDown(s, ev.Key)
	case input.KeyUp:
		d.KeyUp(s, ev.Key)
	}
}
