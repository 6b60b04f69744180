package scenes

import (
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/render"
)

// Transform plays the body-swap animation before a roam scene
type Transform struct {
	target  content.Form
	elapsed time.Duration
	done    bool
}

// Target is the form being transformed into
func (t *Transform) Target() content.Form { return t.target }

// Enter records the form to become and restarts the animation
func (t *Transform) Enter(s *engine.Session, p engine.Params) {
	t.target = p.Form
	t.elapsed = 0
	t.done = false
}

// Update hands over to the target form scene once the animation ends
func (t *Transform) Update(s *engine.Session, dt time.Duration) {
	if t.done {
		return
	}
	t.elapsed += dt
	if t.elapsed <= constants.TransformDuration {
		return
	}
	t.done = true
	if t.target == content.FormSheep {
		s.ChangeScene(engine.SceneSheep, engine.Params{})
		return
	}
	s.ChangeScene(engine.SceneHuman, engine.Params{})
}

func (t *Transform) Render(s *engine.Session, surf render.Surface) {
	sec := t.elapsed.Seconds()
	surf.FillBackground(render.Gradient("#333333", "#000000", math.Min(1, sec)).Hex())

	from, to, msg := "🚗", "🏃", "You became human! ✨"
	if t.target == content.FormSheep {
		from, to, msg = "🏃", "🐑", "You became a sheep! 🐑✨"
	}
	glyph := from
	if sec >= 1 {
		glyph = to
	}
	surf.DrawGlyph(glyph, W/2, H/2, 30+sec*25)

	for i := 0; i < 8; i++ {
		angle := math.Mod(sec*3+float64(i)*0.8, math.Pi*2)
		radius := 60 + sec*30
		surf.DrawGlyph("✨", W/2+math.Cos(angle)*radius, H/2+math.Sin(angle)*radius, 18)
	}
	render.DrawMessage(surf, msg, H/2+80, render.ColorGold)
}

func (t *Transform) OnPointerDown(s *engine.Session, x, y float64) {}
func (t *Transform) OnPointerUp(s *engine.Session) {}
func (t *Transform) OnKeyDown(s *engine.Session, key string) {}
func (t *Transform) OnKeyUp(s *engine.Session, key string) {}
