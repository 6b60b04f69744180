package scenes

import (
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

var titleStart = newButton("start", "Start", W/2-80, H*0.8, 160, 55, "#ff5722")

// Title shows the animated splash
type Title struct {
	elapsed float64
}

func (t *Title) Enter(s *engine.Session, p engine.Params) { t.elapsed = 0 }

func (t *Title) Update(s *engine.Session, dt time.Duration) { t.elapsed += dt.Seconds() }

func (t *Title) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#1a237e")
	surf.FillRect(0, H/2, W, H/2, "#4a148c")

	for i := 0; i < 5; i++ {
		x := math.Mod(t.elapsed*60+float64(i)*120, W+200) - 100
		surf.DrawText(content.MsgChant, x, 100+float64(i)*80, render.TextStyle{Color: "#5c5c8a"})
	}

	carX := math.Mod(t.elapsed*100, W+100) - 50
	bikeX := math.Mod(t.elapsed*130+200, W+100) - 50
	surf.DrawGlyph("🚗", carX, H*0.45, 40)
	surf.DrawGlyph("🏍️", bikeX, H*0.55, 36)

	sheepY := H*0.7 + math.Sin(t.elapsed*1.5)*10
	surf.DrawGlyph("🐑", W*0.2, sheepY, 30)
	surf.DrawGlyph("🐑", W*0.5, sheepY+5, 26)
	surf.DrawGlyph("🐑", W*0.8, sheepY-3, 28)

	render.DrawMessage(surf, "KICKDRIVE", H*0.2, render.ColorGold)
	render.DrawMessage(surf, "~ kick your way to riches ~", H*0.28, "#ff9800")

	drawButtons(surf, []button{titleStart})
}

// OnPointerDown starts the tutorial from the start button
func (t *Title) OnPointerDown(s *engine.Session, x, y float64) {
	if _, ok := hitButton([]button{titleStart}, x, y); ok {
		s.Audio.SelectBlip()
		s.ChangeScene(engine.SceneTutorial, engine.Params{})
	}
}

func (t *Title) OnPointerUp(s *engine.Session) {}

func (t *Title) OnKeyDown(s *engine.Session, key string) {
	if input.IsConfirm(key) {
		s.ChangeScene(engine.SceneTutorial, engine.Params{})
	}
}

func (t *Title) OnKeyUp(s *engine.Session, key string) {}
