package scenes

import (
	"fmt"
	"time"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

// Tutorial pages through the how-to-play texts
type Tutorial struct {
	page int
}

func (t *Tutorial) last() bool { return t.page >= len(content.TutorialTexts)-1 }

func (t *Tutorial) next() button {
	if t.last() {
		return newButton("next", "Got it!", W/2-70, H-120, 140, 50, "#ff5722")
	}
	return newButton("next", "Next →", W/2-70, H-120, 140, 50, "#4caf50")
}

// Page returns the zero-based page index
func (t *Tutorial) Page() int { return t.page }

// Enter rewinds to the first page
func (t *Tutorial) Enter(s *engine.Session, p engine.Params) { t.page = 0 }

func (t *Tutorial) Update(s *engine.Session, dt time.Duration) {}

func (t *Tutorial) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#263238")
	surf.FillRect(30, 80, W-60, 300, "#ffffff")
	surf.DrawText(content.TutorialTexts[t.page], W/2, 230, render.TextStyle{Color: "#333333", Bold: true, Align: render.AlignCenter})
	surf.DrawText(fmt.Sprintf("%d / %d", t.page+1, len(content.TutorialTexts)), W/2, 400,
		render.TextStyle{Color: render.ColorMuted, Align: render.AlignCenter})
	drawButtons(surf, []button{t.next()})
}

func (t *Tutorial) advance(s *engine.Session) {
	s.Audio.SelectBlip()
	if t.last() {
		s.ChangeScene(engine.SceneVehicleSelect, engine.Params{})
		return
	}
	t.page++
}

func (t *Tutorial) OnPointerDown(s *engine.Session, x, y float64) {
	if _, ok := hitButton([]button{t.next()}, x, y); ok {
		t.advance(s)
	}
}

func (t *Tutorial) OnPointerUp(s *engine.Session) {}

func (t *Tutorial) OnKeyDown(s *engine.Session, key string) {
	if input.IsConfirm(key) {
		t.advance(s)
	}
}

func (t *Tutorial) OnKeyUp(s *engine.Session, key string) {}
