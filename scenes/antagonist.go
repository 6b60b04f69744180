package scenes

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/systems"
)

var antagonistKick = newButton("kick", "🦶 Kick!", W/2-60, H-80, 120, 50, "#ff5722")

// Antagonist runs the pursuit by that person
type Antagonist struct {
	enc      *systems.Encounter
	reported bool
	left     bool
}

// Encounter exposes the running pursuit
func (a *Antagonist) Encounter() *systems.Encounter { return a.enc }

// Enter starts a fresh pursuit against the form recorded on the session
func (a *Antagonist) Enter(s *engine.Session, p engine.Params) {
	a.enc = systems.NewEncounter(s.AntagonistForm, s.Economy)
	a.reported = false
	a.left = false
	s.Audio.AntagonistDrone()
}

// Update logs the outcome once and routes out after the result display
func (a *Antagonist) Update(s *engine.Session, dt time.Duration) {
	if a.left {
		return
	}
	a.enc.Update(dt)

	if a.enc.Outcome() != systems.OutcomePending && !a.reported {
		a.reported = true
		s.Log.WithFields(logrus.Fields{
			"outcome": a.enc.Outcome(),
			"by_kick": a.enc.DefeatedByKick(),
			"lost":    a.enc.MoneyLost(),
			"form":    a.enc.Form(),
			"phase":   a.enc.PhaseName(),
		}).Info("encounter resolved")
	}

	if !a.enc.Done() {
		return
	}
	a.left = true
	if a.enc.Outcome() == systems.OutcomeCaught {
		s.ChangeScene(engine.ScenePostEncounter, engine.Params{})
		return
	}
	s.AntagonistTriggered = false
	if s.AntagonistForm == content.FormSheep {
		s.ChangeScene(engine.SceneSheep, engine.Params{})
		return
	}
	s.ChangeScene(engine.SceneHuman, engine.Params{})
}

func (a *Antagonist) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#1a1a2e")
	e := a.enc

	switch e.Phase() {
	case systems.EncounterWarning:
		render.DrawMessage(surf, content.MsgAntagonistComes, H*0.3, render.ColorDanger)
		surf.DrawGlyph("👤", W/2, H*0.55, 60+e.PhaseTime().Seconds()*10)

	case systems.EncounterChase:
		surf.DrawGlyph(e.Form().Glyph(), e.PlayerX, e.PlayerY, 36)
		surf.DrawGlyph("👤", e.AntagonistX, e.AntagonistY, 50)
		surf.DrawText(content.MsgAntagonistSays, e.AntagonistX, e.AntagonistY-35,
			render.TextStyle{Color: render.ColorDanger, Bold: true, Align: render.AlignCenter})
		render.DrawMessage(surf, "Click to run! Kick to fight back!", 30, render.ColorText)
		drawButtons(surf, []button{antagonistKick})

	default:
		if e.Outcome() == systems.OutcomeCaught {
			render.DrawMessage(surf, content.MsgAllTaken, H*0.4, render.ColorDanger)
			surf.DrawGlyph("👤", W/2, H*0.55, 50)
			surf.DrawGlyph("💰", W/2+30, H*0.55, 30)
		} else {
			render.DrawMessage(surf, content.MsgAntagonistGone, H*0.4, render.ColorGood)
			surf.DrawGlyph("💪", W/2, H*0.55, 50)
		}
	}
}

func (a *Antagonist) kick(s *engine.Session) {
	if a.enc.Kick() != systems.KickIgnored {
		s.Audio.KickThud()
	}
}

// OnPointerDown kicks on the button, otherwise moves the player
func (a *Antagonist) OnPointerDown(s *engine.Session, x, y float64) {
	if a.enc.Phase() != systems.EncounterChase {
		return
	}
	if _, ok := hitButton([]button{antagonistKick}, x, y); ok {
		a.kick(s)
		return
	}
	a.enc.MovePlayer(x, y)
}

func (a *Antagonist) OnPointerUp(s *engine.Session) {}

// OnKeyDown kicks on Space
func (a *Antagonist) OnKeyDown(s *engine.Session, key string) {
	if key == input.KeySpace {
		a.kick(s)
	}
}

func (a *Antagonist) OnKeyUp(s *engine.Session, key string) {}
