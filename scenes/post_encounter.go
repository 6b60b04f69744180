package scenes

import (
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/render"
)

var (
	montageBackground = render.ParseHex("#0a0a0a", render.RGBBlack)
	montageChant      = render.ParseHex(render.ColorDanger, render.RGBWhite)
	montageRecovery   = render.ParseHex(render.ColorGood, render.RGBWhite)
)

type chantLine struct {
	x, y  float64
	alpha float64
}

// PostEncounter is the defeat montage after being caught
type PostEncounter struct {
	elapsed   time.Duration
	lines     []chantLine
	recovered bool
	left      bool
}

// Lines returns how many chant lines have appeared
func (pe *PostEncounter) Lines() int { return len(pe.lines) }

// Recovered reports the montage has moved to the recovery message
func (pe *PostEncounter) Recovered() bool { return pe.recovered }

func (pe *PostEncounter) Enter(s *engine.Session, p engine.Params) {
	pe.elapsed = 0
	pe.lines = pe.lines[:0]
	pe.recovered = false
	pe.left = false
}

// Update runs the chant montage, then the recovery message, then returns to town
func (pe *PostEncounter) Update(s *engine.Session, dt time.Duration) {
	if pe.left {
		return
	}
	pe.elapsed += dt

	if pe.elapsed < constants.MontageChantDuration && !pe.recovered {
		if core.Chance(s.Rand, constants.MontageTextChance) {
			pe.lines = append(pe.lines, chantLine{
				x:     core.RangeF(s.Rand, 0, W),
				y:     core.RangeF(s.Rand, 0, H),
				alpha: 1,
			})
		}
		if core.Chance(s.Rand, constants.MontageChantChance) {
			s.Audio.VictoryChant()
		}
	}
	if pe.elapsed > constants.MontageChantDuration {
		pe.recovered = true
	}
	if pe.recovered && pe.elapsed > constants.MontageTotalDuration {
		pe.left = true
		s.AntagonistTriggered = false
		s.ChangeScene(engine.SceneHuman, engine.Params{})
		return
	}

	fade := dt.Seconds() * 0.1
	for i := range pe.lines {
		pe.lines[i].alpha = max(0, pe.lines[i].alpha-fade)
	}
}

func (pe *PostEncounter) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground(montageBackground.Hex())
	for _, l := range pe.lines {
		color := montageBackground.Blend(montageChant, l.alpha).Hex()
		surf.DrawText(content.MsgChant, l.x, l.y, render.TextStyle{Color: color, Bold: true, Align: render.AlignCenter})
	}

	if !pe.recovered {
		glyph := "🚶"
		if s.AntagonistForm == content.FormSheep {
			glyph = "🐑"
		}
		surf.DrawGlyph(glyph, W/2, H/2, 40)
		render.DrawMessage(surf, content.MsgChant+"!", H*0.35, render.ColorDanger)
		return
	}
	// Recovery text fades in over its first second
	in := (pe.elapsed - constants.MontageChantDuration).Seconds()
	render.DrawMessage(surf, content.MsgRecovery, H*0.4, montageBackground.Blend(montageRecovery, in).Hex())
	surf.DrawGlyph("💪", W/2, H*0.55, 40)
}

func (pe *PostEncounter) OnPointerDown(s *engine.Session, x, y float64) {}
func (pe *PostEncounter) OnPointerUp(s *engine.Session) {}
func (pe *PostEncounter) OnKeyDown(s *engine.Session, key string) {}
func (pe *PostEncounter) OnKeyUp(s *engine.Session, key string) {}
