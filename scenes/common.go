package scenes

import (
	"fmt"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/systems"
)

const (
	W = constants.BaseWidth
	H = constants.BaseHeight
)

// button is a fixed-layout clickable; Render draws it and pointer hooks hit-test the same region
type button struct {
	ID     string
	Label  string
	Region render.Region
	Style  render.ButtonStyle
}

func newButton(id, label string, x, y, w, h float64, color string) button {
	return button{
		ID:     id,
		Label:  label,
		Region: render.Region{X: x, Y: y, W: w, H: h},
		Style:  render.ButtonStyle{Color: color},
	}
}

func drawButtons(surf render.Surface, bs []button) {
	for _, b := range bs {
		r := b.Region
		surf.DrawButton(r.X, r.Y, r.W, r.H, b.Label, b.Style)
	}
}

// hitButton returns the first button containing the point
func hitButton(bs []button, x, y float64) (string, bool) {
	for _, b := range bs {
		if render.HitTest(b.Region, x, y) {
			return b.ID, true
		}
	}
	return "", false
}

func drawParticles(surf render.Surface, p *systems.Particles) {
	p.Each(func(pt systems.Particle) {
		surf.DrawGlyph(pt.Glyph, pt.X, pt.Y, pt.Size)
	})
}

func comboLabel(combo int, multiplier float64) string {
	return fmt.Sprintf("%d combo! x%.1f", combo, multiplier)
}
