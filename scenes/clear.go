package scenes

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

var clearRetry = newButton("retry", "Play again!", W/2-80, H*0.75, 160, 50, "#4caf50")

// Clear is the ending screen
type Clear struct {
	title   string
	elapsed float64
}

// Title is the ending earned this session
func (c *Clear) Title() string { return c.title }

// Enter picks the ending and plays its jingle
func (c *Clear) Enter(s *engine.Session, p engine.Params) {
	c.elapsed = 0
	s.Audio.Fanfare()
	switch {
	case s.Economy.IsTrueClear():
		c.title = content.MsgTrueClear
	case s.Economy.SheepDefeat():
		c.title = content.MsgSecretClear
	default:
		c.title = content.MsgNormalClear
	}
	s.Log.WithField("ending", c.title).Info("game cleared")
}

func (c *Clear) Update(s *engine.Session, dt time.Duration) { c.elapsed += dt.Seconds() }

func (c *Clear) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#ff6f00")
	surf.FillRect(0, H/2, W, H/2, "#f44336")
	for i := 0; i < 12; i++ {
		a := c.elapsed*2 + float64(i)*0.5
		x := W/2 + math.Cos(a)*(80+float64(i)*15)
		y := H*0.3 + math.Sin(a)*(40+float64(i)*8)
		surf.DrawGlyph("✨", x, y, 16+math.Sin(c.elapsed+float64(i))*6)
	}
	render.DrawMessage(surf, "🏆 Game clear! 🏆", H*0.2, render.ColorGold)
	render.DrawMessage(surf, c.title, H*0.35, render.ColorText)
	render.DrawMoney(surf, s.Economy.TotalEarned(), W/2-80, H*0.45)
	render.DrawMessage(surf, fmt.Sprintf("That person repelled: %d times", s.Economy.AntagonistDefeats()), H*0.58, render.ColorText)
	drawButtons(surf, []button{clearRetry})
}

// OnPointerDown resets the session from the play-again button
func (c *Clear) OnPointerDown(s *engine.Session, x, y float64) {
	if _, ok := hitButton([]button{clearRetry}, x, y); ok {
		s.Reset()
	}
}

func (c *Clear) OnPointerUp(s *engine.Session) {}

// OnKeyDown plays again on Enter
func (c *Clear) OnKeyDown(s *engine.Session, key string) {
	if key == input.KeyEnter {
		s.Reset()
	}
}

func (c *Clear) OnKeyUp(s *engine.Session, key string) {}
