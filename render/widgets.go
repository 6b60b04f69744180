package render

import (
	"fmt"

	"github.com/lixenwraith/kickdrive/constants"
)

// Shared palette
const (
	ColorGold   = "#ffd700"
	ColorOrange = "#ff5722"
	ColorDanger = "#ff4444"
	ColorGood   = "#4caf50"
	ColorText   = "#ffffff"
	ColorMuted  = "#999999"
)

// DrawMoney renders the coin counter with its left edge at x
func DrawMoney(s Surface, money int, x, y float64) {
	s.DrawText(fmt.Sprintf("💰 %d coins", money), x, y, TextStyle{Color: ColorGold, Bold: true})
}

// DrawMessage renders emphasised text centred across the canvas
func DrawMessage(s Surface, text string, y float64, color string) {
	if color == "" {
		color = ColorText
	}
	s.DrawOutlinedText(text, constants.BaseWidth/2, y, TextStyle{Color: color})
}
