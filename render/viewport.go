package render

import (
	"math"

	"github.com/lixenwraith/kickdrive/constants"
)

// Viewport maps the fixed virtual canvas onto a terminal grid
type Viewport struct {
	Cols, Rows int
}

// ToCell converts canvas coordinates to the containing cell
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * float64(v.Cols) / constants.BaseWidth)),
		int(math.Floor(y * float64(v.Rows) / constants.BaseHeight))
}

// ToCanvas converts a cell to the canvas coordinates of its centre
func (v Viewport) ToCanvas(col, row int) (float64, float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) * constants.BaseWidth / float64(v.Cols),
		(float64(row) + 0.5) * constants.BaseHeight / float64(v.Rows)
}

// cellSpan returns the half-open cell range covering [from, from+length) on one axis
func cellSpan(from, length float64, cells int, base float64) (int, int) {
	start := int(math.Floor(from * float64(cells) / base))
	end := int(math.Ceil((from + length) * float64(cells) / base))
	if end <= start {
		end = start + 1
	}
	return start, end
}
