package render

// Align positions text horizontally relative to its anchor
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle controls text color and placement
type TextStyle struct {
	Color string
	Bold  bool
	Align Align
}

// ButtonStyle controls button fill and label color
type ButtonStyle struct {
	Color     string
	TextColor string
}

// Region is a clickable rectangle in canvas units
type Region struct {
	X, Y, W, H float64
}

// Contains is inclusive on all edges
func (r Region) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// HitTest reports a pointer inside a region
func HitTest(r Region, x, y float64) bool {
	return r.Contains(x, y)
}

// Surface is the drawing contract scenes render against, in canvas units
type Surface interface {
	FillBackground(color string)
	FillRect(x, y, w, h float64, color string)
	DrawGlyph(symbol string, x, y, size float64)
	DrawText(text string, x, y float64, style TextStyle)
	DrawOutlinedText(text string, centerX, y float64, style TextStyle)
	DrawButton(x, y, w, h float64, label string, style ButtonStyle) Region
	DrawProgressBar(x, y, w, h, fraction float64, color string)
	// SetOffset shifts subsequent drawing, used for camera shake
	SetOffset(dx, dy float64)
}

// Screen is a Surface with a frame lifecycle
type Screen interface {
	Surface
	BeginFrame()
	EndFrame()
	Resize(cols, rows int)
}
