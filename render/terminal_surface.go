package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/kickdrive/constants"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	defaultTextColor = "#ffffff"
	progressTrack    = "#333333"
)

// TerminalSurface draws the canvas onto a tcell screen through a back buffer
type TerminalSurface struct {
	screen tcell.Screen
	buf    *RenderBuffer
	vp     Viewport

	offX, offY float64

	colors map[string]RGB
}

// NewTerminalSurface creates a surface sized to the screen
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	cols, rows := screen.Size()
	return &TerminalSurface{
		screen: screen,
		buf:    NewRenderBuffer(cols, rows),
		vp:     Viewport{Cols: cols, Rows: rows},
		colors: make(map[string]RGB),
	}
}

// Viewport returns the active canvas mapping
func (s *TerminalSurface) Viewport() Viewport { return s.vp }

// Buffer exposes the back buffer for inspection
func (s *TerminalSurface) Buffer() *RenderBuffer { return s.buf }

// Resize updates the viewport and back buffer
func (s *TerminalSurface) Resize(cols, rows int) {
	s.vp = Viewport{Cols: cols, Rows: rows}
	s.buf.Resize(cols, rows)
}

// BeginFrame resets the offset and clears the buffer
func (s *TerminalSurface) BeginFrame() {
	s.offX, s.offY = 0, 0
	s.buf.Clear(RGBBlack)
}

// EndFrame flushes the back buffer to the terminal
func (s *TerminalSurface) EndFrame() {
	w, h := s.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := s.buf.Get(x, y)
			if c.Wide {
				continue
			}
			s.screen.SetContent(x, y, c.Rune, c.Comb, cellStyle(c))
		}
	}
	s.screen.Show()
}

func (s *TerminalSurface) color(hex string, fallback RGB) RGB {
	if c, ok := s.colors[hex]; ok {
		return c
	}
	c := ParseHex(hex, fallback)
	s.colors[hex] = c
	return c
}

// SetOffset shifts subsequent drawing
func (s *TerminalSurface) SetOffset(dx, dy float64) {
	s.offX, s.offY = dx, dy
}

// FillBackground paints every cell
func (s *TerminalSurface) FillBackground(color string) {
	s.buf.Clear(s.color(color, RGBBlack))
}

// FillRect paints the cells covering a canvas rectangle
func (s *TerminalSurface) FillRect(x, y, w, h float64, color string) {
	bg := s.color(color, RGBBlack)
	x0, x1 := cellSpan(x+s.offX, w, s.vp.Cols, constants.BaseWidth)
	y0, y1 := cellSpan(y+s.offY, h, s.vp.Rows, constants.BaseHeight)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.buf.SetBg(col, row, bg)
		}
	}
}

// DrawGlyph centres one grapheme on a canvas point; size is advisory in a terminal
func (s *TerminalSurface) DrawGlyph(symbol string, x, y, size float64) {
	cluster, _, width, _ := uniseg.FirstGraphemeClusterInString(symbol, -1)
	if cluster == "" {
		return
	}
	col, row := s.vp.ToCell(x+s.offX, y+s.offY)
	col -= width / 2
	runes := []rune(cluster)
	s.buf.Put(col, row, runes[0], comb(runes), s.color(defaultTextColor, RGBWhite), size >= 40, width)
}

// DrawText writes a single line anchored per style alignment
func (s *TerminalSurface) DrawText(text string, x, y float64, style TextStyle) {
	col, row := s.vp.ToCell(x+s.offX, y+s.offY)
	switch style.Align {
	case AlignCenter:
		col -= runewidth.StringWidth(text) / 2
	case AlignRight:
		col -= runewidth.StringWidth(text)
	}
	fg := s.color(style.Color, RGBWhite)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		s.buf.Put(col, row, runes[0], comb(runes), fg, style.Bold, w)
		col += max(w, 1)
	}
}

// DrawOutlinedText renders emphasised centred text; terminals have no stroke so bold stands in
func (s *TerminalSurface) DrawOutlinedText(text string, centerX, y float64, style TextStyle) {
	style.Align = AlignCenter
	style.Bold = true
	s.DrawText(text, centerX, y, style)
}

// DrawButton fills the button, centres its label and returns the hit region
func (s *TerminalSurface) DrawButton(x, y, w, h float64, label string, style ButtonStyle) Region {
	s.FillRect(x, y, w, h, style.Color)
	text := style.TextColor
	if text == "" {
		text = defaultTextColor
	}
	s.DrawText(label, x+w/2, y+h/2, TextStyle{Color: text, Bold: true, Align: AlignCenter})
	return Region{X: x + s.offX, Y: y + s.offY, W: w, H: h}
}

// DrawProgressBar draws a track and a fill proportional to fraction
func (s *TerminalSurface) DrawProgressBar(x, y, w, h, fraction float64, color string) {
	fraction = math.Max(0, math.Min(1, fraction))
	s.FillRect(x, y, w, h, progressTrack)
	if fraction > 0 {
		s.FillRect(x, y, w*fraction, h, color)
	}
}

func comb(runes []rune) []rune {
	if len(runes) < 2 {
		return nil
	}
	return runes[1:]
}
