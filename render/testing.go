package render

import "strings"

// Recorder is a Surface that keeps what was drawn, for scene tests
type Recorder struct {
	Background string
	Texts      []string
	Glyphs     []string
	Buttons    []string
	Bars       []float64
	Rects      int
}

var _ Surface = (*Recorder)(nil)

// Reset forgets the previous frame
func (r *Recorder) Reset() {
	*r = Recorder{}
}

func (r *Recorder) FillBackground(color string) { r.Background = color }
func (r *Recorder) FillRect(x, y, w, h float64, color string) { r.Rects++ }
func (r *Recorder) DrawGlyph(symbol string, x, y, size float64) { r.Glyphs = append(r.Glyphs, symbol) }
func (r *Recorder) DrawText(text string, x, y float64, style TextStyle) { r.Texts = append(r.Texts, text) }
func (r *Recorder) SetOffset(dx, dy float64) {}

func (r *Recorder) DrawOutlinedText(text string, centerX, y float64, style TextStyle) {
	r.Texts = append(r.Texts, text)
}

func (r *Recorder) DrawButton(x, y, w, h float64, label string, style ButtonStyle) Region {
	r.Buttons = append(r.Buttons, label)
	return Region{X: x, Y: y, W: w, H: h}
}

func (r *Recorder) DrawProgressBar(x, y, w, h, fraction float64, color string) {
	r.Bars = append(r.Bars, fraction)
}

// HasText reports whether any drawn text contains sub
func (r *Recorder) HasText(sub string) bool {
	for _, t := range r.Texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// HasButton reports whether any button label contains sub
func (r *Recorder) HasButton(sub string) bool {
	for _, b := range r.Buttons {
		if strings.Contains(b, sub) {
			return true
		}
	}
	return false
}

// HasGlyph reports whether symbol was drawn
func (r *Recorder) HasGlyph(symbol string) bool {
	for _, g := range r.Glyphs {
		if g == symbol {
			return true
		}
	}
	return false
}
