package render

// Cell is one terminal character slot
type Cell struct {
	Rune rune
	// Comb holds combining runes such as emoji variation selectors
	Comb []rune
	Fg   RGB
	Bg   RGB
	Bold bool
	// Wide marks the trailing column covered by a double-width glyph
	Wide bool
}

// RenderBuffer is the back buffer composed each frame before flushing to the screen
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

// Clear resets all cells to blank on bg
func (b *RenderBuffer) Clear(bg RGB) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RGBWhite, Bg: bg}
	}
}

// Size returns the buffer dimensions in cells
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in buffer bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of range yields a zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg recolors the background of a cell, keeping its content
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.split(x, y)
	c := &b.cells[y*b.width+x]
	c.Bg = bg
	c.Rune = ' '
	c.Comb = nil
	c.Wide = false
}

// Put writes a glyph keeping the cell background; width 2 also claims the next column
func (b *RenderBuffer) Put(x, y int, r rune, comb []rune, fg RGB, bold bool, width int) {
	if !b.inBounds(x, y) {
		return
	}
	b.split(x, y)
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Comb = comb
	c.Fg = fg
	c.Bold = bold
	c.Wide = false
	if width == 2 && b.inBounds(x+1, y) {
		b.split(x+1, y)
		next := &b.cells[y*b.width+x+1]
		next.Rune = ' '
		next.Comb = nil
		next.Wide = true
	}
}

// split breaks any double-width pair covering (x, y) so neither half is left behind
func (b *RenderBuffer) split(x, y int) {
	i := y*b.width + x
	if b.cells[i].Wide && x > 0 {
		lead := &b.cells[i-1]
		lead.Rune = ' '
		lead.Comb = nil
	}
	if x+1 < b.width && b.cells[i+1].Wide {
		trail := &b.cells[i+1]
		trail.Rune = ' '
		trail.Comb = nil
		trail.Wide = false
	}
}

// Row returns the printable text of a row, skipping wide continuations
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.Wide {
			continue
		}
		out = append(out, c.Rune)
		out = append(out, c.Comb...)
	}
	return string(out)
}
