package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// RenderBuffer is a cell compositor with touched-background tracking.
// Renderers write into it; FlushToScreen pushes it to tcell once per frame.
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RgbText, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// InBounds returns true if in screen bounds
func (b *RenderBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune, foreground and weight while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, bold bool) {
	if !b.InBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = bold
	dst.cont = false
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.InBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.InBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetBlended writes a rune whose foreground is src alpha-blended over the cell background
func (b *RenderBuffer) SetBlended(x, y int, r rune, src RGB, alpha float64) {
	if !b.InBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = Blend(dst.Bg, src, alpha)
	dst.Bold = false
	dst.cont = false
}

// DrawText writes s starting at (x, y) one grapheme cluster at a time, wide
// clusters taking two cells. Clipped at the right edge. Returns cells advanced.
func (b *RenderBuffer) DrawText(x, y int, s string, fg RGB, bold bool) int {
	if y < 0 || y >= b.height {
		return 0
	}
	start := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if w <= 0 {
			continue
		}
		if x+w > b.width {
			break
		}
		runes := g.Runes()
		if x >= 0 {
			b.SetFgOnly(x, y, runes[0], fg, bold)
			if w == 2 && x+1 < b.width {
				next := &b.cells[y*b.width+x+1]
				next.Rune = 0
				next.cont = true
			}
		}
		x += w
	}
	return x - start
}

// DrawVerticalText writes s top-down in column x, one grapheme per row
func (b *RenderBuffer) DrawVerticalText(x, y int, s string, fg RGB) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if runes := g.Runes(); len(runes) > 0 {
			b.SetFgOnly(x, y, runes[0], fg, false)
		}
		y++
	}
}

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen, cc *ColorConverter) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			c := &row[x]
			if c.cont {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, cc.Style(c.Fg, c.Bg, c.Bold))
		}
	}
	screen.Show()
}
