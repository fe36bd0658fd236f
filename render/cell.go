package render

// Cell is one compositor cell. A zero Rune draws as a space.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool

	// cont marks the trailing half of a wide glyph written by the cell to its left
	cont bool
}
