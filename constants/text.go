package constants

// Figure text
const (
	TitleText     = "Solar System Orbital Motion (Top View)"
	AxisLabelText = "Distance (AU)"
	QuitHintText  = "q/Esc quit"
	DoneText      = "done"
)

// Glyphs
const (
	GlyphMarkerSmall = '•'
	GlyphMarkerLarge = '●'
	GlyphSun         = '●'
	GlyphOrbit       = '·'
	GlyphGridV       = '┊'
	GlyphGridH       = '┈'
	GlyphGridCross   = '┼'
	GlyphAxisV       = '│'
	GlyphAxisH       = '─'
	GlyphAxisCorner  = '└'
	GlyphTick        = '┬'
)

// Layout reservations in cells
const (
	// TitleRows is rows above the plot (title + padding)
	TitleRows = 2

	// BottomRows is rows below the plot (tick labels, x-axis label, status line)
	BottomRows = 3

	// LeftCols is columns left of the plot (y-axis label + tick labels)
	LeftCols = 8

	// LegendPadding is the gap between legend box and plot edge
	LegendPadding = 1

	// MinPlotWidth and MinPlotHeight below which only a size warning is shown
	MinPlotWidth  = 20
	MinPlotHeight = 8
)

// TooSmallText is shown when the terminal cannot fit the plot
const TooSmallText = "terminal too small"
