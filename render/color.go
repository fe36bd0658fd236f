package render

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// DetectColorMode checks COLORTERM first, then the screen's reported color count
func DetectColorMode(screen tcell.Screen) ColorMode {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	if ct == "truecolor" || ct == "24bit" {
		return ColorModeTrueColor
	}
	if screen != nil && screen.Colors() > 256 {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// ColorConverter maps RGB to tcell colors, caching nearest-palette lookups in 256 mode
type ColorConverter struct {
	mode    ColorMode
	palette []tcell.Color
	cache   map[RGB]tcell.Color
}

// NewColorConverter creates a converter for mode
func NewColorConverter(mode ColorMode) *ColorConverter {
	cc := &ColorConverter{
		mode:  mode,
		cache: make(map[RGB]tcell.Color),
	}
	if mode == ColorMode256 {
		cc.palette = make([]tcell.Color, 256)
		for i := range cc.palette {
			cc.palette[i] = tcell.PaletteColor(i)
		}
	}
	return cc
}

// Mode returns the active color mode
func (cc *ColorConverter) Mode() ColorMode {
	return cc.mode
}

// Color converts c for the active mode
func (cc *ColorConverter) Color(c RGB) tcell.Color {
	tc := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	if cc.mode == ColorModeTrueColor {
		return tc
	}
	if cached, ok := cc.cache[c]; ok {
		return cached
	}
	nearest := tcell.FindColor(tc, cc.palette)
	cc.cache[c] = nearest
	return nearest
}

// Style builds a tcell style for a cell
func (cc *ColorConverter) Style(fg, bg RGB, bold bool) tcell.Style {
	return tcell.StyleDefault.Foreground(cc.Color(fg)).Background(cc.Color(bg)).Bold(bold)
}
