package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBGray   = RGB{128, 128, 128}
	RGBYellow = RGB{255, 255, 0}

	// RgbBackground is the dark figure background
	RgbBackground = RGBBlack
	// RgbText is the default foreground for titles and tick labels
	RgbText = RGB{220, 220, 220}
)

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex returns the color as #rrggbb
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return fromColorful(dst.toColorful().BlendRgb(src.toColorful(), alpha))
}

// Max returns per-channel maximum (non-destructive highlight)
func Max(dst, src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// ParseColor resolves a color name (tcell/X11 names such as "gold") or #rrggbb
func ParseColor(name string) (RGB, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(key, "#") {
		c, err := colorful.Hex(key)
		if err != nil {
			return RGB{}, fmt.Errorf("parse color %q: %w", name, err)
		}
		return fromColorful(c), nil
	}

	tc := tcell.GetColor(key)
	if !tc.Valid() {
		return RGB{}, fmt.Errorf("unknown color %q", name)
	}
	r, g, b := tc.RGB()
	if r < 0 {
		return RGB{}, fmt.Errorf("color %q has no RGB value", name)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Palette caches resolved color names. Unknown names resolve to RgbText.
type Palette struct {
	colors map[string]RGB
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{colors: make(map[string]RGB)}
}

// Resolve returns the RGB value for name
func (p *Palette) Resolve(name string) RGB {
	if c, ok := p.colors[name]; ok {
		return c
	}
	c, err := ParseColor(name)
	if err != nil {
		c = RgbText
	}
	p.colors[name] = c
	return c
}
