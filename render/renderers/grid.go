package renderers

import (
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
)

// GridRenderer draws faint reference lines at every tick
type GridRenderer struct {
	visible bool
}

// NewGridRenderer creates a grid renderer
func NewGridRenderer(visible bool) *GridRenderer {
	return &GridRenderer{visible: visible}
}

// IsVisible implements VisibilityToggle
func (g *GridRenderer) IsVisible() bool {
	return g.visible
}

// Render implements SystemRenderer
func (g *GridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Layout.TooSmall {
		return
	}
	vp := ctx.Layout.Viewport
	fg := render.Blend(render.RgbBackground, render.RGBWhite, constants.GridAlpha)

	// Vertical lines first so horizontal pass can detect crossings
	for _, t := range ctx.Layout.Ticks {
		sx, _ := vp.Project(orbit.Point{X: t})
		if sx < vp.X || sx > vp.Right() {
			continue
		}
		for sy := vp.Y; sy <= vp.Bottom(); sy++ {
			buf.SetFgOnly(sx, sy, constants.GlyphGridV, fg, false)
		}
	}

	for _, t := range ctx.Layout.Ticks {
		_, sy := vp.Project(orbit.Point{Y: t})
		if sy < vp.Y || sy > vp.Bottom() {
			continue
		}
		for sx := vp.X; sx <= vp.Right(); sx++ {
			glyph := constants.GlyphGridH
			if buf.Get(sx, sy).Rune == constants.GlyphGridV {
				glyph = constants.GlyphGridCross
			}
			buf.SetFgOnly(sx, sy, glyph, fg, false)
		}
	}
}
