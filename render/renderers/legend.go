package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/animator"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/render"
)

// legendMaxName caps legend entry width; longer names are truncated with an ellipsis
const legendMaxName = 16

var (
	rgbLegendBg     = render.RGB{R: 20, G: 20, B: 20}
	rgbLegendBorder = render.RGB{R: 90, G: 90, B: 90}
)

// LegendRenderer draws a boxed marker/name list in the plot's upper right corner
type LegendRenderer struct {
	anim    *animator.Animator
	palette *render.Palette
}

// NewLegendRenderer creates a legend renderer
func NewLegendRenderer(anim *animator.Animator, palette *render.Palette) *LegendRenderer {
	return &LegendRenderer{anim: anim, palette: palette}
}

// Render implements SystemRenderer
func (lr *LegendRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Layout.TooSmall {
		return
	}
	vp := ctx.Layout.Viewport
	handles := lr.anim.Handles()

	nameW := 0
	for _, h := range handles {
		nameW = max(nameW, min(runewidth.StringWidth(h.Body.Name), legendMaxName))
	}

	// "│ ● Name │"
	boxW := nameW + 6
	boxH := len(handles) + 2
	if boxW > vp.Width-2*constants.LegendPadding || boxH > vp.Height-2*constants.LegendPadding {
		return
	}
	x0 := vp.Right() - constants.LegendPadding - boxW + 1
	y0 := vp.Y + constants.LegendPadding
	x1 := x0 + boxW - 1
	y1 := y0 + boxH - 1

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbText, rgbLegendBg)
		}
	}

	for x := x0 + 1; x < x1; x++ {
		buf.SetFgOnly(x, y0, '─', rgbLegendBorder, false)
		buf.SetFgOnly(x, y1, '─', rgbLegendBorder, false)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.SetFgOnly(x0, y, '│', rgbLegendBorder, false)
		buf.SetFgOnly(x1, y, '│', rgbLegendBorder, false)
	}
	buf.SetFgOnly(x0, y0, '┌', rgbLegendBorder, false)
	buf.SetFgOnly(x1, y0, '┐', rgbLegendBorder, false)
	buf.SetFgOnly(x0, y1, '└', rgbLegendBorder, false)
	buf.SetFgOnly(x1, y1, '┘', rgbLegendBorder, false)

	for i, h := range handles {
		y := y0 + 1 + i
		fg := lr.palette.Resolve(h.Marker.Color)
		buf.SetFgOnly(x0+2, y, MarkerGlyph(h.Marker.Size), fg, false)
		name := runewidth.Truncate(h.Body.Name, legendMaxName, "…")
		buf.DrawText(x0+4, y, name, fg, false)
	}
}
