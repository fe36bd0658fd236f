package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
)

// AxesRenderer draws tick labels along the bottom and left edges and both axis titles
type AxesRenderer struct{}

// NewAxesRenderer creates an axes renderer
func NewAxesRenderer() *AxesRenderer {
	return &AxesRenderer{}
}

// Render implements SystemRenderer
func (a *AxesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		return
	}
	vp := l.Viewport

	// X tick labels, centered on their column, skipping any that would touch the previous one
	nextFree := 0
	for _, t := range l.Ticks {
		sx, _ := vp.Project(orbit.Point{X: t})
		text := l.FormatTick(t)
		w := runewidth.StringWidth(text)
		start := sx - w/2
		if start < nextFree {
			continue
		}
		buf.DrawText(start, l.TickLabelY, text, render.RgbText, false)
		nextFree = start + w + 1
	}

	// Y tick labels, right-aligned against the plot's left edge
	for _, t := range l.Ticks {
		_, sy := vp.Project(orbit.Point{Y: t})
		if sy < vp.Y || sy > vp.Bottom() {
			continue
		}
		text := l.FormatTick(t)
		start := vp.X - 1 - runewidth.StringWidth(text)
		if start <= l.YLabelX {
			continue
		}
		buf.DrawText(start, sy, text, render.RgbText, false)
	}

	// Axis titles
	xw := runewidth.StringWidth(constants.AxisLabelText)
	buf.DrawText(vp.X+(vp.Width-xw)/2, l.XLabelY, constants.AxisLabelText, render.RgbText, false)

	yh := len([]rune(constants.AxisLabelText))
	top := vp.Y + (vp.Height-yh)/2
	if yh > vp.Height {
		top = vp.Y
	}
	buf.DrawVerticalText(l.YLabelX, top, constants.AxisLabelText, render.RgbText)
}
