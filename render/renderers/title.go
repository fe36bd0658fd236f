package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/render"
)

// TitleRenderer draws the figure title centered over the plot
type TitleRenderer struct {
	title string
}

// NewTitleRenderer creates a title renderer; empty title uses the default
func NewTitleRenderer(title string) *TitleRenderer {
	if title == "" {
		title = constants.TitleText
	}
	return &TitleRenderer{title: title}
}

// Render implements SystemRenderer
func (t *TitleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		return
	}
	vp := l.Viewport

	text := runewidth.Truncate(t.title, l.ScreenWidth, "…")
	w := runewidth.StringWidth(text)
	x := vp.X + (vp.Width-w)/2
	x = max(0, min(x, l.ScreenWidth-w))
	buf.DrawText(x, l.TitleY, text, render.RGBWhite, true)
}
