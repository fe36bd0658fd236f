package renderers

import (
	"github.com/lixenwraith/orrery/animator"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
)

// MarkerGlyph returns the glyph for a marker size
func MarkerGlyph(size orbit.MarkerSize) rune {
	if size == orbit.MarkerLarge {
		return constants.GlyphMarkerLarge
	}
	return constants.GlyphMarkerSmall
}

// MarkerRenderer draws each body's dot at its current position
type MarkerRenderer struct {
	anim    *animator.Animator
	palette *render.Palette
}

// NewMarkerRenderer creates a marker renderer
func NewMarkerRenderer(anim *animator.Animator, palette *render.Palette) *MarkerRenderer {
	return &MarkerRenderer{anim: anim, palette: palette}
}

// Render implements SystemRenderer
func (m *MarkerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Layout.TooSmall {
		return
	}
	vp := ctx.Layout.Viewport
	for _, h := range m.anim.Handles() {
		sx, sy := vp.Project(h.Marker.Pos)
		fg := m.palette.Resolve(h.Marker.Color)
		buf.SetFgOnly(sx, sy, MarkerGlyph(h.Marker.Size), fg, h.Marker.Size == orbit.MarkerLarge)
	}
}

// LabelRenderer draws each body's name at its offset label position
type LabelRenderer struct {
	anim    *animator.Animator
	palette *render.Palette
}

// NewLabelRenderer creates a label renderer
func NewLabelRenderer(anim *animator.Animator, palette *render.Palette) *LabelRenderer {
	return &LabelRenderer{anim: anim, palette: palette}
}

// Render implements SystemRenderer
func (l *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Layout.TooSmall {
		return
	}
	vp := ctx.Layout.Viewport
	for _, h := range l.anim.Handles() {
		sx, sy := vp.Project(h.Label.Pos)
		buf.DrawText(sx, sy, h.Label.Text, l.palette.Resolve(h.Label.Color), false)
	}
}
