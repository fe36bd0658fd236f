package renderers

import (
	"math"

	"github.com/lixenwraith/orrery/animator"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
)

// minOrbitSamples keeps tiny orbits from collapsing to a couple of cells
const minOrbitSamples = 64

// OrbitRenderer draws each body's fixed circular path
type OrbitRenderer struct {
	anim *animator.Animator
}

// NewOrbitRenderer creates an orbit path renderer
func NewOrbitRenderer(anim *animator.Animator) *OrbitRenderer {
	return &OrbitRenderer{anim: anim}
}

// Render implements SystemRenderer
func (o *OrbitRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Layout.TooSmall {
		return
	}
	vp := ctx.Layout.Viewport

	for _, h := range o.anim.Handles() {
		r := h.Body.RadiusAU
		// Sample density scales with the path length in columns
		steps := max(minOrbitSamples, int(8*math.Pi*r*vp.ColsPerAU()))
		for i := 0; i < steps; i++ {
			theta := 2 * math.Pi * float64(i) / float64(steps)
			sin, cos := math.Sincos(theta)
			sx, sy := vp.Project(orbit.Point{X: r * cos, Y: r * sin})
			if !vp.Contains(sx, sy) {
				continue
			}
			buf.SetBlended(sx, sy, constants.GlyphOrbit, render.RGBGray, constants.OrbitAlpha)
		}
	}
}
