package renderers

import (
	"math"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/render"
)

var rgbSunCore = render.RGB{R: 255, G: 165, B: 0}

// SunRenderer draws the central star as a filled disk, at least one cell
type SunRenderer struct{}

// NewSunRenderer creates a sun renderer
func NewSunRenderer() *SunRenderer {
	return &SunRenderer{}
}

// Render implements SystemRenderer
func (s *SunRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Layout.TooSmall {
		return
	}
	vp := ctx.Layout.Viewport
	cx, cy := vp.Center()

	rx := int(math.Ceil(constants.SunRadiusAU * vp.ColsPerAU()))
	ry := int(math.Ceil(constants.SunRadiusAU * vp.RowsPerAU()))
	for sy := cy - ry; sy <= cy+ry; sy++ {
		for sx := cx - rx; sx <= cx+rx; sx++ {
			if vp.Unproject(sx, sy).Norm() <= constants.SunRadiusAU {
				buf.SetWithBg(sx, sy, ' ', render.RGBYellow, render.RGBYellow)
			}
		}
	}

	buf.SetFgOnly(cx, cy, constants.GlyphSun, rgbSunCore, true)
}
