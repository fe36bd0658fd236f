package renderers

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/status"
)

var rgbStatusDim = render.RGB{R: 140, G: 140, B: 140}

// StatusBarRenderer draws run progress on the last row and the too-small warning
type StatusBarRenderer struct {
	now func() time.Time
	fps *status.AtomicFloat

	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer publishing its FPS into stats
func NewStatusBarRenderer(stats *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{
		now:           time.Now,
		fps:           stats.Floats.Get(status.KeyRenderFPS),
		lastFpsUpdate: time.Now(),
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	if l.TooSmall {
		buf.DrawText(0, 0, constants.TooSmallText, render.RgbText, true)
		return
	}

	// FPS Calculation
	s.frameCount++
	now := s.now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.fps.Store(float64(s.currentFps))
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	left := fmt.Sprintf(" frame %d/%d  t = %.2f yr", ctx.Rendered, ctx.Total, ctx.Years)
	if ctx.Done {
		left += "  " + constants.DoneText
	} else {
		left += fmt.Sprintf("  %d fps", s.currentFps)
	}
	x := buf.DrawText(0, l.StatusY, left, render.RgbText, false)

	hint := constants.QuitHintText + " "
	hx := l.ScreenWidth - runewidth.StringWidth(hint)
	if hx > x+1 {
		buf.DrawText(hx, l.StatusY, hint, rgbStatusDim, false)
	}
}
