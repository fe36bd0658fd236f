package render

import (
	"math"
	"strconv"

	"github.com/lixenwraith/orrery/constants"
)

// Layout places the figure elements for a screen size
type Layout struct {
	ScreenWidth  int
	ScreenHeight int

	Viewport Viewport

	// TooSmall is set when the plot area is below the minimum; only a warning is drawn
	TooSmall bool

	TitleY     int
	TickLabelY int
	XLabelY    int
	StatusY    int
	YLabelX    int

	// Ticks are the grid/tick positions in AU, shared by both axes
	Ticks        []float64
	TickStep     float64
	TickDecimals int
}

// ComputeLayout reserves title, axis and status rows around an equal-aspect plot of extent AU
func ComputeLayout(width, height int, extent float64) Layout {
	l := Layout{
		ScreenWidth:  width,
		ScreenHeight: height,
		TitleY:       0,
		StatusY:      height - 1,
		YLabelX:      0,
	}

	plotW := width - constants.LeftCols - 1
	plotH := height - constants.TitleRows - constants.BottomRows
	if plotW < constants.MinPlotWidth || plotH < constants.MinPlotHeight || !(extent > 0) {
		l.TooSmall = true
		return l
	}

	l.Viewport = NewViewport(constants.LeftCols, constants.TitleRows, plotW, plotH, extent)
	l.TickLabelY = l.Viewport.Bottom() + 1
	l.XLabelY = l.Viewport.Bottom() + 2

	l.TickStep = NiceStep(2*extent, 8)
	l.Ticks = TickValues(extent, l.TickStep)
	l.TickDecimals = TickDecimals(l.TickStep)
	return l
}

// FormatTick prints a tick value with the layout's precision
func (l Layout) FormatTick(v float64) string {
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', l.TickDecimals, 64)
}

// NiceStep returns a 1/2/5×10^k step so span/step does not exceed maxTicks
func NiceStep(span float64, maxTicks int) float64 {
	if !(span > 0) || maxTicks < 1 {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= raw {
			return step
		}
	}
	return 10 * mag
}

// TickValues returns multiples of step within [-extent, extent]
func TickValues(extent, step float64) []float64 {
	if !(step > 0) || !(extent > 0) {
		return nil
	}
	n := int(math.Floor(extent/step + 1e-9))
	ticks := make([]float64, 0, 2*n+1)
	for i := -n; i <= n; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks
}

// TickDecimals returns the decimals needed to print multiples of step
func TickDecimals(step float64) int {
	if step >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(step) - 1e-9))
}
