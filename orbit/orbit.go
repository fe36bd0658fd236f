// Package orbit computes where a body sits on its circular orbit at a frame.
//
// Every function is a pure function of the body's static data and the frame
// index; nothing accumulates between frames.
package orbit

import (
	"math"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/constants"
)

// Point is a position in astronomical units, origin at the central star
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Norm returns the distance from the origin
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// MarkerSize distinguishes the two marker glyph sizes
type MarkerSize uint8

const (
	MarkerSmall MarkerSize = iota
	MarkerLarge
)

// AngularVelocity returns radians per simulated year for a period in years
func AngularVelocity(periodYears float64) float64 {
	return 2 * math.Pi / periodYears
}

// Angle returns the body's angular position at frame
func Angle(b body.Body, frame int) float64 {
	return float64(frame) * AngularVelocity(b.PeriodYears) / constants.TimeScale
}

// Position returns the body's location on its orbit at frame
func Position(b body.Body, frame int) Point {
	sin, cos := math.Sincos(Angle(b, frame))
	return Point{X: b.RadiusAU * cos, Y: b.RadiusAU * sin}
}

// LabelOffset returns the diagonal label offset for an orbital radius
func LabelOffset(radiusAU float64) float64 {
	if radiusAU < constants.OuterSystemRadius {
		return constants.LabelOffsetInner
	}
	return constants.LabelOffsetOuter
}

// LabelPosition returns where the body's label anchors at frame
func LabelPosition(b body.Body, frame int) Point {
	off := LabelOffset(b.RadiusAU)
	return Position(b, frame).Add(off, off)
}

// MarkerSizeFor returns the marker size for an orbital radius
func MarkerSizeFor(radiusAU float64) MarkerSize {
	if radiusAU < constants.OuterSystemRadius {
		return MarkerSmall
	}
	return MarkerLarge
}

// PeriodFrames returns frames per revolution, 100π/ω = TimeScale·P
func PeriodFrames(b body.Body) float64 {
	return 2 * math.Pi * constants.TimeScale / AngularVelocity(b.PeriodYears)
}

// Revolutions returns completed revolutions at frame
func Revolutions(b body.Body, frame int) int {
	if frame <= 0 {
		return 0
	}
	return int(math.Floor(float64(frame) / (constants.TimeScale * b.PeriodYears)))
}

// Completed reports whether the body finished a revolution exactly at frame
func Completed(b body.Body, frame int) bool {
	if frame <= 0 {
		return false
	}
	return Revolutions(b, frame) > Revolutions(b, frame-1)
}

// SimulatedYears converts a frame index into elapsed Earth years
func SimulatedYears(frame int) float64 {
	return float64(frame) / constants.TimeScale
}
