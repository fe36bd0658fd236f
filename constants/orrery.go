package constants

import "time"

// Animation Timing Constants
const (
	// FrameInterval is the host driver tick (50ms = 20 FPS)
	FrameInterval = 50 * time.Millisecond

	// FrameCount is the finite frame budget of one run
	FrameCount = 1000

	// TimeScale divides the per-frame angle advance; at TimeScale frames a
	// one-year body completes a revolution. Visual pacing only, not calibrated
	// to any physical unit.
	TimeScale = 50.0
)

// Orbit Layout Constants
const (
	// OuterSystemRadius splits inner and outer bodies for label spacing and marker size
	OuterSystemRadius = 10.0

	// LabelOffsetInner is the label offset (AU, both axes) for bodies inside OuterSystemRadius
	LabelOffsetInner = 0.5

	// LabelOffsetOuter is the label offset (AU, both axes) for bodies at or beyond OuterSystemRadius
	LabelOffsetOuter = 1.0

	// ViewMargin scales the outermost radius to the plot half-extent
	ViewMargin = 1.2

	// SunRadiusAU is the drawn radius of the central star
	SunRadiusAU = 0.5

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Alpha values for reference layers over the dark background
const (
	OrbitAlpha = 0.3
	GridAlpha  = 0.2
)
