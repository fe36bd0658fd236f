package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinChimeGap is the minimum gap between consecutive chimes (two frames)
	MinChimeGap = 2 * FrameInterval
)

// Chime Sound Timing (bell: fundamental plus octave overtone)
const (
	ChimeSoundDuration           = 600 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 550 * time.Millisecond
	ChimeSoundOvertoneRelease    = 200 * time.Millisecond
)

// Chime Pitch
const (
	// ChimeBaseFrequency is the fundamental for a body at 1 AU (A5)
	ChimeBaseFrequency = 880.0

	// ChimeMinFrequency and ChimeMaxFrequency clamp the radius-derived pitch
	ChimeMinFrequency = 110.0
	ChimeMaxFrequency = 1760.0
)
