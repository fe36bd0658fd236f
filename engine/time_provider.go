package engine

import "time"

// TickSource produces the fixed-interval ticks that advance the frame index
type TickSource interface {
	// Ticks starts a tick stream at interval and returns it with a stop function
	Ticks(interval time.Duration) (<-chan time.Time, func())
}

// RealTickSource ticks on the wall clock via time.Ticker. Slow frames drop
// ticks rather than queueing them.
type RealTickSource struct{}

// NewRealTickSource creates a wall-clock tick source
func NewRealTickSource() *RealTickSource {
	return &RealTickSource{}
}

// Ticks starts a time.Ticker
func (RealTickSource) Ticks(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}
