package engine

import (
	"sync"
	"time"
)

// ManualTickSource delivers ticks only when Advance is called, for tests
type ManualTickSource struct {
	mu          sync.Mutex
	ch          chan time.Time
	currentTime time.Time
	interval    time.Duration
	stopped     bool
}

// NewManualTickSource creates a manual tick source starting at startTime
func NewManualTickSource(startTime time.Time) *ManualTickSource {
	return &ManualTickSource{
		ch:          make(chan time.Time),
		currentTime: startTime,
	}
}

// Ticks returns the manual channel; interval only sets the Advance step
func (m *ManualTickSource) Ticks(interval time.Duration) (<-chan time.Time, func()) {
	m.mu.Lock()
	m.interval = interval
	m.mu.Unlock()
	return m.ch, func() {
		m.mu.Lock()
		m.stopped = true
		m.mu.Unlock()
	}
}

// Advance delivers one tick, blocking until the driver receives it, then moves
// the clock forward one interval. Returns false if the stream was stopped or
// nobody received before timeout.
func (m *ManualTickSource) Advance(timeout time.Duration) bool {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return false
	}
	now := m.currentTime
	m.mu.Unlock()

	select {
	case m.ch <- now:
	case <-time.After(timeout):
		return false
	}

	// Ticks has run before the receive, so interval is set
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(m.interval)
	m.mu.Unlock()
	return true
}

// Now returns the simulated time after the last delivered tick
func (m *ManualTickSource) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}
