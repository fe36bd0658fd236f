package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

var (
	ErrAlreadyRun    = errors.New("driver already run")
	ErrInvalidDriver = errors.New("invalid driver parameters")
)

// FrameFunc renders one frame. A non-nil error stops the driver.
type FrameFunc func(frame int) error

// Driver is the host animation driver: it calls a FrameFunc with frame indices
// 0..frames-1 at a fixed interval, then stops. The sequence is not restartable.
type Driver struct {
	frames   int
	interval time.Duration
	source   TickSource

	started  atomic.Bool
	rendered atomic.Int64
	done     chan struct{}
}

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithTickSource replaces the wall-clock tick source
func WithTickSource(src TickSource) DriverOption {
	return func(d *Driver) {
		d.source = src
	}
}

// NewDriver creates a driver for a finite run of frames at interval
func NewDriver(frames int, interval time.Duration, opts ...DriverOption) (*Driver, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: frame count must be positive, got %d", ErrInvalidDriver, frames)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidDriver, interval)
	}

	d := &Driver{
		frames:   frames,
		interval: interval,
		source:   NewRealTickSource(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Run delivers frame 0 immediately and each following frame on a tick.
// Blocks until all frames are delivered, ctx is cancelled, or fn fails.
func (d *Driver) Run(ctx context.Context, fn FrameFunc) error {
	if !d.started.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}
	defer close(d.done)

	ticks, stop := d.source.Ticks(d.interval)
	defer stop()

	for frame := 0; frame < d.frames; frame++ {
		if frame > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticks:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(frame); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		d.rendered.Add(1)
	}
	return nil
}

// Frames returns the frame budget
func (d *Driver) Frames() int {
	return d.frames
}

// Interval returns the tick interval
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Rendered returns how many frames have been delivered so far
func (d *Driver) Rendered() int {
	return int(d.rendered.Load())
}

// Done is closed once Run returns
func (d *Driver) Done() <-chan struct{} {
	return d.done
}
