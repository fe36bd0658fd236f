package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewDriverRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		frames   int
		interval time.Duration
	}{
		{"zero frames", 0, 50 * time.Millisecond},
		{"negative frames", -1, 50 * time.Millisecond},
		{"zero interval", 10, 0},
		{"negative interval", 10, -time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDriver(tt.frames, tt.interval); !errors.Is(err, ErrInvalidDriver) {
				t.Errorf("Expected ErrInvalidDriver, got %v", err)
			}
		})
	}
}

// TestDriverDeliversExactlyFrameBudget drives the reference run of 1000 frames
// with a manual tick source and checks every index 0..999 arrives once, in order
func TestDriverDeliversExactlyFrameBudget(t *testing.T) {
	src := NewManualTickSource(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d, err := NewDriver(1000, 50*time.Millisecond, WithTickSource(src))
	if err != nil {
		t.Fatalf("NewDriver failed: %v", err)
	}

	var frames []int
	errCh := make(chan error, 1)
	go func() {
		errCh <- d.Run(context.Background(), func(frame int) error {
			frames = append(frames, frame)
			return nil
		})
	}()

	for i := 1; i < 1000; i++ {
		if !src.Advance(time.Second) {
			t.Fatalf("Tick %d was not received", i)
		}
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after frame budget")
	}

	if len(frames) != 1000 {
		t.Fatalf("Expected 1000 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f != i {
			t.Fatalf("Expected frame %d at position %d, got %d", i, i, f)
		}
	}
	if d.Rendered() != 1000 {
		t.Errorf("Expected Rendered()=1000, got %d", d.Rendered())
	}

	// No further invocations: the tick stream is stopped
	if src.Advance(10 * time.Millisecond) {
		t.Error("Expected no further ticks to be accepted after run")
	}
	select {
	case <-d.Done():
	default:
		t.Error("Expected Done() to be closed")
	}

	elapsed := src.Now().Sub(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if elapsed != 999*50*time.Millisecond {
		t.Errorf("Expected 999 intervals of simulated time, got %v", elapsed)
	}
}

func TestDriverRealTicker(t *testing.T) {
	d, err := NewDriver(20, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	if err := d.Run(context.Background(), func(int) error {
		count++
		return nil
	}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if count != 20 {
		t.Errorf("Expected 20 frames, got %d", count)
	}
}

func TestDriverNotRestartable(t *testing.T) {
	d, _ := NewDriver(1, time.Millisecond)
	if err := d.Run(context.Background(), func(int) error { return nil }); err != nil {
		t.Fatal(err)
	}
	calls := 0
	err := d.Run(context.Background(), func(int) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrAlreadyRun) {
		t.Errorf("Expected ErrAlreadyRun, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no invocations on second run, got %d", calls)
	}
}

func TestDriverCancel(t *testing.T) {
	d, _ := NewDriver(1000, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	last := -1
	err := d.Run(ctx, func(frame int) error {
		last = frame
		if frame == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if last != 3 {
		t.Errorf("Expected last frame 3, got %d", last)
	}
	if d.Rendered() != 4 {
		t.Errorf("Expected 4 frames rendered, got %d", d.Rendered())
	}
}

func TestDriverCancelledBeforeStart(t *testing.T) {
	d, _ := NewDriver(10, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	if err := d.Run(ctx, func(int) error {
		called = true
		return nil
	}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("Expected no frames for a cancelled context")
	}
}

func TestDriverFrameError(t *testing.T) {
	d, _ := NewDriver(10, time.Millisecond)
	boom := errors.New("boom")
	err := d.Run(context.Background(), func(frame int) error {
		if frame == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped frame error, got %v", err)
	}
	if d.Rendered() != 2 {
		t.Errorf("Expected 2 frames rendered before error, got %d", d.Rendered())
	}
}
