// Package animator owns the drawable state of the orbit diagram.
//
// An Animator binds every body to a Handle (marker + label) keyed by the body's
// name. Update recomputes all handles from the frame index alone, so frames can
// be applied in any order and nothing drifts between calls.
package animator

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/orbit"
)

var ErrNegativeFrame = errors.New("negative frame index")

// Marker is the on-screen dot for a body
type Marker struct {
	Pos   orbit.Point
	Color string
	Size  orbit.MarkerSize
}

// Label is the on-screen name tag for a body
type Label struct {
	Pos   orbit.Point
	Text  string
	Color string
}

// Handle binds one body to its drawables
type Handle struct {
	Body   body.Body
	Marker Marker
	Label  Label
}

// ID returns the handle's stable identifier
func (h *Handle) ID() string {
	return h.Body.Name
}

// Frame describes the result of one Update
type Frame struct {
	Index int
	// Changed lists handle IDs whose drawables moved, in table order
	Changed []string
	// Completed lists handle IDs that finished a revolution at this frame
	Completed []string
}

// Animator holds one Handle per body. Not safe for concurrent use; the host
// driver calls Update and renderers read handles from the same goroutine.
type Animator struct {
	handles map[string]*Handle
	order   []string
	frame   int
	applied bool
}

// New validates table and creates handles positioned at frame 0
func New(table body.Table) (*Animator, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("animator: %w", err)
	}

	a := &Animator{
		handles: make(map[string]*Handle, len(table)),
		order:   make([]string, 0, len(table)),
	}
	for _, b := range table {
		a.handles[b.Name] = &Handle{
			Body: b,
			Marker: Marker{
				Pos:   orbit.Position(b, 0),
				Color: b.Color,
				Size:  orbit.MarkerSizeFor(b.RadiusAU),
			},
			Label: Label{
				Pos:   orbit.LabelPosition(b, 0),
				Text:  b.Name,
				Color: b.Color,
			},
		}
		a.order = append(a.order, b.Name)
	}
	return a, nil
}

// Update moves every handle to its position at frame
func (a *Animator) Update(frame int) (Frame, error) {
	if frame < 0 {
		return Frame{}, fmt.Errorf("%w: %d", ErrNegativeFrame, frame)
	}

	out := Frame{
		Index:   frame,
		Changed: make([]string, 0, len(a.order)),
	}
	for _, id := range a.order {
		h := a.handles[id]
		h.Marker.Pos = orbit.Position(h.Body, frame)
		h.Label.Pos = orbit.LabelPosition(h.Body, frame)
		out.Changed = append(out.Changed, id)

		if orbit.Completed(h.Body, frame) {
			out.Completed = append(out.Completed, id)
		}
	}

	a.frame = frame
	a.applied = true
	return out, nil
}

// Frame returns the last frame applied and whether any Update has run
func (a *Animator) Frame() (int, bool) {
	return a.frame, a.applied
}

// Handle returns the handle for id
func (a *Animator) Handle(id string) (*Handle, bool) {
	h, ok := a.handles[id]
	return h, ok
}

// Handles returns all handles in table order
func (a *Animator) Handles() []*Handle {
	out := make([]*Handle, len(a.order))
	for i, id := range a.order {
		out[i] = a.handles[id]
	}
	return out
}

// IDs returns handle identifiers in table order
func (a *Animator) IDs() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of handles
func (a *Animator) Len() int {
	return len(a.order)
}
