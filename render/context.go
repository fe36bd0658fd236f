package render

// FrameState is the driver-side progress handed to the orchestrator each frame
type FrameState struct {
	// Frame is the last frame index applied to the animator
	Frame int
	// Rendered is how many frames the driver has delivered, Total the budget
	Rendered int
	Total    int
	// Years is the simulated Earth years at Frame
	Years float64
	// Done is set once the driver exhausted its frame budget
	Done bool
}

// RenderContext provides frame state and layout to renderers, passed by value
type RenderContext struct {
	FrameState
	Layout Layout
}
