package main

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/animator"
	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/render/renderers"
	"github.com/lixenwraith/orrery/status"
)

// chimePlayer is satisfied by audio.SoundManager
type chimePlayer interface {
	PlayChimes(radiiAU ...float64) int
}

type screenSize struct {
	width, height int
}

// app owns the figure: animator, render pipeline and terminal event plumbing
type app struct {
	screen tcell.Screen
	anim   *animator.Animator
	orch   *render.RenderOrchestrator
	sound  chimePlayer

	resizes chan screenSize
	state   render.FrameState

	stats          *status.Registry
	framesRendered *atomic.Int64
	chimesPlayed   *atomic.Int64
	simYears       *status.AtomicFloat
}

// newApp builds the animator for table and registers every layer of the figure
func newApp(screen tcell.Screen, table body.Table, mode render.ColorMode, sound chimePlayer, showGrid bool) (*app, error) {
	anim, err := animator.New(table)
	if err != nil {
		return nil, err
	}

	extent := table.MaxRadius() * constants.ViewMargin
	stats := status.NewRegistry()
	a := &app{
		screen:         screen,
		anim:           anim,
		orch:           render.NewRenderOrchestrator(screen, mode, extent),
		sound:          sound,
		resizes:        make(chan screenSize, 4),
		stats:          stats,
		framesRendered: stats.Ints.Get(status.KeyFramesRendered),
		chimesPlayed:   stats.Ints.Get(status.KeyChimesPlayed),
		simYears:       stats.Floats.Get(status.KeySimYears),
	}

	palette := render.NewPalette()

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewGridRenderer(showGrid), render.PriorityGrid},
		{renderers.NewAxesRenderer(), render.PriorityAxes},
		{renderers.NewOrbitRenderer(anim), render.PriorityOrbits},
		{renderers.NewSunRenderer(), render.PrioritySun},
		{renderers.NewMarkerRenderer(anim, palette), render.PriorityMarkers},
		{renderers.NewLabelRenderer(anim, palette), render.PriorityLabels},
		{renderers.NewTitleRenderer(constants.TitleText), render.PriorityUI},
		{renderers.NewStatusBarRenderer(stats), render.PriorityUI},
		{renderers.NewLegendRenderer(anim, palette), render.PriorityLegend},
	}
	for _, def := range rendererList {
		a.orch.Register(def.renderer, def.priority)
	}

	return a, nil
}

// run drives the animation to completion, then holds the last frame until quit
func (a *app) run(ctx context.Context, d *engine.Driver) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.state.Total = d.Frames()
	core.Go(func() { a.pollEvents(cancel) })

	err := d.Run(ctx, a.frame)
	if errors.Is(err, context.Canceled) {
		log.Printf("run cancelled after %d frames: %s", d.Rendered(), a.stats.Summary())
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("run complete: %s", a.stats.Summary())
	a.state.Done = true
	a.applyResizes()
	a.orch.RenderFrame(a.state)

	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-a.resizes:
			a.orch.Resize(s.width, s.height)
			a.applyResizes()
			a.orch.RenderFrame(a.state)
		}
	}
}

// frame is the driver callback: reposition every body, chime completions, draw
func (a *app) frame(frame int) error {
	a.applyResizes()

	fr, err := a.anim.Update(frame)
	if err != nil {
		return err
	}

	var radii []float64
	for _, id := range fr.Completed {
		h, ok := a.anim.Handle(id)
		if !ok {
			continue
		}
		n := a.stats.Revolutions(id).Add(1)
		log.Printf("frame %d: %s completed revolution %d", frame, id, n)
		radii = append(radii, h.Body.RadiusAU)
	}
	if a.sound != nil && len(radii) > 0 {
		played := a.sound.PlayChimes(radii...)
		a.chimesPlayed.Add(int64(played))
	}

	a.state.Frame = frame
	a.state.Rendered = frame + 1
	a.state.Years = orbit.SimulatedYears(frame)
	a.framesRendered.Store(int64(a.state.Rendered))
	a.simYears.Store(a.state.Years)
	a.orch.RenderFrame(a.state)
	return nil
}

// applyResizes drains queued resize events, applying only the latest
func (a *app) applyResizes() {
	var last *screenSize
	for {
		select {
		case s := <-a.resizes:
			last = &s
		default:
			if last != nil {
				a.orch.Resize(last.width, last.height)
			}
			return
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func (a *app) pollEvents(cancel context.CancelFunc) {
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuitKey(ev) {
				cancel()
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			a.queueResize(screenSize{width: w, height: h})
		}
	}
}

// queueResize keeps the newest size when the queue is full
func (a *app) queueResize(s screenSize) {
	for {
		select {
		case a.resizes <- s:
			return
		default:
			select {
			case <-a.resizes:
			default:
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
