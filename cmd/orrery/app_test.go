package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
)

type recordingChimes struct {
	radii   []float64
	batches int
	// drop makes every call report nothing played
	drop bool
}

func (r *recordingChimes) PlayChimes(radiiAU ...float64) int {
	r.batches++
	r.radii = append(r.radii, radiiAU...)
	if r.drop {
		return 0
	}
	return len(radiiAU)
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func earthTable() body.Table {
	return body.Table{{Name: "Earth", RadiusAU: 1.0, PeriodYears: 1.0, Color: "blue"}}
}

func TestAppRunsToCompletionAndHoldsLastFrame(t *testing.T) {
	screen := newTestScreen(t)
	chimes := &recordingChimes{}
	a, err := newApp(screen, earthTable(), render.ColorModeTrueColor, chimes, true)
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	d, err := engine.NewDriver(51, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- a.run(context.Background(), d) }()

	select {
	case <-d.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Driver did not finish")
	}

	// The figure stays up after the run until quit
	select {
	case err := <-errCh:
		t.Fatalf("run returned before quit: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Expected nil error on quit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after quit key")
	}

	if len(chimes.radii) != 1 || chimes.radii[0] != 1.0 {
		t.Errorf("Expected one chime for Earth at frame 50, got %v", chimes.radii)
	}
	if n := a.stats.Revolutions("Earth").Load(); n != 1 {
		t.Errorf("Expected 1 recorded Earth revolution, got %d", n)
	}
	if n := a.framesRendered.Load(); n != 51 {
		t.Errorf("Expected 51 frames recorded, got %d", n)
	}
	if n := a.chimesPlayed.Load(); n != 1 {
		t.Errorf("Expected 1 chime recorded, got %d", n)
	}

	if title := rowText(screen, 0); !strings.Contains(title, "Solar System") {
		t.Errorf("Expected title on row 0, got %q", title)
	}
	status := rowText(screen, a.orch.Layout().StatusY)
	if !strings.Contains(status, "frame 51/51") || !strings.Contains(status, constants.DoneText) {
		t.Errorf("Expected completed status line, got %q", status)
	}

	// Earth is back at (1, 0) on frame 50
	sx, sy := a.orch.Layout().Viewport.Project(orbit.Point{X: 1, Y: 0})
	if r, _, _, _ := screen.GetContent(sx, sy); r != constants.GlyphMarkerSmall {
		t.Errorf("Expected Earth marker at (%d, %d), got %q", sx, sy, r)
	}
}

func TestAppChimesSameFrameCompletionsTogether(t *testing.T) {
	screen := newTestScreen(t)
	chimes := &recordingChimes{}
	a, err := newApp(screen, body.SolarSystem(), render.ColorModeTrueColor, chimes, true)
	if err != nil {
		t.Fatal(err)
	}

	// Mercury and Venus both complete a revolution at frame 372
	if err := a.frame(372); err != nil {
		t.Fatal(err)
	}
	if chimes.batches != 1 {
		t.Errorf("Expected one chime call for the frame, got %d", chimes.batches)
	}
	if len(chimes.radii) != 2 || chimes.radii[0] != 0.387 || chimes.radii[1] != 0.723 {
		t.Errorf("Expected Mercury and Venus radii, got %v", chimes.radii)
	}
	if n := a.chimesPlayed.Load(); n != 2 {
		t.Errorf("Expected 2 chimes recorded, got %d", n)
	}
}

func TestAppCountsOnlyPlayedChimes(t *testing.T) {
	screen := newTestScreen(t)
	chimes := &recordingChimes{drop: true}
	a, err := newApp(screen, earthTable(), render.ColorModeTrueColor, chimes, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.frame(50); err != nil {
		t.Fatal(err)
	}
	if len(chimes.radii) != 1 {
		t.Errorf("Expected Earth chime requested, got %v", chimes.radii)
	}
	if n := a.chimesPlayed.Load(); n != 0 {
		t.Errorf("Expected dropped chime not to be counted, got %d", n)
	}
	if n := a.stats.Revolutions("Earth").Load(); n != 1 {
		t.Errorf("Expected revolution counted regardless of audio, got %d", n)
	}
}

func TestAppQuitDuringRun(t *testing.T) {
	screen := newTestScreen(t)
	a, err := newApp(screen, body.SolarSystem(), render.ColorMode256, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	d, _ := engine.NewDriver(constants.FrameCount, time.Hour)

	errCh := make(chan error, 1)
	go func() { errCh <- a.run(context.Background(), d) }()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Expected nil error on quit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after escape")
	}
	if d.Rendered() > 1 {
		t.Errorf("Expected at most frame 0 before quit, got %d frames", d.Rendered())
	}
}

func TestAppAppliesLatestResize(t *testing.T) {
	screen := newTestScreen(t)
	a, err := newApp(screen, earthTable(), render.ColorModeTrueColor, nil, true)
	if err != nil {
		t.Fatal(err)
	}

	for w := 81; w <= 90; w++ {
		a.queueResize(screenSize{width: w, height: 30})
	}
	a.applyResizes()

	l := a.orch.Layout()
	if l.ScreenWidth != 90 || l.ScreenHeight != 30 {
		t.Errorf("Expected layout 90x30, got %dx%d", l.ScreenWidth, l.ScreenHeight)
	}
	if w, h := a.orch.Buffer().Bounds(); w != 90 || h != 30 {
		t.Errorf("Expected buffer 90x30, got %dx%d", w, h)
	}
}

func TestAppFrameRejectsNegative(t *testing.T) {
	screen := newTestScreen(t)
	a, err := newApp(screen, earthTable(), render.ColorModeTrueColor, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.frame(-1); err == nil {
		t.Error("Expected error for negative frame")
	}
}

func TestAppGridFlag(t *testing.T) {
	tests := []struct {
		name     string
		showGrid bool
	}{
		{"grid shown", true},
		{"grid hidden", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			a, err := newApp(screen, earthTable(), render.ColorModeTrueColor, nil, tt.showGrid)
			if err != nil {
				t.Fatal(err)
			}
			if err := a.frame(0); err != nil {
				t.Fatal(err)
			}

			// (-1, -1) AU is a grid crossing clear of the orbit, sun, markers and legend
			sx, sy := a.orch.Layout().Viewport.Project(orbit.Point{X: -1, Y: -1})
			r := a.orch.Buffer().Get(sx, sy).Rune
			gridDrawn := r == constants.GlyphGridCross || r == constants.GlyphGridV || r == constants.GlyphGridH
			if gridDrawn != tt.showGrid {
				t.Errorf("Expected grid drawn=%v, got rune %q", tt.showGrid, r)
			}
		})
	}
}

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuitKey(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	table, err := loadTable("")
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 8 {
		t.Errorf("Expected default table of 8 bodies, got %d", len(table))
	}

	path := filepath.Join(t.TempDir(), "bodies.toml")
	data := "[[body]]\nname = \"Vulcan\"\nradius_au = 0.2\nperiod_years = 0.1\ncolor = \"white\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	table, err = loadTable(path)
	if err != nil {
		t.Fatalf("loadTable failed: %v", err)
	}
	if len(table) != 1 || table[0].Name != "Vulcan" {
		t.Errorf("Expected Vulcan table, got %v", table)
	}

	if _, err := loadTable(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestResolveColorMode(t *testing.T) {
	if m := resolveColorMode("256", nil); m != render.ColorMode256 {
		t.Errorf("Expected 256, got %s", m)
	}
	for _, v := range []string{"truecolor", "true", "24bit"} {
		if m := resolveColorMode(v, nil); m != render.ColorModeTrueColor {
			t.Errorf("%s: expected truecolor, got %s", v, m)
		}
	}
}

func TestRunReturnsExitCodeOnStartupFailure(t *testing.T) {
	chdirTemp(t)

	prevBodies, prevDebug := *bodiesFlag, *debugFlag
	*bodiesFlag = filepath.Join(t.TempDir(), "missing.toml")
	*debugFlag = true
	defer func() { *bodiesFlag, *debugFlag = prevBodies, prevDebug }()

	if code := run(); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}

	// run returned instead of exiting, with the debug log written
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Expected debug log to exist: %v", err)
	}
	if !strings.Contains(string(data), "logging started") {
		t.Errorf("Expected startup line in log, got %q", data)
	}
}
