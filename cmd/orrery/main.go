package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/render"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	framesFlag    = flag.Int("frames", constants.FrameCount, "Number of frames to animate")
	intervalFlag  = flag.Duration("interval", constants.FrameInterval, "Delay between frames")
	bodiesFlag    = flag.String("bodies", "", "TOML body table (default: the eight planets)")
	soundFlag     = flag.Bool("sound", false, "Chime on each completed revolution")
	gridFlag      = flag.Bool("grid", true, "Draw the reference grid")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/orrery.log")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run wires and drives the figure, returning the process exit code.
// Every deferred cleanup has completed by the time it returns.
func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	table, err := loadTable(*bodiesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load body table: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Failed to start: stdout is not a terminal")
		return 1
	}

	driver, err := engine.NewDriver(*framesFlag, *intervalFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create driver: %v\n", err)
		return 1
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)

	// Errors are reported after the screen is finalized so they stay visible
	var failure string
	defer func() {
		if failure != "" {
			fmt.Fprintln(os.Stderr, failure)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()
	// Panic Recovery: runs before Fini so the crash report restores the terminal first
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	colorMode := resolveColorMode(*colorModeFlag, screen)
	log.Printf("color mode %s, %d bodies, %d frames every %v", colorMode, len(table), driver.Frames(), driver.Interval())

	var sound chimePlayer
	cfg := audio.LoadAudioConfig()
	if *soundFlag {
		cfg.Enabled = true
	}
	if cfg.Enabled {
		sm := audio.NewSoundManager(cfg)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	a, err := newApp(screen, table, colorMode, sound, *gridFlag)
	if err != nil {
		failure = fmt.Sprintf("Failed to build figure: %v", err)
		return 1
	}

	if err := a.run(context.Background(), driver); err != nil {
		log.Printf("run failed: %v", err)
		failure = fmt.Sprintf("Failed to animate: %v", err)
		return 1
	}
	return 0
}

// loadTable returns the default solar system or the table at path
func loadTable(path string) (body.Table, error) {
	if path == "" {
		return body.SolarSystem(), nil
	}
	return body.LoadFile(path)
}

// resolveColorMode maps the -color flag, detecting from the screen on auto
func resolveColorMode(flagValue string, screen tcell.Screen) render.ColorMode {
	switch flagValue {
	case "256":
		return render.ColorMode256
	case "truecolor", "true", "24bit":
		return render.ColorModeTrueColor
	default:
		return render.DetectColorMode(screen)
	}
}
