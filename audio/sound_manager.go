package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/constants"
)

// SoundManager plays revolution chimes through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastChime   time.Time
	now         func() time.Time
}

// NewSoundManager creates a sound manager; nothing plays until Initialize succeeds
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayChimes queues one chime per radius, mixed together at 1/n volume each.
// Returns the number of chimes queued. A call within MinChimeGap of the last
// successful call is dropped whole and returns 0.
func (sm *SoundManager) PlayChimes(radiiAU ...float64) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || len(radiiAU) == 0 {
		return 0
	}
	now := sm.now()
	if !sm.lastChime.IsZero() && now.Sub(sm.lastChime) < constants.MinChimeGap {
		return 0
	}

	share := 1 / float64(len(radiiAU))
	chimes := make([]beep.Streamer, 0, len(radiiAU))
	for _, r := range radiiAU {
		s, err := CreateChimeSound(sm.cfg, ChimeFrequency(r))
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		chimes = append(chimes, newVolume(s, share))
	}
	if len(chimes) == 0 {
		return 0
	}
	sm.lastChime = now

	speaker.Lock()
	sm.mixer.Add(chimes...)
	speaker.Unlock()
	return len(chimes)
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
