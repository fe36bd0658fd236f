package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orrery/constants"
)

// envelope applies attack/release shaping to a stream and ends it after totalSamples
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := min(rate.N(release), total-att)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ChimeFrequency maps an orbital radius to a pitch: inner bodies ring higher
func ChimeFrequency(radiusAU float64) float64 {
	if !(radiusAU > 0) {
		return constants.ChimeMaxFrequency
	}
	f := constants.ChimeBaseFrequency / math.Sqrt(radiusAU)
	return math.Max(constants.ChimeMinFrequency, math.Min(constants.ChimeMaxFrequency, f))
}

// CreateChimeSound generates a short bell (fundamental plus octave) at freq
func CreateChimeSound(cfg *AudioConfig, freq float64) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("chime fundamental %.1f Hz: %w", freq, err)
	}
	fundShaped := NewEnvelope(fund, constants.ChimeSoundDuration, constants.ChimeSoundAttack, constants.ChimeSoundFundamentalRelease, rate)

	over, err := generators.SineTone(rate, 2*freq)
	if err != nil {
		return nil, fmt.Errorf("chime overtone %.1f Hz: %w", 2*freq, err)
	}
	overShaped := NewEnvelope(over, constants.ChimeSoundDuration, constants.ChimeSoundAttack, constants.ChimeSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.MasterVolume), nil
}
