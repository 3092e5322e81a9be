package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	moveFreq     = 660.0
	moveDuration = 40 * time.Millisecond
	moveRelease  = 15 * time.Millisecond
)

// Cue plays short feedback blips. Every method is a no-op until Init succeeds,
// so the game runs unchanged on machines without an audio device.
type Cue struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewCue creates a cue player with linear volume in [0, 1]
func NewCue(volume float64) *Cue {
	return &Cue{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// PlayMove queues the movement blip
func (c *Cue) PlayMove() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone, err := moveTone(c.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences pending sounds and releases the speaker
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// moveTone is a short sine with a linear fade-out to avoid a click at the cut
func moveTone(volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, moveFreq)
	if err != nil {
		return nil, err
	}
	total := sampleRate.N(moveDuration)
	shaped := &fadeOut{
		streamer: beep.Take(total, sine),
		total:    total,
		release:  sampleRate.N(moveRelease),
	}
	return withVolume(shaped, volume), nil
}

// withVolume maps linear volume onto beep's base-2 gain; zero or less is silent
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// fadeOut ramps the last release samples of a finite stream down to zero
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	releaseStart := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= releaseStart && f.release > 0 {
			gain := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }
