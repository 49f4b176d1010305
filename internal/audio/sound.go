// Package audio plays short synthesized cues for rebounds and lost lives.
// Sound is optional: every call is a no-op until Initialize succeeds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pongspire/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies one sound effect.
type Cue int

const (
	CueSide Cue = iota
	CueTop
	CuePaddle
	CueLifeLost
	CueGameOver
)

// cueSpec describes how a cue is synthesized.
type cueSpec struct {
	freq float64
	dur  time.Duration
	buzz bool
}

var cueSpecs = map[Cue]cueSpec{
	CueSide:     {freq: 440, dur: 40 * time.Millisecond},
	CueTop:      {freq: 880, dur: 60 * time.Millisecond},
	CuePaddle:   {freq: 660, dur: 50 * time.Millisecond},
	CueLifeLost: {freq: 110, dur: 200 * time.Millisecond, buzz: true},
	CueGameOver: {freq: 70, dur: 450 * time.Millisecond, buzz: true},
}

// CuesFor lists the cues triggered by the events of one frame,
// most important first. Game over replaces the life-lost cue.
func CuesFor(ev core.Event) []Cue {
	var cues []Cue
	switch {
	case ev.Has(core.EventGameOver):
		cues = append(cues, CueGameOver)
	case ev.Has(core.EventLifeLost):
		cues = append(cues, CueLifeLost)
	}
	if ev.Has(core.EventTopRebound) {
		cues = append(cues, CueTop)
	}
	if ev.Has(core.EventPaddleRebound) {
		cues = append(cues, CuePaddle)
	}
	if ev.Has(core.EventSideRebound) {
		cues = append(cues, CueSide)
	}
	return cues
}

// SoundManager owns the speaker and a mixer that cues are added to.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager playing at volume (0.0 - 1.0).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device.
// Calling it again after success is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the audio device is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEvents plays the cues for one frame's events.
func (sm *SoundManager) PlayEvents(ev core.Event) {
	for _, c := range CuesFor(ev) {
		sm.Play(c)
	}
}

// Play queues a single cue.
func (sm *SoundManager) Play(c Cue) {
	spec, ok := cueSpecs[c]
	if !ok {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newCueStreamer(spec, sm.volume))
	speaker.Unlock()
}

// Cleanup silences everything and releases the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

func newCueStreamer(spec cueSpec, volume float64) beep.Streamer {
	n := sampleRate.N(spec.dur)
	if spec.buzz {
		return beep.Take(n, NewBuzzGenerator(sampleRate, spec.freq, volume))
	}
	return beep.Take(n, NewBlipGenerator(sampleRate, spec.freq, spec.dur, volume))
}
