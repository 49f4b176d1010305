package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator produces a sine tone that decays to silence over its length.
type BlipGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	volume float64
	pos    int
}

// NewBlipGenerator creates a blip of the given pitch and length.
func NewBlipGenerator(sr beep.SampleRate, freq float64, length time.Duration, volume float64) *BlipGenerator {
	return &BlipGenerator{
		sr:     sr,
		freq:   freq,
		length: max(sr.N(length), 1),
		volume: volume,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Linear decay over the blip length
		envelope := 1 - float64(g.pos)/float64(g.length)
		if envelope < 0 {
			envelope = 0
		}
		sample := 0.4 * g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// BuzzGenerator produces a low buzz built from a tone and two harmonics.
type BuzzGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewBuzzGenerator creates a buzz at the given base frequency.
func NewBuzzGenerator(sr beep.SampleRate, freq, volume float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * g.volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
