package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Blip is a short sine chirp with an exponential decay. Each capture plays
// one; the pitch slides from Start to End.
type Blip struct {
	sr         beep.SampleRate
	start, end float64
	pos, total int
	phase      float64
}

// NewBlip creates a blip of the given duration.
func NewBlip(sr beep.SampleRate, start, end float64, d time.Duration) *Blip {
	return &Blip{sr: sr, start: start, end: end, total: sr.N(d)}
}

func (g *Blip) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		p := float64(g.pos) / float64(g.total)
		freq := g.start + (g.end-g.start)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.35 * math.Exp(-5*p) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Blip) Err() error {
	return nil
}

// Whoosh is low-passed noise with a swell and fade, for ink releases.
type Whoosh struct {
	sr         beep.SampleRate
	rng        *rand.Rand
	pos, total int
	lp         float64
}

// NewWhoosh creates a whoosh; seed fixes the noise.
func NewWhoosh(sr beep.SampleRate, d time.Duration, seed int64) *Whoosh {
	return &Whoosh{sr: sr, rng: rand.New(rand.NewSource(seed)), total: sr.N(d)}
}

func (g *Whoosh) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		p := float64(g.pos) / float64(g.total)
		// One-pole low-pass, cutoff falling as the cloud spreads.
		alpha := 0.25 * (1 - 0.8*p)
		g.lp += alpha * (g.rng.Float64()*2 - 1 - g.lp)
		sample := 0.6 * math.Sin(math.Pi*p) * g.lp

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Whoosh) Err() error {
	return nil
}

// Buzz is a harmonic-rich tone with a fade in and out, for jellyfish stings.
type Buzz struct {
	sr         beep.SampleRate
	freq       float64
	pos, total int
}

// NewBuzz creates a buzz at freq Hz.
func NewBuzz(sr beep.SampleRate, freq float64, d time.Duration) *Buzz {
	return &Buzz{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		p := float64(g.pos) / float64(g.total)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		envelope := math.Min(p/0.05, 1) * math.Min((1-p)/0.2, 1)
		sample *= 0.5 * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Buzz) Err() error {
	return nil
}
