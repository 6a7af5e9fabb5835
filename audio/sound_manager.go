// Package audio plays short synthesized cues for reef events.
package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/species"
)

// Cue is one sound event.
type Cue uint8

const (
	CueCapture Cue = iota
	CueInk
	CueStun
)

// maxCaptureBlips caps the blips queued by a single tick.
const maxCaptureBlips = 3

// CuesFor maps a tick's events to the cues to play.
func CuesFor(res game.TickResult) []Cue {
	var cues []Cue
	for i := 0; i < min(res.Captured, maxCaptureBlips); i++ {
		cues = append(cues, CueCapture)
	}
	for i := 0; i < res.InkReleases; i++ {
		cues = append(cues, CueInk)
	}
	if res.Stunned {
		cues = append(cues, CueStun)
	}
	return cues
}

// capturePitch gives each species its own blip so a frenzy is audible.
func capturePitch(s species.Species) float64 {
	return 440 * math.Pow(2, float64(s)/float64(species.Count))
}

// SoundManager manages all reef audio.
type SoundManager struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	seed        int64
}

// NewSoundManager creates a sound manager from the audio config.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		sr:     beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		volume: volumeFor(mixer, cfg.Volume),
	}
}

func volumeFor(s beep.Streamer, v float64) *effects.Volume {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(v, 1))}
}

// Initialize sets up the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.sr, sm.sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// OnTick queues the cues for one tick's events.
func (sm *SoundManager) OnTick(res game.TickResult) {
	cues := CuesFor(res)
	if len(cues) == 0 {
		return
	}

	pitches := make([]float64, 0, maxCaptureBlips)
	for _, s := range species.All {
		for i := 0; i < res.CapturedBySpecies.Get(s); i++ {
			pitches = append(pitches, capturePitch(s))
		}
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for i, c := range cues {
		switch c {
		case CueCapture:
			f := 660.0
			if i < len(pitches) {
				f = pitches[i]
			}
			sm.mixer.Add(NewBlip(sm.sr, f, f*1.5, 90*time.Millisecond))
		case CueInk:
			sm.seed++
			sm.mixer.Add(NewWhoosh(sm.sr, 400*time.Millisecond, sm.seed))
		case CueStun:
			sm.mixer.Add(NewBuzz(sm.sr, 120, 250*time.Millisecond))
		default:
			slog.Debug("unknown cue", "cue", c)
		}
	}
}
