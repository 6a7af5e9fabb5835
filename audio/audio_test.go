package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/shoal/game"
)

const rate = beep.SampleRate(44100)

func TestGeneratorsAreBoundedAndFinite(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"blip", NewBlip(rate, 440, 660, 90*time.Millisecond), rate.N(90 * time.Millisecond)},
		{"whoosh", NewWhoosh(rate, 400*time.Millisecond, 1), rate.N(400 * time.Millisecond)},
		{"buzz", NewBuzz(rate, 120, 250*time.Millisecond), rate.N(250 * time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := tt.s.Stream(buf)
				for i := 0; i < n; i++ {
					if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
						t.Fatalf("sample %d = %v", total+i, buf[i])
					}
				}
				total += n
				if !ok {
					break
				}
				if total > tt.want+len(buf) {
					t.Fatal("streamer never drained")
				}
			}
			if total != tt.want {
				t.Errorf("streamed %d samples, want %d", total, tt.want)
			}
			if tt.s.Err() != nil {
				t.Errorf("Err() = %v", tt.s.Err())
			}
		})
	}
}

func TestWhooshIsSeeded(t *testing.T) {
	a := make([][2]float64, 256)
	b := make([][2]float64, 256)
	NewWhoosh(rate, time.Second, 7).Stream(a)
	NewWhoosh(rate, time.Second, 7).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name string
		res  game.TickResult
		want []Cue
	}{
		{"quiet", game.TickResult{}, nil},
		{"one capture", game.TickResult{Captured: 1}, []Cue{CueCapture}},
		{"capped captures", game.TickResult{Captured: 9}, []Cue{CueCapture, CueCapture, CueCapture}},
		{"ink and sting", game.TickResult{InkReleases: 1, Stunned: true}, []Cue{CueInk, CueStun}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CuesFor(tt.res)
			if len(got) != len(tt.want) {
				t.Fatalf("CuesFor = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("CuesFor = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
