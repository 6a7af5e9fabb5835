package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/systems"
)

func TestThresholdCoupling(t *testing.T) {
	tests := []struct {
		name                 string
		set                  func(*game.Params, float64)
		value                float64
		wantSpeedup, wantOver float64
	}{
		{"speedup below overfed", SetSpeedupThreshold, 5, 5, 8},
		{"speedup meets overfed", SetSpeedupThreshold, 8, 8, 9},
		{"speedup passes overfed", SetSpeedupThreshold, 12, 12, 13},
		{"overfed above speedup", SetOverfedThreshold, 10, 3, 10},
		{"overfed meets speedup", SetOverfedThreshold, 3, 2, 3},
		{"overfed below speedup", SetOverfedThreshold, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := game.DefaultParams(systems.DefaultTuning()) // thresholds 3 / 8
			tt.set(&p, tt.value)
			if p.Satiety.SpeedupThreshold != tt.wantSpeedup || p.Satiety.OverfedThreshold != tt.wantOver {
				t.Errorf("thresholds = %v/%v, want %v/%v",
					p.Satiety.SpeedupThreshold, p.Satiety.OverfedThreshold, tt.wantSpeedup, tt.wantOver)
			}
		})
	}
}

func TestSliderSnap(t *testing.T) {
	s := Slider{Min: 0.001, Max: 0.020, Step: 0.001}
	tests := []struct {
		in, want float64
	}{
		{0.0084, 0.008},
		{0.0086, 0.009},
		{-1, 0.001},
		{5, 0.020},
	}
	for _, tt := range tests {
		if got := s.Snap(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlidersRoundTrip(t *testing.T) {
	p := game.DefaultParams(systems.DefaultTuning())
	for _, s := range Sliders(200) {
		v := s.Get(&p)
		if v < s.Min || v > s.Max {
			t.Errorf("%s default %v outside [%v, %v]", s.Label, v, s.Min, s.Max)
		}
		s.Set(&p, v)
		if got := s.Get(&p); got != v {
			t.Errorf("%s: set %v, got %v", s.Label, v, got)
		}
	}
}

func TestOverlayRegistry(t *testing.T) {
	r := NewOverlayRegistry(false)
	if r.IsEnabled(OverlayCRT) || !r.IsEnabled(OverlayParams) {
		t.Fatal("unexpected initial state")
	}
	id, on, ok := r.HandleKeyPress(r.All()[0].Key)
	if !ok || id != OverlayCRT || !on {
		t.Errorf("HandleKeyPress = %v %v %v", id, on, ok)
	}
	if _, _, ok := r.HandleKeyPress(-1); ok {
		t.Error("unbound key toggled something")
	}
	if r.IsEnabled("missing") {
		t.Error("unknown overlay reported enabled")
	}
	if got := r.Legend(); !strings.HasPrefix(got, "[C] CRT  [I] Ink") {
		t.Errorf("Legend() = %q", got)
	}
}
