package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func vecNear(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   r2.Vec
		want r2.Vec
	}{
		{"zero", r2.Vec{}, r2.Vec{}},
		{"axis", r2.Vec{X: 5}, r2.Vec{X: 1}},
		{"3-4-5", r2.Vec{X: 3, Y: -4}, r2.Vec{X: 0.6, Y: -0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !vecNear(got, tt.want, eps) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name string
		in   r2.Vec
		max  float64
		want r2.Vec
	}{
		{"under", r2.Vec{X: 1, Y: 1}, 5, r2.Vec{X: 1, Y: 1}},
		{"equal", r2.Vec{X: 3, Y: 4}, 5, r2.Vec{X: 3, Y: 4}},
		{"over", r2.Vec{X: 6, Y: 8}, 5, r2.Vec{X: 3, Y: 4}},
		{"zero max", r2.Vec{X: 1}, 0, r2.Vec{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Limit(tt.in, tt.max)
			if !vecNear(got, tt.want, eps) {
				t.Errorf("Limit(%v, %v) = %v, want %v", tt.in, tt.max, got, tt.want)
			}
		})
	}
	if m := Magnitude(r2.Vec{X: 3, Y: 4}); m != 5 {
		t.Errorf("Magnitude = %v, want 5", m)
	}
}

func TestToroidalDelta(t *testing.T) {
	const w, h = 800, 600
	tests := []struct {
		name string
		a, b r2.Vec
		want r2.Vec
	}{
		{"plain", r2.Vec{X: 100, Y: 100}, r2.Vec{X: 150, Y: 80}, r2.Vec{X: 50, Y: -20}},
		{"across right edge", r2.Vec{X: 790, Y: 300}, r2.Vec{X: 10, Y: 300}, r2.Vec{X: 20, Y: 0}},
		{"across left edge", r2.Vec{X: 10, Y: 300}, r2.Vec{X: 790, Y: 300}, r2.Vec{X: -20, Y: 0}},
		{"across bottom", r2.Vec{X: 0, Y: 590}, r2.Vec{X: 0, Y: 5}, r2.Vec{X: 0, Y: 15}},
		{"far outside after shrink", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1610, Y: 0}, r2.Vec{X: 10, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToroidalDelta(tt.a, tt.b, w, h)
			if !vecNear(got, tt.want, 1e-9) {
				t.Errorf("ToroidalDelta(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if math.Abs(got.X) > w/2 || math.Abs(got.Y) > h/2 {
				t.Errorf("delta %v exceeds half field", got)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	const w, h = 800, 600
	tests := []struct {
		in, want r2.Vec
	}{
		{r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10, Y: 10}},
		{r2.Vec{X: 800, Y: 600}, r2.Vec{X: 0, Y: 0}},
		{r2.Vec{X: -1, Y: 601}, r2.Vec{X: 799, Y: 1}},
		{r2.Vec{X: 2405, Y: -1205}, r2.Vec{X: 5, Y: 595}},
		{r2.Vec{X: -1e-17, Y: 0}, r2.Vec{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		got := Wrap(tt.in, w, h)
		if !vecNear(got, tt.want, 1e-9) {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got.X < 0 || got.X >= w || got.Y < 0 || got.Y >= h {
			t.Errorf("Wrap(%v) = %v out of bounds", tt.in, got)
		}
	}
}
