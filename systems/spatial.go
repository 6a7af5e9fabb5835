// Package systems holds the per-tick behavior of the reef: prey steering,
// predator chase and satiety, ink clouds and edge spawning.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ToroidalDelta returns the shortest path delta from a to b on a w×h
// wraparound field. Each component lies in [-w/2, w/2] (resp. h).
// Non-positive dimensions disable wrapping on that axis.
func ToroidalDelta(a, b r2.Vec, w, h float64) r2.Vec {
	return r2.Vec{
		X: wrapDelta(b.X-a.X, w),
		Y: wrapDelta(b.Y-a.Y, h),
	}
}

func wrapDelta(d, size float64) float64 {
	if size <= 0 {
		return d
	}
	if d > size/2 || d < -size/2 {
		return math.Remainder(d, size)
	}
	return d
}

// Wrap brings p into [0,w)×[0,h). It is exact for any overshoot, including
// positions left outside a field that has just shrunk.
func Wrap(p r2.Vec, w, h float64) r2.Vec {
	return r2.Vec{X: wrapCoord(p.X, w), Y: wrapCoord(p.Y, h)}
}

func wrapCoord(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	if x >= 0 && x < size {
		return x
	}
	x = math.Mod(x, size)
	if x < 0 {
		x += size
	}
	// -tiny + size rounds to size.
	if x >= size {
		x = 0
	}
	return x
}
