package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Field edges.
const (
	EdgeTop = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgePoint picks one of the four edges uniformly and a uniform point along it.
func EdgePoint(rng *rand.Rand, w, h float64) r2.Vec {
	switch rng.Intn(4) {
	case EdgeTop:
		return r2.Vec{X: rng.Float64() * w, Y: 0}
	case EdgeBottom:
		return r2.Vec{X: rng.Float64() * w, Y: h}
	case EdgeLeft:
		return r2.Vec{X: 0, Y: rng.Float64() * h}
	default:
		return r2.Vec{X: w, Y: rng.Float64() * h}
	}
}

// RandomHeading returns a velocity with a uniform random direction at speed.
func RandomHeading(rng *rand.Rand, speed float64) r2.Vec {
	return r2.Scale(speed, fromAngle(rng.Float64()*2*math.Pi))
}
