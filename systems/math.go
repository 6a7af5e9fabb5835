package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector functions

// Magnitude returns the Euclidean length of v.
func Magnitude(v r2.Vec) float64 {
	return r2.Norm(v)
}

// Normalize returns the unit vector of v, or the zero vector when v has
// exactly zero length.
func Normalize(v r2.Vec) r2.Vec {
	mag := r2.Norm(v)
	if mag == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/mag, v)
}

// Limit scales v down to max when its length exceeds max.
func Limit(v r2.Vec, max float64) r2.Vec {
	mag := r2.Norm(v)
	if mag > max {
		return r2.Scale(max/mag, v)
	}
	return v
}

// steer returns the force turning vel toward dir at maxSpeed, capped at maxForce.
func steer(dir, vel r2.Vec, maxSpeed, maxForce float64) r2.Vec {
	return Limit(r2.Sub(r2.Scale(maxSpeed, dir), vel), maxForce)
}

// Angle functions

// heading returns the angle of v in radians.
func heading(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// fromAngle returns the unit vector for angle a.
func fromAngle(a float64) r2.Vec {
	return r2.Vec{X: math.Cos(a), Y: math.Sin(a)}
}
