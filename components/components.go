// Package components defines ECS components for the reef.
package components

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/species"
)

// Position represents an entity's field position.
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p Position) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Velocity represents an entity's velocity in units per tick.
type Velocity struct {
	X, Y float64
}

// Vec returns the velocity as a vector.
func (v Velocity) Vec() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

// Prey holds the identity of one prey organism.
// Species never changes after spawn; Params is cached from the registry.
type Prey struct {
	ID      uint32
	Species species.Species
	Params  *species.Params
}

// Ink holds the ink-cloud state of a prey. Only the evasive species ever
// releases a cloud; for the others the component stays zero.
type Ink struct {
	CooldownUntil float64 // ms; no release before this
	LastInkedAt   float64 // ms; valid only when HasInked
	LastX, LastY  float64 // cloud center
	HasInked      bool
}

// Center returns the cloud center.
func (k Ink) Center() r2.Vec { return r2.Vec{X: k.LastX, Y: k.LastY} }
