package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/species"
)

// PreyState is the read-only view of one prey used for neighbor scans.
// A tick builds one snapshot of every prey before any of them moves.
type PreyState struct {
	ID      uint32
	Species species.Species
	Params  *species.Params
	Pos     r2.Vec
	Vel     r2.Vec
}

// Env carries the per-tick inputs shared by every prey update.
type Env struct {
	Width, Height float64
	GlobalSpeed   float64 // host prey max speed
	GlobalForce   float64 // host prey max force
	Tuning        *Tuning
}

// Limits returns the effective max speed and force of a species: its own
// caps scaled by the ratio of the global multipliers to the defaults.
func (e *Env) Limits(p *species.Params) (maxSpeed, maxForce float64) {
	maxSpeed = p.MaxSpeed
	maxForce = p.MaxForce
	if e.Tuning.DefaultMaxSpeed > 0 {
		maxSpeed *= e.GlobalSpeed / e.Tuning.DefaultMaxSpeed
	}
	if e.Tuning.DefaultMaxForce > 0 {
		maxForce *= e.GlobalForce / e.Tuning.DefaultMaxForce
	}
	return maxSpeed, maxForce
}

// Forces holds the five steering contributions before weighting.
type Forces struct {
	Separation r2.Vec
	Alignment  r2.Vec
	Cohesion   r2.Vec
	Flee       r2.Vec
	Inertia    r2.Vec
}

// Separation pushes away from every neighbor inside the separation radius,
// each contributing in inverse proportion to its distance. Species is ignored.
func Separation(self *PreyState, flock []PreyState, env *Env) r2.Vec {
	maxSpeed, maxForce := env.Limits(self.Params)
	radius := self.Params.SeparationRadius

	var sum r2.Vec
	count := 0
	for i := range flock {
		other := &flock[i]
		if other.ID == self.ID {
			continue
		}
		away := ToroidalDelta(other.Pos, self.Pos, env.Width, env.Height)
		dist := r2.Norm(away)
		if dist > 0 && dist < radius {
			sum.X += away.X / dist / dist
			sum.Y += away.Y / dist / dist
			count++
		}
	}
	if count == 0 {
		return r2.Vec{}
	}
	dir := Normalize(r2.Scale(1/float64(count), sum))
	return steer(dir, self.Vel, maxSpeed, maxForce)
}

// flockWeight returns the weight of other in alignment/cohesion, and false
// when other must be skipped because the same-species cap is reached.
func flockWeight(self, other *PreyState, sameCount *int) (float64, bool) {
	if other.Species != self.Species {
		return 1.0, true
	}
	if *sameCount >= self.Params.MaxFlockSize {
		return 0, false
	}
	*sameCount++
	return self.Params.IntraSpeciesBias, true
}

// Alignment steers toward the weighted mean heading of neighbors.
func Alignment(self *PreyState, flock []PreyState, env *Env) r2.Vec {
	maxSpeed, maxForce := env.Limits(self.Params)
	radius := self.Params.AlignmentRadius

	var sum r2.Vec
	var total float64
	same := 0
	for i := range flock {
		other := &flock[i]
		if other.ID == self.ID {
			continue
		}
		dist := r2.Norm(ToroidalDelta(self.Pos, other.Pos, env.Width, env.Height))
		if dist <= 0 || dist >= radius {
			continue
		}
		w, ok := flockWeight(self, other, &same)
		if !ok {
			continue
		}
		sum = r2.Add(sum, r2.Scale(w, other.Vel))
		total += w
	}
	if total == 0 {
		return r2.Vec{}
	}
	dir := Normalize(r2.Scale(1/total, sum))
	return steer(dir, self.Vel, maxSpeed, maxForce)
}

// Cohesion steers toward the weighted centroid of neighbors. The centroid is
// taken over wrapped deltas so groups straddling an edge stay together.
func Cohesion(self *PreyState, flock []PreyState, env *Env) r2.Vec {
	maxSpeed, maxForce := env.Limits(self.Params)
	radius := self.Params.CohesionRadius

	var sum r2.Vec
	var total float64
	same := 0
	for i := range flock {
		other := &flock[i]
		if other.ID == self.ID {
			continue
		}
		d := ToroidalDelta(self.Pos, other.Pos, env.Width, env.Height)
		dist := r2.Norm(d)
		if dist <= 0 || dist >= radius {
			continue
		}
		w, ok := flockWeight(self, other, &same)
		if !ok {
			continue
		}
		sum = r2.Add(sum, r2.Scale(w, d))
		total += w
	}
	if total == 0 {
		return r2.Vec{}
	}
	dir := Normalize(r2.Scale(1/total, sum))
	return steer(dir, self.Vel, maxSpeed, maxForce)
}

// Flee steers straight away from the predator inside the flee radius. The
// force cap grows linearly from zero at the radius to FleeForceScale times
// the max force at contact, so fleeing overrides the normal force limit.
func Flee(self *PreyState, predatorPos r2.Vec, env *Env) r2.Vec {
	t := env.Tuning
	away := ToroidalDelta(predatorPos, self.Pos, env.Width, env.Height)
	dist := r2.Norm(away)
	if dist >= t.FleeRadius {
		return r2.Vec{}
	}
	maxSpeed, maxForce := env.Limits(self.Params)
	strength := 1 - dist/t.FleeRadius
	return steer(Normalize(away), self.Vel, maxSpeed, maxForce*t.FleeForceScale*strength)
}

// Inertia pulls velocity toward the current heading at max speed. Species
// without inertia skip the rule entirely.
func Inertia(self *PreyState, env *Env) r2.Vec {
	if self.Params.InertiaBias <= 0 {
		return r2.Vec{}
	}
	maxSpeed, maxForce := env.Limits(self.Params)
	return steer(Normalize(self.Vel), self.Vel, maxSpeed, maxForce)
}

// PreyForces evaluates all five rules for self against the snapshot.
func PreyForces(self *PreyState, flock []PreyState, predatorPos r2.Vec, env *Env) Forces {
	return Forces{
		Separation: Separation(self, flock, env),
		Alignment:  Alignment(self, flock, env),
		Cohesion:   Cohesion(self, flock, env),
		Flee:       Flee(self, predatorPos, env),
		Inertia:    Inertia(self, env),
	}
}

// IntegratePrey applies the weighted forces to velocity, caps the speed,
// moves and wraps. It returns the new position and velocity.
func IntegratePrey(self *PreyState, f Forces, env *Env) (pos, vel r2.Vec) {
	p := self.Params
	fleeWeight := p.FleeWeight
	if self.Species == species.Evasive {
		fleeWeight *= env.Tuning.EvasionFleeBias
	}

	vel = self.Vel
	vel = r2.Add(vel, r2.Scale(p.SeparationWeight, f.Separation))
	vel = r2.Add(vel, r2.Scale(p.AlignmentWeight, f.Alignment))
	vel = r2.Add(vel, r2.Scale(p.CohesionWeight, f.Cohesion))
	vel = r2.Add(vel, r2.Scale(fleeWeight, f.Flee))
	vel = r2.Add(vel, r2.Scale(p.InertiaBias, f.Inertia))

	maxSpeed, _ := env.Limits(p)
	vel = Limit(vel, maxSpeed)
	pos = Wrap(r2.Add(self.Pos, vel), env.Width, env.Height)
	return pos, vel
}
