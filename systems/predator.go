package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/species"
)

// Predator is the single pursuing shark. Timed states are absolute expiry
// timestamps in the host clock (ms).
type Predator struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Satiety float64

	StunUntil          float64
	ConfusedUntil      float64
	JellyCooldownUntil float64 // stinging prey are ignored until this time

	// Facing survives a zeroed velocity while stunned. It follows velocity
	// and never drives movement.
	Facing float64

	// SpeedCap is the satiety-adjusted max speed used by the last update.
	SpeedCap float64
}

// NewPredator places a predator at pos with a random heading at base speed.
func NewPredator(pos r2.Vec, t *Tuning, rng *rand.Rand) *Predator {
	angle := rng.Float64() * 2 * math.Pi
	return &Predator{
		Pos:      pos,
		Vel:      r2.Scale(t.PredatorSpeed, fromAngle(angle)),
		Facing:   angle,
		SpeedCap: t.PredatorSpeed,
	}
}

// Stun freezes the predator until now+durationMs.
func (p *Predator) Stun(now, durationMs float64) {
	p.StunUntil = now + durationMs
}

// Confuse makes the predator wander until now+durationMs.
func (p *Predator) Confuse(now, durationMs float64) {
	p.ConfusedUntil = now + durationMs
}

// IsStunned reports whether the stun is still active at now.
func (p *Predator) IsStunned(now float64) bool {
	return now < p.StunUntil
}

// IsConfused reports whether the confusion is still active at now.
func (p *Predator) IsConfused(now float64) bool {
	return now < p.ConfusedUntil
}

// canEat reports whether prey of species s may be chased and captured.
func (p *Predator) canEat(s species.Species, now float64) bool {
	return s != species.Stinging || now >= p.JellyCooldownUntil
}

// Capture is the outcome of one predator update.
type Capture struct {
	IDs     []uint32
	Species species.Counts
	Stunned bool // a stinging prey was eaten this tick
}

// scan walks the prey once, tracking the nearest eligible prey and every
// eligible prey inside the eat radius.
func (p *Predator) scan(prey []PreyState, now, w, h float64, t *Tuning, out *Capture) (nearest r2.Vec, found bool) {
	minDist := math.Inf(1)
	for i := range prey {
		q := &prey[i]
		if !p.canEat(q.Species, now) {
			continue
		}
		d := ToroidalDelta(p.Pos, q.Pos, w, h)
		dist := r2.Norm(d)
		if dist < minDist {
			minDist = dist
			nearest = d
			found = true
		}
		if dist < t.EatRadius {
			out.IDs = append(out.IDs, q.ID)
			out.Species.Add(q.Species)
		}
	}
	return nearest, found
}

// Update advances the predator one tick: chase (or wander, or hold still),
// integrate, wrap, resolve captures and settle satiety. The caller removes
// the captured prey.
func (p *Predator) Update(prey []PreyState, now, w, h float64, sp SatietyParams, t *Tuning, rng *rand.Rand) Capture {
	var out Capture

	mult := SpeedMultiplier(p.Satiety, sp)
	speed := t.PredatorSpeed * mult
	force := t.PredatorMaxForce * mult
	p.SpeedCap = speed

	if p.IsStunned(now) {
		p.Vel = r2.Vec{}
		p.Pos = Wrap(p.Pos, w, h)
	} else {
		nearest, found := p.scan(prey, now, w, h, t, &out)

		var accel r2.Vec
		switch {
		case p.IsConfused(now):
			wander := (rng.Float64()*2 - 1) * t.ConfusionWander
			accel = steer(fromAngle(p.Facing+wander), p.Vel, speed, force)
		case found:
			accel = steer(Normalize(nearest), p.Vel, speed, force)
		}

		p.Vel = Limit(r2.Add(p.Vel, accel), speed)
		p.Pos = Wrap(r2.Add(p.Pos, p.Vel), w, h)
		if r2.Norm(p.Vel) > 0 {
			p.Facing = heading(p.Vel)
		}

		if out.Species.Get(species.Stinging) > 0 {
			p.Stun(now, t.StunDurationMs)
			p.JellyCooldownUntil = now + t.JellyfishCooldownMs
			out.Stunned = true
		}
	}

	p.Satiety += float64(len(out.IDs))
	p.Satiety = math.Max(0, p.Satiety-sp.DecayRate)

	return out
}
