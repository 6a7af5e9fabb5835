package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/components"
)

// inkPeakAlpha is the cloud opacity at release.
const inkPeakAlpha = 0.92

// CloudState returns the radius and opacity of a cloud at the given age.
// The radius grows along a square-root curve and never drops below the
// minimum radius; opacity fades linearly. Opacity is for rendering only.
func CloudState(ageMs float64, t *Tuning) (radius, alpha float64) {
	progress := 0.0
	if t.InkDurationMs > 0 {
		progress = ageMs / t.InkDurationMs
	}
	if progress < 0 {
		progress = 0
	}
	radius = math.Max(t.InkMinRadius, t.InkMaxRadius*math.Sqrt(progress))
	alpha = (1 - progress) * inkPeakAlpha
	if alpha < 0 {
		alpha = 0
	}
	return radius, alpha
}

// CloudAge returns the age of the ink cloud and whether it is still alive.
func CloudAge(ink *components.Ink, now float64, t *Tuning) (float64, bool) {
	if !ink.HasInked {
		return 0, false
	}
	age := now - ink.LastInkedAt
	return age, age >= 0 && age <= t.InkDurationMs
}

// TryReleaseInk releases a new cloud at pos when the predator is inside the
// flee radius, the cooldown has expired and the random draw succeeds. The
// checks run cheapest first so the draw is only consumed when it matters.
func TryReleaseInk(ink *components.Ink, pos r2.Vec, predatorDist, now float64, t *Tuning, rng *rand.Rand) bool {
	if predatorDist >= t.FleeRadius {
		return false
	}
	if now < ink.CooldownUntil {
		return false
	}
	if rng.Float64() >= t.InkProbability {
		return false
	}
	ink.HasInked = true
	ink.LastInkedAt = now
	ink.LastX, ink.LastY = pos.X, pos.Y
	ink.CooldownUntil = now + t.InkCooldownMs
	return true
}

// CloudTouches reports whether a live cloud reaches the predator position.
func CloudTouches(ink *components.Ink, predatorPos r2.Vec, now, w, h float64, t *Tuning) bool {
	age, alive := CloudAge(ink, now, t)
	if !alive {
		return false
	}
	radius, _ := CloudState(age, t)
	return r2.Norm(ToroidalDelta(ink.Center(), predatorPos, w, h)) <= radius
}
