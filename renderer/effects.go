package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ink cloud dot grid.
const (
	inkDotSize  = 3
	inkGridStep = 6
	inkColor    = 0xa08cb4
)

// Predator status effects.
const (
	stunColor       = 0xffee00
	stunDotCount    = 6
	stunDotOrbit    = 28
	stunDotRadius   = 3
	stunOrbitWobble = 4

	confusionColor     = 0xffffff
	confusionDotCount  = 5
	confusionDotOrbit  = 24
	confusionDotRadius = 2
)

// inkDot is one square of an ink cloud, offset from the cloud center.
type inkDot struct {
	DX, DY float64
	Alpha  float64
}

// inkDots lays out a cloud on a fixed grid over the full max radius. The
// rng is seeded by the release time and consumed for every grid cell, so
// the pattern is stable from frame to frame as the radius grows. Cells are
// kept with a probability that falls off toward the rim.
func inkDots(dst []inkDot, seed int64, radius, maxRadius, alpha float64) []inkDot {
	if radius <= 0 {
		return dst
	}
	rng := rand.New(rand.NewSource(seed))
	for dy := -maxRadius; dy <= maxRadius; dy += inkGridStep {
		for dx := -maxRadius; dx <= maxRadius; dx += inkGridStep {
			roll := rng.Float64()
			dist := math.Hypot(dx, dy)
			if dist > radius {
				continue
			}
			density := 1 - dist/radius
			if roll > density {
				continue
			}
			dst = append(dst, inkDot{DX: dx, DY: dy, Alpha: alpha * (0.6 + density*0.4)})
		}
	}
	return dst
}

// orbitDots returns dot centers evenly spaced on a circle around (x, y),
// rotated by phase, with each radius offset by wobble(i).
func orbitDots(x, y float64, n int, orbit, phase float64, wobble func(i int) float64) []rl.Vector2 {
	out := make([]rl.Vector2, n)
	for i := range out {
		a := phase + float64(i)*2*math.Pi/float64(n)
		r := orbit
		if wobble != nil {
			r += wobble(i)
		}
		out[i] = rl.Vector2{X: float32(x + math.Cos(a)*r), Y: float32(y + math.Sin(a)*r)}
	}
	return out
}

// stunDots spin clockwise and wobble in and out.
func stunDots(x, y, nowMs float64) ([]rl.Vector2, float64) {
	blink := 0.7 + 0.3*(0.5+0.5*math.Sin(nowMs*0.01))
	dots := orbitDots(x, y, stunDotCount, stunDotOrbit, nowMs*0.003, func(i int) float64 {
		return stunOrbitWobble * math.Sin(nowMs*0.008+float64(i))
	})
	return dots, blink
}

// confusionDots spin counter-clockwise, opposite to the stun dots.
func confusionDots(x, y, nowMs float64) ([]rl.Vector2, float64) {
	blink := 0.6 + 0.4*(0.5+0.5*math.Sin(nowMs*0.008))
	return orbitDots(x, y, confusionDotCount, confusionDotOrbit, -nowMs*0.002, nil), blink
}

func drawDots(dots []rl.Vector2, radius float32, color uint32, alpha float64) {
	glow := hexColor(color, alpha*0.25)
	c := hexColor(color, alpha)
	for _, d := range dots {
		rl.DrawCircleV(d, radius*2, glow)
		rl.DrawCircleV(d, radius, c)
	}
}
