// Package renderer draws the reef with raylib: neon pixel sprites, ink
// clouds, predator status effects and a CRT overlay.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background is the clear color of the reef.
var Background = rl.Color{R: 2, G: 6, B: 12, A: 255}

// hexColor converts 0xRRGGBB and an opacity in [0, 1] to a raylib color.
func hexColor(rgb uint32, alpha float64) rl.Color {
	return rl.Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: uint8(math.Round(clamp01(alpha) * 255)),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
