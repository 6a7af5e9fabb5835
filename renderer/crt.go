package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CRT overlay parameters.
const (
	scanlineInterval = 3
	scanlineAlpha    = 0.12

	vignetteInner = 0.35 // fraction of screen height
	vignetteOuter = 0.85
	vignetteAlpha = 0.55
	vignetteSteps = 24
)

// CRTOverlay darkens every third row and shades the corners.
type CRTOverlay struct {
	Enabled bool
}

// Draw renders the overlay over a w x h screen.
func (c *CRTOverlay) Draw(w, h int32) {
	if c == nil || !c.Enabled {
		return
	}

	line := hexColor(0x000000, scanlineAlpha)
	for y := int32(0); y < h; y += scanlineInterval {
		rl.DrawRectangle(0, y, w, 1, line)
	}

	// A radial gradient approximated by concentric rings.
	center := rl.Vector2{X: float32(w) / 2, Y: float32(h) / 2}
	inner := float64(h) * vignetteInner
	outer := float64(h) * vignetteOuter
	step := (outer - inner) / vignetteSteps
	for i := 0; i < vignetteSteps; i++ {
		r0 := inner + float64(i)*step
		a := vignetteAlpha * float64(i+1) / vignetteSteps
		rl.DrawRing(center, float32(r0), float32(r0+step), 0, 360, 64, hexColor(0x000000, a))
	}
	corner := math.Hypot(float64(w), float64(h)) / 2
	if corner > outer {
		rl.DrawRing(center, float32(outer), float32(corner)+1, 0, 360, 64, hexColor(0x000000, vignetteAlpha))
	}
}
