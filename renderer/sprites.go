package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/species"
)

// spriteGlowAlpha is the opacity of the halo drawn behind a sprite.
const spriteGlowAlpha = 0.18

// pixel is one filled sprite cell, as an offset from the sprite center in
// screen pixels before rotation.
type pixel struct {
	X, Y float32
}

// spriteCache holds the filled cells of each sprite at a given pixel size.
type spriteCache struct {
	cells map[string][]pixel
	radii map[string]float32 // half-diagonal, for the glow
}

func newSpriteCache() *spriteCache {
	return &spriteCache{
		cells: make(map[string][]pixel),
		radii: make(map[string]float32),
	}
}

// layout returns the filled cells of the sprite centered on the origin.
func layout(sp species.Sprite, size int) []pixel {
	if len(sp) == 0 {
		return nil
	}
	s := float32(size)
	offX := -float32(len(sp[0])) * s / 2
	offY := -float32(len(sp)) * s / 2

	var out []pixel
	for row, cols := range sp {
		for col, v := range cols {
			if v == 1 {
				out = append(out, pixel{
					X: offX + float32(col)*s + s/2,
					Y: offY + float32(row)*s + s/2,
				})
			}
		}
	}
	return out
}

func (c *spriteCache) get(key string, size int) ([]pixel, float32) {
	if cells, ok := c.cells[key]; ok {
		return cells, c.radii[key]
	}
	sp := species.Sprites[key]
	cells := layout(sp, size)
	var r float32
	if len(sp) > 0 {
		w, h := float32(len(sp[0])*size), float32(len(sp)*size)
		r = float32(math.Hypot(float64(w), float64(h))) / 2
	}
	c.cells[key] = cells
	c.radii[key] = r
	return cells, r
}

// drawSprite draws a sprite centered at (x, y), rotated so that its top
// points along angle (radians, screen coordinates).
func (c *spriteCache) drawSprite(key string, size int, x, y, angle float64, color uint32) {
	cells, radius := c.get(key, size)
	center := rl.Vector2{X: float32(x), Y: float32(y)}

	rl.DrawCircleV(center, radius, hexColor(color, spriteGlowAlpha))

	rot := angle + math.Pi/2
	sin, cos := math.Sincos(rot)
	s := float32(size)
	deg := float32(rot * 180 / math.Pi)
	col := hexColor(color, 1)
	for _, p := range cells {
		px := float32(x) + p.X*float32(cos) - p.Y*float32(sin)
		py := float32(y) + p.X*float32(sin) + p.Y*float32(cos)
		rl.DrawRectanglePro(
			rl.Rectangle{X: px, Y: py, Width: s, Height: s},
			rl.Vector2{X: s / 2, Y: s / 2},
			deg,
			col,
		)
	}
}
