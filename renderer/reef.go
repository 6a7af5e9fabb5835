package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/species"
)

// ReefRenderer draws prey, ink clouds and the predator.
type ReefRenderer struct {
	sprites      *spriteCache
	inkMaxRadius float64
	dots         []inkDot

	// ShowInk draws ink clouds; the kernel confuses the shark either way.
	ShowInk bool
}

// NewReefRenderer creates a renderer; inkMaxRadius sizes the ink dot grid.
func NewReefRenderer(inkMaxRadius float64) *ReefRenderer {
	return &ReefRenderer{
		sprites:      newSpriteCache(),
		inkMaxRadius: inkMaxRadius,
		ShowInk:      true,
	}
}

// Draw renders one frame of the reef. Ink goes underneath the animals.
func (r *ReefRenderer) Draw(prey []game.PreyView, pred game.PredatorView, nowMs float64) {
	for i := range prey {
		if r.ShowInk && prey[i].Ink.Active {
			r.drawInk(&prey[i].Ink)
		}
	}

	for i := range prey {
		p := &prey[i]
		v := species.VisualOf(p.Species)
		angle := math.Atan2(p.Velocity.Y, p.Velocity.X)
		r.sprites.drawSprite(v.SpriteKey, v.PixelSize, p.Position.X, p.Position.Y, angle, v.Color)
	}

	r.DrawPredator(pred, nowMs)
}

// DrawPredator draws the shark along its retained facing, then the stun
// dots, or the confusion dots when not stunned.
func (r *ReefRenderer) DrawPredator(pred game.PredatorView, nowMs float64) {
	x, y := pred.Position.X, pred.Position.Y
	r.sprites.drawSprite(species.PredatorSpriteKey, species.PredatorPixelSize, x, y, pred.Facing, species.PredatorColor)

	switch {
	case pred.Stunned:
		dots, alpha := stunDots(x, y, nowMs)
		drawDots(dots, stunDotRadius, stunColor, alpha)
	case pred.Confused:
		dots, alpha := confusionDots(x, y, nowMs)
		drawDots(dots, confusionDotRadius, confusionColor, alpha)
	}
}

func (r *ReefRenderer) drawInk(ink *game.InkView) {
	r.dots = inkDots(r.dots[:0], int64(ink.ReleasedAt), ink.Radius, r.inkMaxRadius, ink.Alpha)
	for _, d := range r.dots {
		rl.DrawRectangle(
			int32(ink.Position.X+d.DX-inkDotSize/2.0),
			int32(ink.Position.Y+d.DY-inkDotSize/2.0),
			inkDotSize, inkDotSize,
			hexColor(inkColor, d.Alpha),
		)
	}
}
