package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/species"
)

const (
	iconBox   = 22
	iconPixel = 2
)

// PopulationPanel shows a sprite and count per species plus the shark.
type PopulationPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPopulationPanel creates a population panel.
func NewPopulationPanel(x, y, width int32) *PopulationPanel {
	return &PopulationPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (pp *PopulationPanel) SetPosition(x, y int32) {
	pp.x, pp.y = x, y
}

// Draw renders the counts, which the host refreshes on the census cadence.
func (pp *PopulationPanel) Draw(counts species.Counts) {
	r := pp.renderer
	th := r.Theme
	rows := int32(species.Count + 1)
	height := th.Padding*2 + th.LineHeight + 4 + rows*iconBox
	r.DrawPanel(pp.x, pp.y, pp.width, height)

	x := pp.x + th.Padding
	y := r.DrawTitle(x, pp.y+th.Padding, fmt.Sprintf("population %d", counts.Total()))

	for _, s := range species.All {
		v := species.VisualOf(s)
		pp.row(x, y, species.Sprites[v.SpriteKey], hex(v.Color), s.String(), counts.Get(s))
		y += iconBox
	}
	pp.row(x, y, species.Sprites[species.PredatorSpriteKey], hex(species.PredatorColor), "shark", 1)
}

func (pp *PopulationPanel) row(x, y int32, sprite species.Sprite, color rl.Color, label string, n int) {
	th := pp.renderer.Theme
	DrawIcon(sprite, x, y, iconBox, iconPixel, color)
	rl.DrawText(label, x+iconBox+6, y+5, th.FontSize, th.LabelColor)
	val := fmt.Sprintf("%d", n)
	rl.DrawText(val, pp.x+pp.width-th.Padding-rl.MeasureText(val, th.FontSize), y+5, th.FontSize, color)
}
