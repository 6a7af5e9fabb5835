// Package termview renders the reef into a terminal grid with tcell.
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/species"
)

// Cell is one drawn terminal cell.
type Cell struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

var glyphs = [species.Count]rune{
	species.Sardine:   0, // heading arrow
	species.Squid:     's',
	species.Octopus:   'o',
	species.Crab:      'x',
	species.SeaTurtle: 'T',
	species.Jellyfish: 'j',
	species.Manta:     'M',
}

// arrows by octant, counter-clockwise from east in screen space (y down).
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

const (
	inkRune      = '░'
	inkColor     = 0xa08cb4
	stunnedRune  = '*'
	confusedRune = '?'
	sharkRune    = 'S'
)

// Heading returns the arrow closest to the direction of v.
func Heading(v r2.Vec) rune {
	a := math.Atan2(v.Y, v.X)
	oct := int(math.Round(a/(math.Pi/4))+8) % 8
	return arrows[oct]
}

// Glyph returns the rune for a prey.
func Glyph(s species.Species, vel r2.Vec) rune {
	if !s.Valid() || glyphs[s] == 0 {
		return Heading(vel)
	}
	return glyphs[s]
}

func rgb(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xff), int32(c>>8&0xff), int32(c&0xff))
}

// Grid maps field coordinates onto a cols x rows terminal area.
type Grid struct {
	FieldW, FieldH float64
	Cols, Rows     int
}

// CellOf returns the cell containing pos, clamped to the grid.
func (g Grid) CellOf(pos r2.Vec) (int, int) {
	x := int(pos.X / g.FieldW * float64(g.Cols))
	y := int(pos.Y / g.FieldH * float64(g.Rows))
	return min(max(x, 0), g.Cols-1), min(max(y, 0), g.Rows-1)
}

// Compose lays out one frame. Ink goes down first so prey and the shark
// draw over it; the shark is last.
func Compose(dst []Cell, g Grid, prey []game.PreyView, pred game.PredatorView) []Cell {
	if g.Cols <= 0 || g.Rows <= 0 || g.FieldW <= 0 || g.FieldH <= 0 {
		return dst
	}
	for i := range prey {
		if prey[i].Ink.Active {
			dst = appendInk(dst, g, prey[i].Ink)
		}
	}

	for i := range prey {
		v := &prey[i]
		x, y := g.CellOf(v.Position)
		color := rgb(species.VisualOf(v.Species).Color)
		dst = append(dst, Cell{X: x, Y: y, Rune: Glyph(v.Species, v.Velocity), Style: tcell.StyleDefault.Foreground(color)})
	}

	x, y := g.CellOf(pred.Position)
	shark := Cell{X: x, Y: y, Rune: sharkRune, Style: tcell.StyleDefault.Foreground(rgb(species.PredatorColor)).Bold(true)}
	switch {
	case pred.Stunned:
		shark.Rune = stunnedRune
		shark.Style = shark.Style.Background(tcell.ColorYellow)
	case pred.Confused:
		shark.Rune = confusedRune
	}
	return append(dst, shark)
}

// appendInk shades every cell whose center lies inside the cloud, wrapping
// at the grid edges like the field does.
func appendInk(dst []Cell, g Grid, ink game.InkView) []Cell {
	cw := g.FieldW / float64(g.Cols)
	ch := g.FieldH / float64(g.Rows)
	cx, cy := g.CellOf(ink.Position)
	rx := int(math.Ceil(ink.Radius / cw))
	ry := int(math.Ceil(ink.Radius / ch))

	shade := uint32(float64(inkColor&0xff) * ink.Alpha)
	style := tcell.StyleDefault.Foreground(rgb(inkColor)).Background(tcell.NewRGBColor(int32(shade/3), 0, int32(shade/2)))
	r2max := ink.Radius * ink.Radius
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			ox := (float64(cx+dx)+0.5)*cw - ink.Position.X
			oy := (float64(cy+dy)+0.5)*ch - ink.Position.Y
			if ox*ox+oy*oy > r2max {
				continue
			}
			x := ((cx+dx)%g.Cols + g.Cols) % g.Cols
			y := ((cy+dy)%g.Rows + g.Rows) % g.Rows
			dst = append(dst, Cell{X: x, Y: y, Rune: inkRune, Style: style})
		}
	}
	return dst
}

// StatusLine formats the bottom line.
func StatusLine(tick int64, c game.Census, paused bool) string {
	state := "hunting"
	switch {
	case paused:
		state = "paused"
	case c.Stunned:
		state = "stunned"
	case c.Confused:
		state = "confused"
	}
	return fmt.Sprintf(" shoal  tick %d  prey %d  satiety %.1f  %s  [space] pause [+/-] prey [q] quit",
		tick, c.Total, c.Satiety, state)
}
