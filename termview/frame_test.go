package termview

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/species"
)

func TestCellOf(t *testing.T) {
	g := Grid{FieldW: 800, FieldH: 600, Cols: 80, Rows: 30}
	tests := []struct {
		pos          r2.Vec
		wantX, wantY int
	}{
		{r2.Vec{X: 0, Y: 0}, 0, 0},
		{r2.Vec{X: 405, Y: 310}, 40, 15},
		{r2.Vec{X: 799.9, Y: 599.9}, 79, 29},
		{r2.Vec{X: 800, Y: 600}, 79, 29},
		{r2.Vec{X: -1, Y: -1}, 0, 0},
	}
	for _, tt := range tests {
		x, y := g.CellOf(tt.pos)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("CellOf(%v) = (%d, %d), want (%d, %d)", tt.pos, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		v    r2.Vec
		want rune
	}{
		{r2.Vec{X: 1}, '→'},
		{r2.Vec{X: -1}, '←'},
		{r2.Vec{Y: 1}, '↓'},
		{r2.Vec{Y: -1}, '↑'},
		{r2.Vec{X: 1, Y: -1}, '↗'},
		{r2.Vec{X: -1, Y: 1}, '↙'},
	}
	for _, tt := range tests {
		if got := Heading(tt.v); got != tt.want {
			t.Errorf("Heading(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
	if got := Glyph(species.Crab, r2.Vec{X: 1}); got != 'x' {
		t.Errorf("crab glyph = %q", got)
	}
	if got := Glyph(species.Sardine, r2.Vec{X: -1}); got != '←' {
		t.Errorf("sardine glyph = %q", got)
	}
}

func TestComposeOrder(t *testing.T) {
	g := Grid{FieldW: 800, FieldH: 600, Cols: 80, Rows: 30}
	prey := []game.PreyView{
		{ID: 1, Position: r2.Vec{X: 100, Y: 100}, Velocity: r2.Vec{X: 1}, Species: species.Octopus,
			Ink: game.InkView{Active: true, Position: r2.Vec{X: 100, Y: 100}, Radius: 30, Alpha: 0.5}},
		{ID: 2, Position: r2.Vec{X: 500, Y: 300}, Species: species.Manta},
	}
	pred := game.PredatorView{Position: r2.Vec{X: 400, Y: 300}, Stunned: true}

	cells := Compose(nil, g, prey, pred)
	if len(cells) < 4 {
		t.Fatalf("got %d cells", len(cells))
	}

	inked := 0
	for _, c := range cells[:len(cells)-3] {
		if c.Rune != inkRune {
			t.Fatalf("expected ink before sprites, got %q", c.Rune)
		}
		inked++
	}
	// A 30px cloud on 10x20px cells covers several cells but not a huge area.
	if inked < 4 || inked > 40 {
		t.Errorf("ink covers %d cells", inked)
	}

	tail := cells[len(cells)-3:]
	if tail[0].Rune != 'o' || tail[1].Rune != 'M' {
		t.Errorf("prey runes = %q %q", tail[0].Rune, tail[1].Rune)
	}
	if tail[2].Rune != stunnedRune || tail[2].X != 40 || tail[2].Y != 15 {
		t.Errorf("shark cell = %+v", tail[2])
	}
}

func TestInkWrapsAtEdges(t *testing.T) {
	g := Grid{FieldW: 800, FieldH: 600, Cols: 80, Rows: 30}
	ink := game.InkView{Active: true, Position: r2.Vec{X: 2, Y: 2}, Radius: 25, Alpha: 1}
	for _, c := range appendInk(nil, g, ink) {
		if c.X < 0 || c.X >= g.Cols || c.Y < 0 || c.Y >= g.Rows {
			t.Fatalf("cell %d,%d outside grid", c.X, c.Y)
		}
	}
}

func TestComposeEmptyGrid(t *testing.T) {
	if cells := Compose(nil, Grid{}, nil, game.PredatorView{}); len(cells) != 0 {
		t.Errorf("got %d cells for an empty grid", len(cells))
	}
}

func TestStatusLine(t *testing.T) {
	s := StatusLine(42, game.Census{Total: 60, Satiety: 2.5, Confused: true}, false)
	for _, want := range []string{"tick 42", "prey 60", "satiety 2.5", "confused"} {
		if !strings.Contains(s, want) {
			t.Errorf("status %q missing %q", s, want)
		}
	}
	if !strings.Contains(StatusLine(0, game.Census{Stunned: true}, true), "paused") {
		t.Error("paused should win over stunned")
	}
}
