// Package ui draws the raylib panels around the reef: the parameter
// sliders, the population readout, the HUD and the overlay toggles.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Title       rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Accent      rl.Color // satiety and predator readouts
	Padding     int32
	LineHeight  int32
	LabelWidth  int32
	FontSize    int32
	TitleSize   int32
}

// DefaultTheme returns the terminal-green theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 4, G: 10, B: 8, A: 220},
		PanelBorder: rl.Color{R: 30, G: 90, B: 60, A: 255},
		Title:       rl.Color{R: 80, G: 255, B: 150, A: 255},
		LabelColor:  rl.Color{R: 102, G: 102, B: 102, A: 255},
		ValueColor:  rl.Color{R: 200, G: 255, B: 220, A: 255},
		Accent:      rl.Color{R: 255, G: 34, B: 0, A: 255},
		Padding:     10,
		LineHeight:  16,
		LabelWidth:  130,
		FontSize:    12,
		TitleSize:   14,
	}
}

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawTitle draws a panel title and returns the next Y position.
func (r *Renderer) DrawTitle(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.TitleSize, r.Theme.Title)
	return y + r.Theme.LineHeight + 4
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string, color rl.Color) int32 {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, color)
	return y + r.Theme.LineHeight
}

// DrawIcon draws a sprite unrotated at pixel size px, centered in a box.
func DrawIcon(sprite [][]uint8, x, y, box, px int32, color rl.Color) {
	if len(sprite) == 0 {
		return
	}
	w := int32(len(sprite[0])) * px
	h := int32(len(sprite)) * px
	ox := x + (box-w)/2
	oy := y + (box-h)/2
	for row, cols := range sprite {
		for col, v := range cols {
			if v == 1 {
				rl.DrawRectangle(ox+int32(col)*px, oy+int32(row)*px, px, px, color)
			}
		}
	}
}

func hex(rgb uint32) rl.Color {
	return rl.Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}
}

func formatStep(v, step float64) string {
	switch {
	case step >= 1:
		return fmt.Sprintf("%.0f", v)
	case step >= 0.1:
		return fmt.Sprintf("%.1f", v)
	case step >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
