package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	Tick     int64
	FPS      int32
	Paused   bool
	Stunned  bool
	Confused bool
	SpeedCap float64
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	th := h.renderer.Theme
	rl.DrawText(data.Title, 10, 10, 20, th.Title)
	rl.DrawText(
		fmt.Sprintf("tick %d | fps %d | shark speed %.2f", data.Tick, data.FPS, data.SpeedCap),
		10, 35, 14, th.ValueColor,
	)

	status := "hunting"
	switch {
	case data.Paused:
		status = "PAUSED"
	case data.Stunned:
		status = "shark stunned"
	case data.Confused:
		status = "shark confused"
	}
	rl.DrawText(status, 10, 53, 14, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DrawPerf renders the tick phase breakdown.
func (h *HUD) DrawPerf(x, y int32, stats telemetry.PerfStats) {
	th := h.renderer.Theme
	rl.DrawText(fmt.Sprintf("tick %s avg, %s max", stats.AvgTick, stats.MaxTick), x, y, 12, th.ValueColor)
	y += 14
	for ph, pct := range stats.PhasePct {
		color := th.LabelColor
		if pct > 40 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-14s %5.1f%%", telemetry.Phase(ph), pct), x, y, 12, color)
		y += 14
	}
}
