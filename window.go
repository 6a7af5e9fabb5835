package main

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/renderer"
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/ui"
)

const (
	panelWidth  = 220
	panelMargin = 10
)

// runWindow drives the reef from the raylib frame clock.
func runWindow(cfg *config.Config, runner *game.Runner, maxTicks int64, snapshotDir string) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Shoal")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := runner.Game()
	reef := renderer.NewReefRenderer(cfg.Ink.MaxRadius)
	crt := &renderer.CRTOverlay{Enabled: cfg.Screen.CRT}
	overlays := ui.NewOverlayRegistry(cfg.Screen.CRT)
	paramsPanel := ui.NewParamsPanel(0, panelMargin, panelWidth, cfg.Population.Max)
	popPanel := ui.NewPopulationPanel(panelMargin, 80, panelWidth-40)
	hud := ui.NewHUD()

	// Field follows the window unless the config pins it.
	followWindow := cfg.Field.Width == 0 && cfg.Field.Height == 0

	var (
		prey       []game.PreyView
		counts     species.Counts
		nextCensus float64
		paused     bool
	)
	now := runner.Now()

	for !rl.WindowShouldClose() {
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			switch key {
			case rl.KeySpace:
				paused = !paused
			case rl.KeyS:
				dir := snapshotDir
				if dir == "" {
					dir = "."
				}
				if path, err := runner.SaveSnapshot(dir); err != nil {
					slog.Error("failed to save snapshot", "error", err)
				} else {
					slog.Info("snapshot saved", "path", path)
				}
			default:
				if id, on, ok := overlays.HandleKeyPress(key); ok {
					slog.Debug("overlay toggled", "overlay", id, "enabled", on)
				}
			}
		}
		crt.Enabled = overlays.IsEnabled(ui.OverlayCRT)
		reef.ShowInk = overlays.IsEnabled(ui.OverlayInk)

		sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		if followWindow && rl.IsWindowResized() {
			g.Resize(float64(sw), float64(sh))
		}

		if !paused {
			now += float64(rl.GetFrameTime()) * 1000
			runner.Step(now)
		}

		if now >= nextCensus {
			counts = g.Census(now).Counts
			nextCensus = now + cfg.Telemetry.CountIntervalMs
		}
		prey = g.AppendPrey(prey[:0], now)
		pred := g.Predator(now)

		rl.BeginDrawing()
		rl.ClearBackground(renderer.Background)
		reef.Draw(prey, pred, now)
		crt.Draw(sw, sh)

		hud.Draw(ui.HUDData{
			Title:    "SHOAL",
			Tick:     g.Ticks(),
			FPS:      rl.GetFPS(),
			Paused:   paused,
			Stunned:  pred.Stunned,
			Confused: pred.Confused,
			SpeedCap: pred.SpeedCap,
		})
		if overlays.IsEnabled(ui.OverlayPopulation) {
			popPanel.Draw(counts)
		}
		if overlays.IsEnabled(ui.OverlayParams) {
			paramsPanel.SetPosition(sw-panelWidth-panelMargin, panelMargin)
			if paramsPanel.Draw(runner.Params(), pred.Satiety) {
				slog.Debug("params changed", "params", *runner.Params())
			}
		}
		if overlays.IsEnabled(ui.OverlayPerf) {
			hud.DrawPerf(panelMargin, sh-140, runner.Perf().Stats())
		}
		hud.DrawControls(sh, "[Space] Pause  [S] Snapshot  "+overlays.Legend())
		rl.EndDrawing()

		runner.Perf().RecordFrame()

		if maxTicks > 0 && g.Ticks() >= maxTicks {
			break
		}
	}
}
