package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pthm-cable/shoal/audio"
	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/telemetry"
	"github.com/pthm-cable/shoal/termview"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	terminal := flag.Bool("terminal", false, "Render in the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	workers := flag.Int("workers", 0, "Prey steering workers (0 = GOMAXPROCS)")
	sound := flag.Bool("sound", false, "Play sound cues (overrides audio.enabled)")
	resume := flag.String("resume", "", "Snapshot file to resume from")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// The terminal view owns stdout, so logs go to a file there.
	var logOut io.Writer = os.Stdout
	if *terminal {
		logOut = io.Discard
		if *outputDir != "" {
			if err := os.MkdirAll(*outputDir, 0755); err == nil {
				if f, err := os.Create(filepath.Join(*outputDir, "shoal.log")); err == nil {
					defer f.Close()
					logOut = f
				}
			}
		}
	}
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	opts := game.RunnerOptions{
		Seed:        rngSeed,
		Workers:     *workers,
		OutputDir:   *outputDir,
		SnapshotDir: *snapshotDir,
		LogStats:    *logStats,
		Logger:      logger,
	}
	if *resume != "" {
		snap, err := telemetry.LoadSnapshot(*resume)
		if err != nil {
			slog.Error("failed to load snapshot", "path", *resume, "error", err)
			os.Exit(1)
		}
		opts.Resume = snap
	}

	runner, err := game.NewRunner(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer runner.Close()

	if *sound || cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the reef runs without sound
			slog.Warn("audio initialization failed", "error", err)
		} else {
			defer sm.Cleanup()
			runner.OnTick = sm.OnTick
		}
	}

	switch {
	case *headless:
		runHeadless(runner, cfg.Telemetry.TickMs, *maxTicks)
	case *terminal:
		view, err := termview.New(runner, logger)
		if err != nil {
			slog.Error("failed to open terminal", "error", err)
			return
		}
		view.Run(cfg.Telemetry.TickMs, *maxTicks, cfg.Population.Max)
	default:
		runWindow(cfg, runner, *maxTicks, *snapshotDir)
	}
}

// runHeadless steps the reef on a fixed clock until maxTicks or an interrupt.
func runHeadless(runner *game.Runner, tickMs float64, maxTicks int64) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting headless simulation",
		"run_id", runner.RunID(),
		"tick_ms", tickMs,
		"max_ticks", maxTicks,
	)

	now := runner.Now()
	for ctx.Err() == nil {
		now += tickMs
		runner.Step(now)

		if maxTicks > 0 && runner.Game().Ticks() >= maxTicks {
			slog.Info("max ticks reached", "tick", runner.Game().Ticks())
			return
		}
	}
	slog.Info("interrupted", "tick", runner.Game().Ticks())
}
