package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/telemetry"
)

// RunnerOptions configures the telemetry around a game.
type RunnerOptions struct {
	Seed        int64
	Workers     int
	OutputDir   string // empty disables CSV output
	SnapshotDir string // empty disables snapshots on bookmarks
	LogStats    bool   // log window and perf stats at Info
	Logger      *slog.Logger

	// Resume continues from a saved snapshot instead of a fresh population.
	Resume *telemetry.Snapshot
}

// Runner drives a Game for a host: it owns the editable parameters, feeds
// every tick into the collector, samples the census on its own cadence and
// flushes windows to CSV, bookmarks and snapshots.
type Runner struct {
	game   *Game
	params Params
	cfg    *config.Config
	log    *slog.Logger
	runID  string

	collector *telemetry.Collector
	census    *telemetry.CensusSampler
	bookmarks *telemetry.BookmarkDetector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	snapshotDir string
	logStats    bool

	lastNow float64

	// OnTick is called after every tick, for audio and other cues.
	OnTick func(TickResult)
	// OnStats is called with every flushed window.
	OnStats func(telemetry.WindowStats)
}

// NewRunner builds the game described by cfg and the telemetry around it.
func NewRunner(cfg *config.Config, opts RunnerOptions) (*Runner, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runID := telemetry.NewRunID()
	output, err := telemetry.NewOutputManager(opts.OutputDir, runID)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	tuning := cfg.Tuning()
	gameOpts := Options{
		Width:      cfg.Derived.FieldW,
		Height:     cfg.Derived.FieldH,
		Population: cfg.Population.Target,
		Seed:       opts.Seed,
		Tuning:     &tuning,
		Logger:     logger,
		Perf:       perf,
		Workers:    opts.Workers,
	}

	var g *Game
	var lastNow float64
	if opts.Resume != nil {
		g = Restore(opts.Resume, gameOpts)
		lastNow = opts.Resume.NowMs
	} else {
		g = New(gameOpts)
	}

	r := &Runner{
		game:        g,
		params:      ParamsFromConfig(cfg),
		cfg:         cfg,
		log:         logger,
		runID:       runID,
		collector:   telemetry.NewCollector(cfg.Telemetry.StatsWindowSec, cfg.Telemetry.TickMs),
		census:      telemetry.NewCensusSampler(cfg.Telemetry.CountIntervalMs),
		bookmarks:   telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize, cfg.Bookmarks),
		perf:        perf,
		output:      output,
		snapshotDir: opts.SnapshotDir,
		logStats:    opts.LogStats,
		lastNow:     lastNow,
	}
	r.collector.StartAt(g.Ticks())
	logger.Info("run started",
		"run_id", runID,
		"seed", opts.Seed,
		"prey", g.Len(),
		"output", output.Dir(),
	)
	return r, nil
}

// Game returns the driven game.
func (r *Runner) Game() *Game { return r.game }

// Params returns the live parameters; hosts edit them between ticks.
func (r *Runner) Params() *Params { return &r.params }

// RunID returns the identifier of this run.
func (r *Runner) RunID() string { return r.runID }

// Perf returns the tick timing collector.
func (r *Runner) Perf() *telemetry.PerfCollector { return r.perf }

// Now returns the host time of the last step.
func (r *Runner) Now() float64 { return r.lastNow }

// Step advances one tick at host time now and runs the telemetry hooks.
func (r *Runner) Step(now float64) TickResult {
	r.lastNow = now
	res := r.game.Tick(now, r.params)
	r.record(now, res)

	if r.census.Due(now) {
		c := r.game.Census(now)
		row := telemetry.NewCensusRow(r.game.Ticks(), now, c.Counts, c.Satiety, c.Stunned, c.Confused)
		if err := r.output.WriteCensus(row); err != nil {
			r.log.Error("failed to write census", "error", err)
		}
	}

	r.flushTelemetry(now)

	if r.OnTick != nil {
		r.OnTick(res)
	}
	return res
}

// record feeds one tick's outcome into the collector.
func (r *Runner) record(now float64, res TickResult) {
	c := r.collector
	c.RecordCaptures(res.CapturedBySpecies)
	c.RecordSpawns(res.Spawned)
	c.RecordTrims(res.Trimmed)
	c.RecordInk(res.InkReleases)
	c.RecordConfusions(res.Confusions)
	if res.Stunned {
		c.RecordStun()
	}

	p := r.game.Predator(now)
	sp := r.params.Satiety
	c.SamplePredator(telemetry.PredatorSample{
		Satiety: p.Satiety,
		Boosted: p.Satiety >= sp.SpeedupThreshold && p.Satiety < sp.OverfedThreshold,
		Overfed: p.Satiety >= sp.OverfedThreshold,
		Stunned: p.Stunned,
	})
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (r *Runner) flushTelemetry(now float64) {
	tick := r.game.Ticks()
	if !r.collector.ShouldFlush(tick) {
		return
	}

	stats := r.collector.Flush(tick, r.game.Census(now).Counts)
	perfStats := r.perf.Stats()

	if r.OnStats != nil {
		r.OnStats(stats)
	}

	if r.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := r.output.WriteTelemetry(stats); err != nil {
		r.log.Error("failed to write telemetry", "error", err)
	}
	if err := r.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		r.log.Error("failed to write perf", "error", err)
	}

	for _, bm := range r.bookmarks.Check(stats) {
		if r.logStats {
			bm.LogBookmark()
		}
		if err := r.output.WriteBookmark(bm); err != nil {
			r.log.Error("failed to write bookmark", "error", err)
		}
		if r.snapshotDir != "" {
			r.saveSnapshot(now)
		}
	}
}

// SaveSnapshot writes the current state to dir and returns the path.
func (r *Runner) SaveSnapshot(dir string) (string, error) {
	return telemetry.SaveSnapshot(r.game.Snapshot(r.lastNow, r.runID), dir)
}

func (r *Runner) saveSnapshot(now float64) {
	path, err := telemetry.SaveSnapshot(r.game.Snapshot(now, r.runID), r.snapshotDir)
	if err != nil {
		r.log.Error("failed to save snapshot", "error", err)
		return
	}
	r.log.Info("snapshot saved", "path", path, "tick", r.game.Ticks())
}

// Close stops the game workers and closes the output files.
func (r *Runner) Close() error {
	r.game.Close()
	r.log.Info("run finished", "run_id", r.runID, "ticks", r.game.Ticks())
	return r.output.Close()
}
