package telemetry

import (
	"math"

	"github.com/pthm-cable/shoal/species"
)

// PredatorSample is the per-tick predator state fed to the collector.
type PredatorSample struct {
	Satiety float64
	Boosted bool
	Overfed bool
	Stunned bool
}

// Collector accumulates events within windows of ticks and produces WindowStats.
type Collector struct {
	windowTicks int64
	msPerTick   float64

	windowStartTick int64

	captures     species.Counts
	spawns       int
	trims        int
	inkReleases  int
	confusions   int
	stuns        int
	satiety      []float64
	boostedTicks int
	overfedTicks int
	stunnedTicks int
}

// NewCollector creates a collector flushing every windowSec of simulated
// time, with msPerTick converting ticks to host milliseconds.
func NewCollector(windowSec, msPerTick float64) *Collector {
	ticks := int64(math.Round(windowSec * 1000 / msPerTick))
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks: ticks,
		msPerTick:   msPerTick,
		satiety:     make([]float64, 0, ticks),
	}
}

// RecordCaptures adds one tick's captures, by species.
func (c *Collector) RecordCaptures(counts species.Counts) {
	for i, n := range counts {
		c.captures[i] += n
	}
}

// RecordSpawns records prey spawned at the edges.
func (c *Collector) RecordSpawns(n int) { c.spawns += n }

// RecordTrims records prey removed by population truncation.
func (c *Collector) RecordTrims(n int) { c.trims += n }

// RecordInk records ink clouds released.
func (c *Collector) RecordInk(n int) { c.inkReleases += n }

// RecordConfusions records predator confusions triggered by ink.
func (c *Collector) RecordConfusions(n int) { c.confusions += n }

// RecordStun records a stinging-prey stun.
func (c *Collector) RecordStun() { c.stuns++ }

// SamplePredator records the predator state for this tick.
func (c *Collector) SamplePredator(s PredatorSample) {
	c.satiety = append(c.satiety, s.Satiety)
	if s.Boosted {
		c.boostedTicks++
	}
	if s.Overfed {
		c.overfedTicks++
	}
	if s.Stunned {
		c.stunnedTicks++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats for the window ending at currentTick, with
// census taken between ticks, and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, census species.Counts) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.msPerTick / 1000,

		Captures:     c.captures.Total(),
		Spawns:       c.spawns,
		Trims:        c.trims,
		InkReleases:  c.inkReleases,
		Confusions:   c.confusions,
		Stuns:        c.stuns,
		JellyCatches: c.captures[species.Stinging],
	}
	stats.SetCensus(census)

	if span := float64(currentTick-c.windowStartTick) * c.msPerTick / 1000; span > 0 {
		stats.CaptureRate = float64(stats.Captures) / span
	}

	stats.SatietyMean, stats.SatietyStd, stats.SatietyP90, stats.SatietyMax = SummarizeSatiety(c.satiety)
	if n := float64(len(c.satiety)); n > 0 {
		stats.BoostedFrac = float64(c.boostedTicks) / n
		stats.OverfedFrac = float64(c.overfedTicks) / n
		stats.StunnedFrac = float64(c.stunnedTicks) / n
	}

	c.windowStartTick = currentTick
	c.captures = species.Counts{}
	c.spawns = 0
	c.trims = 0
	c.inkReleases = 0
	c.confusions = 0
	c.stuns = 0
	c.satiety = c.satiety[:0]
	c.boostedTicks = 0
	c.overfedTicks = 0
	c.stunnedTicks = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}

// StartAt begins the current window at tick, for runs resumed mid-way.
func (c *Collector) StartAt(tick int64) {
	c.windowStartTick = tick
}
