package main

import (
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/telemetry"
)

// FitnessEvaluator runs headless reefs and scores how lively they are.
type FitnessEvaluator struct {
	params     ParamVector
	maxTicks   int64
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastQuality float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Evaluate computes fitness for a unit-cube point (lower = better).
// Fitness is the negated mean quality over all seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := *fe.baseConfig
	fe.params.Apply(&cfg, x)

	results := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = computeQuality(fe.runSimulation(&cfg, s))
		}(i, seed)
	}
	wg.Wait()

	q := stat.Mean(results, nil)
	fe.mu.Lock()
	fe.lastQuality = q
	fe.mu.Unlock()
	return -q
}

// runSimulation executes one headless run and returns its windows.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) []telemetry.WindowStats {
	r, err := game.NewRunner(cfg, game.RunnerOptions{
		Seed:    seed,
		Workers: 1, // seeds already run in parallel
		Logger:  slog.New(slog.DiscardHandler),
	})
	if err != nil {
		slog.Error("failed to start run", "seed", seed, "error", err)
		return nil
	}
	defer r.Close()

	var windows []telemetry.WindowStats
	r.OnStats = func(s telemetry.WindowStats) {
		windows = append(windows, s)
	}

	now := 0.0
	for r.Game().Ticks() < fe.maxTicks {
		now += cfg.Telemetry.TickMs
		r.Step(now)
	}
	return windows
}

// Quality component weights.
const (
	qualityWeightDiversity = 0.35
	qualityWeightHunting   = 0.30
	qualityWeightSatiety   = 0.20
	qualityWeightInk       = 0.15

	qualityWarmupWindows = 1 // skip first N windows

	// targetCaptureRate is captures per sim second for a busy but not
	// exhausting hunt.
	targetCaptureRate = 0.5
)

// computeQuality scores a run in [0, 1]: species diversity, a capture rate
// near the target with low variance, a predator that cycles through its
// satiety states, and ink that actually confuses.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	maxEntropy := math.Log(float64(species.Count))
	entropy := make([]float64, 0, len(valid))
	rates := make([]float64, 0, len(valid))
	var satietySum, inkSum float64
	for _, w := range valid {
		entropy = append(entropy, w.SpeciesEntropy/maxEntropy)
		rates = append(rates, w.CaptureRate)

		// Some boosted time is lively; overfed or stunned the whole window is not.
		satietySum += (1 - w.OverfedFrac) * (1 - w.StunnedFrac) * math.Min(w.BoostedFrac*4, 1)

		if w.InkReleases > 0 {
			inkSum += math.Min(float64(w.Confusions)/float64(w.InkReleases), 1)
		}
	}
	n := float64(len(valid))

	diversity := stat.Mean(entropy, nil)

	meanRate := stat.Mean(rates, nil)
	hunting := 0.0
	if meanRate > 0 {
		logErr := math.Log(meanRate / targetCaptureRate)
		hunting = math.Exp(-logErr * logErr)
		if len(rates) >= 2 {
			cv := stat.StdDev(rates, nil) / meanRate
			hunting *= math.Exp(-cv * cv)
		}
	}

	quality := qualityWeightDiversity*diversity +
		qualityWeightHunting*hunting +
		qualityWeightSatiety*satietySum/n +
		qualityWeightInk*inkSum/n
	return clamp01(quality)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
