// Command tune runs CMA-ES over the predator satiety and ink parameters,
// looking for reefs that stay diverse while the shark keeps hunting.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/shoal/config"
)

type options struct {
	configPath string
	maxTicks   int64
	seeds      int
	maxEvals   int
	population int
	outputDir  string
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Base config YAML file (empty = use defaults)")
	flag.Int64Var(&o.maxTicks, "max-ticks", 36000, "Ticks per run")
	flag.IntVar(&o.seeds, "seeds", 3, "Number of seeds per evaluation")
	flag.IntVar(&o.maxEvals, "max-evals", 200, "Maximum number of evaluations")
	flag.IntVar(&o.population, "population", 0, "CMA-ES population size (0 = auto)")
	flag.StringVar(&o.outputDir, "output", "", "Output directory for results")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(o); err != nil {
		slog.Error("tuning failed", "error", err)
		os.Exit(1)
	}
}

// evalLog appends one CSV row per evaluation and tracks the best point.
type evalLog struct {
	w      *csv.Writer
	params ParamVector
	start  time.Time
	total  int

	count    int
	best     float64
	bestCfg  config.Config
	haveBest bool
}

func (l *evalLog) header() error {
	row := []string{"eval", "fitness", "quality"}
	for _, s := range l.params {
		row = append(row, s.Path)
	}
	return l.w.Write(row)
}

func (l *evalLog) record(cfg *config.Config, fitness, quality float64) {
	l.count++
	if !l.haveBest || fitness < l.best {
		l.best, l.bestCfg, l.haveBest = fitness, *cfg, true
	}

	row := []string{strconv.Itoa(l.count), strconv.FormatFloat(fitness, 'f', 6, 64), strconv.FormatFloat(quality, 'f', 4, 64)}
	for _, v := range l.params.Values(cfg) {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	if err := l.w.Write(row); err != nil {
		slog.Error("failed to write eval row", "error", err)
	}
	l.w.Flush()

	elapsed := time.Since(l.start)
	eta := time.Duration(l.total-l.count) * (elapsed / time.Duration(l.count))
	slog.Info("eval",
		"n", l.count,
		"of", l.total,
		"quality", quality,
		"best_quality", -l.best,
		"elapsed", elapsed.Round(time.Second).String(),
		"eta", eta.Round(time.Second).String(),
	)
}

func run(o options) error {
	if o.outputDir == "" {
		return fmt.Errorf("--output is required")
	}
	if err := os.MkdirAll(o.outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Bookmark thresholds read the global config.
	if err := config.Init(o.configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	base := config.Cfg()

	params := NewParamVector()
	seeds := make([]int64, o.seeds)
	for i := range seeds {
		seeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, o.maxTicks, seeds, base)

	f, err := os.Create(filepath.Join(o.outputDir, "tune_log.csv"))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer f.Close()

	log := &evalLog{w: csv.NewWriter(f), params: params, start: time.Now(), total: o.maxEvals}
	if err := log.header(); err != nil {
		return fmt.Errorf("writing log header: %w", err)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			fitness := evaluator.Evaluate(x)
			cfg := *base
			params.Apply(&cfg, x)
			log.record(&cfg, fitness, evaluator.LastQuality())
			return fitness
		},
	}

	popSize := o.population
	if popSize == 0 {
		popSize = 4 + 3*len(params)/2
	}
	method := &optimize.CmaEsChol{InitStepSize: 0.3, Population: popSize}
	settings := &optimize.Settings{FuncEvaluations: o.maxEvals}

	slog.Info("starting CMA-ES",
		"params", len(params),
		"population", popSize,
		"max_evals", o.maxEvals,
		"seeds", o.seeds,
		"ticks_per_run", o.maxTicks,
	)
	if _, err := optimize.Minimize(problem, params.Encode(base), settings, method); err != nil {
		slog.Warn("optimization ended", "error", err)
	}
	if !log.haveBest {
		return fmt.Errorf("no evaluations completed")
	}

	best := log.bestCfg
	for i, v := range params.Values(&best) {
		slog.Info("best", "param", params[i].Path, "value", v)
	}
	out := filepath.Join(o.outputDir, "best_config.yaml")
	if err := best.WriteYAML(out); err != nil {
		return fmt.Errorf("writing best config: %w", err)
	}
	slog.Info("tuning complete",
		"evals", log.count,
		"best_quality", -log.best,
		"elapsed", time.Since(log.start).Round(time.Second).String(),
		"config", out,
	)
	return nil
}
