package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/shoal/species"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Prey      int `csv:"prey"`
	Sardine   int `csv:"sardine"`
	Squid     int `csv:"squid"`
	Octopus   int `csv:"octopus"`
	Crab      int `csv:"crab"`
	SeaTurtle int `csv:"sea_turtle"`
	Jellyfish int `csv:"jellyfish"`
	Manta     int `csv:"manta"`

	// Species diversity (Shannon entropy, nats)
	SpeciesEntropy float64 `csv:"species_entropy"`

	// Events during window
	Captures     int     `csv:"captures"`
	CaptureRate  float64 `csv:"capture_rate"` // captures per sim second
	Spawns       int     `csv:"spawns"`
	Trims        int     `csv:"trims"`
	InkReleases  int     `csv:"ink_releases"`
	Confusions   int     `csv:"confusions"`
	Stuns        int     `csv:"stuns"`
	JellyCatches int     `csv:"jelly_catches"`

	// Predator satiety over the window
	SatietyMean float64 `csv:"satiety_mean"`
	SatietyStd  float64 `csv:"satiety_std"`
	SatietyP90  float64 `csv:"satiety_p90"`
	SatietyMax  float64 `csv:"satiety_max"`

	// Fraction of window ticks spent boosted, overfed, stunned
	BoostedFrac float64 `csv:"boosted_frac"`
	OverfedFrac float64 `csv:"overfed_frac"`
	StunnedFrac float64 `csv:"stunned_frac"`
}

// SetCensus fills the per-species population columns.
func (s *WindowStats) SetCensus(c species.Counts) {
	s.Prey = c.Total()
	s.Sardine = c[species.Sardine]
	s.Squid = c[species.Squid]
	s.Octopus = c[species.Octopus]
	s.Crab = c[species.Crab]
	s.SeaTurtle = c[species.SeaTurtle]
	s.Jellyfish = c[species.Jellyfish]
	s.Manta = c[species.Manta]
	s.SpeciesEntropy = SpeciesEntropy(c)
}

// Census returns the per-species population columns as counts.
func (s WindowStats) Census() species.Counts {
	var c species.Counts
	c[species.Sardine] = s.Sardine
	c[species.Squid] = s.Squid
	c[species.Octopus] = s.Octopus
	c[species.Crab] = s.Crab
	c[species.SeaTurtle] = s.SeaTurtle
	c[species.Jellyfish] = s.Jellyfish
	c[species.Manta] = s.Manta
	return c
}

// SummarizeSatiety returns mean, population std deviation, 90th percentile
// and max of the samples. Empty input yields zeros.
func SummarizeSatiety(values []float64) (mean, std, p90, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	std = stat.PopStdDev(sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	max = sorted[len(sorted)-1]
	return mean, std, p90, max
}

// SpeciesEntropy is the Shannon entropy of the species distribution.
// Zero for an empty or single-species population.
func SpeciesEntropy(c species.Counts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	p := make([]float64, 0, species.Count)
	for _, n := range c {
		if n > 0 {
			p = append(p, float64(n)/float64(total))
		}
	}
	return stat.Entropy(p)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("prey", s.Prey),
		slog.Float64("species_entropy", s.SpeciesEntropy),
		slog.Int("captures", s.Captures),
		slog.Float64("capture_rate", s.CaptureRate),
		slog.Int("spawns", s.Spawns),
		slog.Int("trims", s.Trims),
		slog.Int("ink_releases", s.InkReleases),
		slog.Int("confusions", s.Confusions),
		slog.Int("stuns", s.Stuns),
		slog.Float64("satiety_mean", s.SatietyMean),
		slog.Float64("satiety_p90", s.SatietyP90),
		slog.Float64("boosted_frac", s.BoostedFrac),
		slog.Float64("overfed_frac", s.OverfedFrac),
		slog.Float64("stunned_frac", s.StunnedFrac),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"prey", s.Prey,
		"sardine", s.Sardine,
		"squid", s.Squid,
		"octopus", s.Octopus,
		"crab", s.Crab,
		"sea_turtle", s.SeaTurtle,
		"jellyfish", s.Jellyfish,
		"manta", s.Manta,
		"species_entropy", s.SpeciesEntropy,
		"captures", s.Captures,
		"capture_rate", s.CaptureRate,
		"spawns", s.Spawns,
		"trims", s.Trims,
		"ink_releases", s.InkReleases,
		"confusions", s.Confusions,
		"stuns", s.Stuns,
		"satiety_mean", s.SatietyMean,
		"satiety_std", s.SatietyStd,
		"satiety_p90", s.SatietyP90,
		"satiety_max", s.SatietyMax,
		"stunned_frac", s.StunnedFrac,
	)
}
