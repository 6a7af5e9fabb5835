package telemetry

import "github.com/pthm-cable/shoal/species"

// CensusRow is a point-in-time population and predator reading.
type CensusRow struct {
	Tick      int64   `csv:"tick"`
	TimeMs    float64 `csv:"time_ms"`
	Total     int     `csv:"total"`
	Sardine   int     `csv:"sardine"`
	Squid     int     `csv:"squid"`
	Octopus   int     `csv:"octopus"`
	Crab      int     `csv:"crab"`
	SeaTurtle int     `csv:"sea_turtle"`
	Jellyfish int     `csv:"jellyfish"`
	Manta     int     `csv:"manta"`
	Satiety   float64 `csv:"satiety"`
	Stunned   bool    `csv:"stunned"`
	Confused  bool    `csv:"confused"`
}

// NewCensusRow flattens a census into a CSV row.
func NewCensusRow(tick int64, nowMs float64, c species.Counts, satiety float64, stunned, confused bool) CensusRow {
	return CensusRow{
		Tick:      tick,
		TimeMs:    nowMs,
		Total:     c.Total(),
		Sardine:   c[species.Sardine],
		Squid:     c[species.Squid],
		Octopus:   c[species.Octopus],
		Crab:      c[species.Crab],
		SeaTurtle: c[species.SeaTurtle],
		Jellyfish: c[species.Jellyfish],
		Manta:     c[species.Manta],
		Satiety:   satiety,
		Stunned:   stunned,
		Confused:  confused,
	}
}

// CensusSampler gates census readings to a fixed wall-clock cadence.
type CensusSampler struct {
	intervalMs float64
	lastMs     float64
	started    bool
}

// NewCensusSampler creates a sampler firing every intervalMs.
func NewCensusSampler(intervalMs float64) *CensusSampler {
	return &CensusSampler{intervalMs: intervalMs}
}

// Due reports whether a census should be taken at nowMs and, if so, marks it taken.
// The first call is always due.
func (s *CensusSampler) Due(nowMs float64) bool {
	if s.started && nowMs-s.lastMs < s.intervalMs {
		return false
	}
	s.started = true
	s.lastMs = nowMs
	return true
}
