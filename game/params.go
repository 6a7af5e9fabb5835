package game

import (
	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/systems"
)

// Params is the host-editable surface, read verbatim on every tick.
type Params struct {
	Population int // target live prey count
	MaxSpeed   float64
	MaxForce   float64
	Satiety    systems.SatietyParams
}

// DefaultParams returns the stock parameters for the given tuning.
func DefaultParams(t systems.Tuning) Params {
	return Params{
		Population: 60,
		MaxSpeed:   t.DefaultMaxSpeed,
		MaxForce:   t.DefaultMaxForce,
		Satiety:    systems.DefaultSatietyParams(),
	}
}

// ParamsFromConfig builds the starting parameters from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Population: cfg.Population.Target,
		MaxSpeed:   cfg.Prey.MaxSpeed,
		MaxForce:   cfg.Prey.MaxForce,
		Satiety:    cfg.Satiety(),
	}
}

// TickResult reports what one tick did.
type TickResult struct {
	Captured          int
	CapturedBySpecies species.Counts
	Spawned           int // capture replacements plus reconciliation growth
	Trimmed           int
	InkReleases       int
	Confusions        int
	Stunned           bool // the predator was stunned this tick
}
