package main

import (
	"github.com/pthm-cable/shoal/config"
)

// ParamSpec defines a single tunable parameter and where it lives in the config.
type ParamSpec struct {
	Path     string // config key, used in logs and the CSV header
	Min, Max float64
	Get      func(*config.Config) float64
	Set      func(*config.Config, float64)
}

// unit maps v from [Min, Max] to [0, 1].
func (s ParamSpec) unit(v float64) float64 { return (v - s.Min) / (s.Max - s.Min) }

// raw maps u from [0, 1] back to [Min, Max], clamped.
func (s ParamSpec) raw(u float64) float64 {
	return min(max(s.Min+u*(s.Max-s.Min), s.Min), s.Max)
}

// ParamVector holds the set of all tunable parameters. The optimizer
// works in the unit cube; configs hold raw values.
type ParamVector []ParamSpec

// NewParamVector returns the satiety, chase and ink parameters. Ranges
// match the in-app sliders where one exists.
func NewParamVector() ParamVector {
	return ParamVector{
		{"predator.speedup_threshold", 1, 15,
			func(c *config.Config) float64 { return c.Predator.SpeedupThreshold },
			func(c *config.Config, v float64) { c.Predator.SpeedupThreshold = v }},
		{"predator.overfed_threshold", 2, 20,
			func(c *config.Config) float64 { return c.Predator.OverfedThreshold },
			func(c *config.Config, v float64) { c.Predator.OverfedThreshold = v }},
		{"predator.satiety_decay_rate", 0.001, 0.020,
			func(c *config.Config) float64 { return c.Predator.SatietyDecayRate },
			func(c *config.Config, v float64) { c.Predator.SatietyDecayRate = v }},
		{"predator.speed_boost", 1.0, 3.0,
			func(c *config.Config) float64 { return c.Predator.SpeedBoost },
			func(c *config.Config, v float64) { c.Predator.SpeedBoost = v }},
		{"predator.speed_penalty", 0.1, 0.9,
			func(c *config.Config) float64 { return c.Predator.SpeedPenalty },
			func(c *config.Config, v float64) { c.Predator.SpeedPenalty = v }},
		{"predator.speed", 1.5, 4.5,
			func(c *config.Config) float64 { return c.Predator.Speed },
			func(c *config.Config, v float64) { c.Predator.Speed = v }},
		{"ink.probability", 0.005, 0.1,
			func(c *config.Config) float64 { return c.Ink.Probability },
			func(c *config.Config, v float64) { c.Ink.Probability = v }},
		{"ink.cooldown_ms", 2000, 20000,
			func(c *config.Config) float64 { return c.Ink.CooldownMs },
			func(c *config.Config, v float64) { c.Ink.CooldownMs = v }},
	}
}

// Encode reads the tunable values of cfg as a unit-cube point.
func (pv ParamVector) Encode(cfg *config.Config) []float64 {
	x := make([]float64, len(pv))
	for i, s := range pv {
		x[i] = s.unit(s.Get(cfg))
	}
	return x
}

// Apply writes the unit-cube point x into cfg, clamping to each range.
// The overfed threshold is kept above speedup the way the sliders keep it.
func (pv ParamVector) Apply(cfg *config.Config, x []float64) {
	for i, s := range pv {
		s.Set(cfg, s.raw(x[i]))
	}
	if cfg.Predator.OverfedThreshold <= cfg.Predator.SpeedupThreshold {
		cfg.Predator.OverfedThreshold = cfg.Predator.SpeedupThreshold + 1
	}
}

// Values reads the raw tunable values of cfg.
func (pv ParamVector) Values(cfg *config.Config) []float64 {
	v := make([]float64, len(pv))
	for i, s := range pv {
		v[i] = s.Get(cfg)
	}
	return v
}
