// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/shoal/systems"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Field      FieldConfig      `yaml:"field"`
	Population PopulationConfig `yaml:"population"`
	Prey       PreyConfig       `yaml:"prey"`
	Predator   PredatorConfig   `yaml:"predator"`
	Ink        InkConfig        `yaml:"ink"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks"`
	Audio      AudioConfig      `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	CRT       bool `yaml:"crt"` // scanline and vignette overlay
}

// FieldConfig holds the wraparound field size.
// Zero means "same as the screen".
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Target int `yaml:"target"`
	Max    int `yaml:"max"` // upper bound for the population slider
}

// PreyConfig holds the global prey multipliers. Species values are scaled
// by these relative to the reference defaults.
type PreyConfig struct {
	MaxSpeed        float64 `yaml:"max_speed"`
	MaxForce        float64 `yaml:"max_force"`
	DefaultMaxSpeed float64 `yaml:"default_max_speed"` // reference the species table was tuned at
	DefaultMaxForce float64 `yaml:"default_max_force"`
}

// PredatorConfig holds predator chase, capture and satiety parameters.
type PredatorConfig struct {
	Speed          float64 `yaml:"speed"`
	MaxForce       float64 `yaml:"max_force"`
	FleeRadius     float64 `yaml:"flee_radius"`
	FleeForceScale float64 `yaml:"flee_force_scale"`
	EatRadius      float64 `yaml:"eat_radius"`

	SpeedupThreshold float64 `yaml:"speedup_threshold"`
	OverfedThreshold float64 `yaml:"overfed_threshold"`
	SatietyDecayRate float64 `yaml:"satiety_decay_rate"`
	SpeedBoost       float64 `yaml:"speed_boost"`
	SpeedPenalty     float64 `yaml:"speed_penalty"`

	StunDurationMs      float64 `yaml:"stun_duration_ms"`
	JellyfishCooldownMs float64 `yaml:"jellyfish_cooldown_ms"`
	ConfusionWander     float64 `yaml:"confusion_wander"` // radians either side of facing
}

// InkConfig holds the evasive species' ink cloud parameters.
type InkConfig struct {
	DurationMs          float64 `yaml:"duration_ms"`
	MaxRadius           float64 `yaml:"max_radius"`
	MinRadius           float64 `yaml:"min_radius"`
	CooldownMs          float64 `yaml:"cooldown_ms"`
	Probability         float64 `yaml:"probability"`
	ConfusionDurationMs float64 `yaml:"confusion_duration_ms"`
	FleeBias            float64 `yaml:"flee_bias"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	TickMs              float64 `yaml:"tick_ms"`           // headless clock step
	CountIntervalMs     float64 `yaml:"count_interval_ms"` // census cadence
	StatsWindowSec      float64 `yaml:"stats_window_sec"`
	BookmarkHistorySize int     `yaml:"bookmark_history_size"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// BookmarksConfig holds bookmark detection thresholds.
type BookmarksConfig struct {
	FeedingFrenzy FeedingFrenzyConfig `yaml:"feeding_frenzy"`
	SpeciesCrash  SpeciesCrashConfig  `yaml:"species_crash"`
	InkStorm      InkStormConfig      `yaml:"ink_storm"`
	BalancedReef  BalancedReefConfig  `yaml:"balanced_reef"`
}

// FeedingFrenzyConfig flags windows with a capture spike.
type FeedingFrenzyConfig struct {
	Multiplier  float64 `yaml:"multiplier"`
	MinCaptures int     `yaml:"min_captures"`
}

// SpeciesCrashConfig flags a species falling from its recent peak.
type SpeciesCrashConfig struct {
	DropPercent float64 `yaml:"drop_percent"`
	MinDrop     int     `yaml:"min_drop"`
}

// InkStormConfig flags windows with many ink confusions.
type InkStormConfig struct {
	MinConfusions int `yaml:"min_confusions"`
}

// BalancedReefConfig flags sustained species diversity.
type BalancedReefConfig struct {
	MinEntropy float64 `yaml:"min_entropy"`
	Windows    int     `yaml:"windows"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0..1
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FieldW float64 // effective field width
	FieldH float64 // effective field height
	TPS    float64 // ticks per second implied by TickMs
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	w, h := c.Field.Width, c.Field.Height
	if w == 0 {
		w = c.Screen.Width
	}
	if h == 0 {
		h = c.Screen.Height
	}
	c.Derived.FieldW = float64(w)
	c.Derived.FieldH = float64(h)

	if c.Telemetry.TickMs <= 0 {
		c.Telemetry.TickMs = 1000.0 / 60.0
	}
	c.Derived.TPS = 1000 / c.Telemetry.TickMs

	// The kernel does not validate thresholds; keep the loaded pair ordered
	// the same way the UI does.
	if c.Predator.SpeedupThreshold >= c.Predator.OverfedThreshold {
		c.Predator.OverfedThreshold = c.Predator.SpeedupThreshold + 1
	}
}

// Tuning returns the kernel constants described by this config.
func (c *Config) Tuning() systems.Tuning {
	return systems.Tuning{
		DefaultMaxSpeed:     c.Prey.DefaultMaxSpeed,
		DefaultMaxForce:     c.Prey.DefaultMaxForce,
		PredatorSpeed:       c.Predator.Speed,
		PredatorMaxForce:    c.Predator.MaxForce,
		FleeRadius:          c.Predator.FleeRadius,
		FleeForceScale:      c.Predator.FleeForceScale,
		EatRadius:           c.Predator.EatRadius,
		StunDurationMs:      c.Predator.StunDurationMs,
		JellyfishCooldownMs: c.Predator.JellyfishCooldownMs,
		ConfusionWander:     c.Predator.ConfusionWander,
		InkDurationMs:       c.Ink.DurationMs,
		InkMaxRadius:        c.Ink.MaxRadius,
		InkMinRadius:        c.Ink.MinRadius,
		InkCooldownMs:       c.Ink.CooldownMs,
		InkProbability:      c.Ink.Probability,
		ConfusionDurationMs: c.Ink.ConfusionDurationMs,
		EvasionFleeBias:     c.Ink.FleeBias,
	}
}

// Satiety returns the predator satiety constants.
func (c *Config) Satiety() systems.SatietyParams {
	return systems.SatietyParams{
		SpeedupThreshold: c.Predator.SpeedupThreshold,
		OverfedThreshold: c.Predator.OverfedThreshold,
		DecayRate:        c.Predator.SatietyDecayRate,
		SpeedBoost:       c.Predator.SpeedBoost,
		SpeedPenalty:     c.Predator.SpeedPenalty,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
