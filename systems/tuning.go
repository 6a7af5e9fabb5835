package systems

// Tuning holds the fixed kernel constants. Times are in milliseconds,
// distances in field units, speeds in units per tick.
type Tuning struct {
	// Reference defaults the global prey multipliers are measured against.
	DefaultMaxSpeed float64
	DefaultMaxForce float64

	PredatorSpeed    float64
	PredatorMaxForce float64
	FleeRadius       float64
	FleeForceScale   float64 // flee force cap as a multiple of the prey max force
	EatRadius        float64

	StunDurationMs      float64
	JellyfishCooldownMs float64
	ConfusionWander     float64 // max heading jitter per tick while confused, radians

	InkDurationMs       float64
	InkMaxRadius        float64
	InkMinRadius        float64
	InkCooldownMs       float64
	InkProbability      float64 // per eligible tick
	ConfusionDurationMs float64
	EvasionFleeBias     float64
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		DefaultMaxSpeed: 2.0,
		DefaultMaxForce: 0.04,

		PredatorSpeed:    2.8,
		PredatorMaxForce: 0.05,
		FleeRadius:       160,
		FleeForceScale:   4,
		EatRadius:        15,

		StunDurationMs:      3000,
		JellyfishCooldownMs: 12000,
		ConfusionWander:     1.2,

		InkDurationMs:       2500,
		InkMaxRadius:        60,
		InkMinRadius:        5,
		InkCooldownMs:       8000,
		InkProbability:      0.02,
		ConfusionDurationMs: 2000,
		EvasionFleeBias:     1.5,
	}
}

// SatietyParams are the host-editable predator satiety constants.
type SatietyParams struct {
	SpeedupThreshold float64
	OverfedThreshold float64
	DecayRate        float64 // satiety lost per tick
	SpeedBoost       float64
	SpeedPenalty     float64
}

// DefaultSatietyParams returns the stock satiety constants.
func DefaultSatietyParams() SatietyParams {
	return SatietyParams{
		SpeedupThreshold: 3,
		OverfedThreshold: 8,
		DecayRate:        0.008,
		SpeedBoost:       1.5,
		SpeedPenalty:     0.5,
	}
}

// SpeedMultiplier maps satiety to the predator speed multiplier. Overfed
// takes precedence over speedup.
func SpeedMultiplier(satiety float64, sp SatietyParams) float64 {
	switch {
	case satiety >= sp.OverfedThreshold:
		return sp.SpeedPenalty
	case satiety >= sp.SpeedupThreshold:
		return sp.SpeedBoost
	default:
		return 1.0
	}
}
