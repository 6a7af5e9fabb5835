// Package species defines the prey species of the reef and their immutable
// behavioral parameters.
package species

import (
	"fmt"
	"math"
)

// Species tags one prey organism. The zero value is Sardine.
type Species uint8

const (
	Sardine Species = iota
	Squid
	Octopus
	Crab
	SeaTurtle
	Jellyfish
	Manta

	// Count is the number of species.
	Count = int(Manta) + 1
)

// All lists every species in declaration order.
var All = [Count]Species{Sardine, Squid, Octopus, Crab, SeaTurtle, Jellyfish, Manta}

var names = [Count]string{
	Sardine:   "sardine",
	Squid:     "squid",
	Octopus:   "octopus",
	Crab:      "crab",
	SeaTurtle: "sea_turtle",
	Jellyfish: "jellyfish",
	Manta:     "manta",
}

// String returns the lowercase species key.
func (s Species) String() string {
	if int(s) < Count {
		return names[s]
	}
	return fmt.Sprintf("species(%d)", uint8(s))
}

// Valid reports whether s is a known species.
func (s Species) Valid() bool {
	return int(s) < Count
}

// Parse returns the species with the given key.
func Parse(name string) (Species, error) {
	for i, n := range names {
		if n == name {
			return Species(i), nil
		}
	}
	return 0, fmt.Errorf("unknown species %q", name)
}

// MarshalText implements encoding.TextMarshaler (used by JSON, YAML and CSV).
func (s Species) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid species %d", uint8(s))
	}
	return []byte(names[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Species) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// NoFlockLimit disables the same-species neighbor cap.
const NoFlockLimit = math.MaxInt

// Params is the flocking tuning of one species.
// Radii are in field units, speeds in units per tick.
type Params struct {
	MaxSpeed         float64
	MaxForce         float64
	SeparationRadius float64
	SeparationWeight float64
	AlignmentRadius  float64
	AlignmentWeight  float64
	CohesionRadius   float64
	CohesionWeight   float64
	FleeWeight       float64
	IntraSpeciesBias float64 // weight of same-species neighbors in alignment/cohesion, >= 1
	InertiaBias      float64 // pull toward own heading; 0 disables the rule
	MaxFlockSize     int     // same-species neighbors counted per rule evaluation
}

var table = [Count]Params{
	// Tight schools.
	Sardine: {
		MaxSpeed: 2.0, MaxForce: 0.06,
		SeparationRadius: 28, SeparationWeight: 1.8,
		AlignmentRadius: 65, AlignmentWeight: 1.2,
		CohesionRadius: 65, CohesionWeight: 1.5,
		FleeWeight: 4.5, IntraSpeciesBias: 8.0,
		InertiaBias: 0, MaxFlockSize: NoFlockLimit,
	},
	// Small groups.
	Squid: {
		MaxSpeed: 2.2, MaxForce: 0.04,
		SeparationRadius: 40, SeparationWeight: 1.5,
		AlignmentRadius: 60, AlignmentWeight: 0.7,
		CohesionRadius: 60, CohesionWeight: 0.7,
		FleeWeight: 3.0, IntraSpeciesBias: 3.0,
		InertiaBias: 0, MaxFlockSize: 6,
	},
	// Loners; the tiny alignment/cohesion weights already isolate them.
	Octopus: {
		MaxSpeed: 1.5, MaxForce: 0.03,
		SeparationRadius: 65, SeparationWeight: 2.5,
		AlignmentRadius: 50, AlignmentWeight: 0.15,
		CohesionRadius: 50, CohesionWeight: 0.1,
		FleeWeight: 2.5, IntraSpeciesBias: 1.0,
		InertiaBias: 0, MaxFlockSize: 2,
	},
	Crab: {
		MaxSpeed: 1.3, MaxForce: 0.03,
		SeparationRadius: 35, SeparationWeight: 1.5,
		AlignmentRadius: 50, AlignmentWeight: 0.5,
		CohesionRadius: 50, CohesionWeight: 0.6,
		FleeWeight: 2.0, IntraSpeciesBias: 2.0,
		InertiaBias: 0, MaxFlockSize: 5,
	},
	// Long straight cruises.
	SeaTurtle: {
		MaxSpeed: 1.4, MaxForce: 0.025,
		SeparationRadius: 50, SeparationWeight: 1.2,
		AlignmentRadius: 90, AlignmentWeight: 0.5,
		CohesionRadius: 90, CohesionWeight: 0.4,
		FleeWeight: 1.5, IntraSpeciesBias: 1.5,
		InertiaBias: 0.6, MaxFlockSize: 3,
	},
	// Drifters, barely react to the predator.
	Jellyfish: {
		MaxSpeed: 0.9, MaxForce: 0.02,
		SeparationRadius: 45, SeparationWeight: 0.8,
		AlignmentRadius: 55, AlignmentWeight: 0.15,
		CohesionRadius: 55, CohesionWeight: 0.15,
		FleeWeight: 0.5, IntraSpeciesBias: 1.0,
		InertiaBias: 0, MaxFlockSize: 4,
	},
	// Wide alignment range, slow loops.
	Manta: {
		MaxSpeed: 2.5, MaxForce: 0.03,
		SeparationRadius: 70, SeparationWeight: 1.5,
		AlignmentRadius: 130, AlignmentWeight: 1.0,
		CohesionRadius: 130, CohesionWeight: 0.6,
		FleeWeight: 2.5, IntraSpeciesBias: 2.0,
		InertiaBias: 0.8, MaxFlockSize: 4,
	},
}

// Lookup returns the parameter record for s. The record is shared and must
// not be modified. Unknown species fall back to Sardine.
func Lookup(s Species) *Params {
	if !s.Valid() {
		return &table[Sardine]
	}
	return &table[s]
}

// Evasive is the species that releases ink clouds.
const Evasive = Octopus

// Stinging is the species that stuns the predator when eaten.
const Stinging = Jellyfish
