package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/shoal/species"
)

func TestSummarizeSatiety(t *testing.T) {
	tests := []struct {
		name                string
		values              []float64
		mean, std, p90, max float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []float64{2.5}, 2.5, 0, 2.5, 2.5},
		{"one to ten unsorted", []float64{7, 3, 10, 1, 5, 9, 2, 8, 4, 6}, 5.5, math.Sqrt(8.25), 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p90, max := SummarizeSatiety(tt.values)
			for _, c := range []struct {
				label     string
				got, want float64
			}{
				{"mean", mean, tt.mean},
				{"std", std, tt.std},
				{"p90", p90, tt.p90},
				{"max", max, tt.max},
			} {
				if math.Abs(c.got-c.want) > 1e-9 {
					t.Errorf("%s = %v, want %v", c.label, c.got, c.want)
				}
			}
		})
	}
}

func TestSummarizeSatietyLeavesInputAlone(t *testing.T) {
	values := []float64{3, 1, 2}
	SummarizeSatiety(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestSpeciesEntropy(t *testing.T) {
	var uniform species.Counts
	for _, s := range species.All {
		uniform[s] = 4
	}
	var single species.Counts
	single[species.Sardine] = 30
	var pair species.Counts
	pair[species.Crab] = 5
	pair[species.Manta] = 5

	tests := []struct {
		name string
		c    species.Counts
		want float64
	}{
		{"empty", species.Counts{}, 0},
		{"single species", single, 0},
		{"even pair", pair, math.Ln2},
		{"uniform", uniform, math.Log(float64(species.Count))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeciesEntropy(tt.c); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SpeciesEntropy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowStatsCensusRoundTrip(t *testing.T) {
	var c species.Counts
	for i, s := range species.All {
		c[s] = i + 1
	}
	var stats WindowStats
	stats.SetCensus(c)
	if stats.Prey != c.Total() {
		t.Errorf("prey = %d, want %d", stats.Prey, c.Total())
	}
	if got := stats.Census(); got != c {
		t.Errorf("Census() = %v, want %v", got, c)
	}
}
