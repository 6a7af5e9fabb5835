package species

import "math/rand"

// Counts holds per-species population counts.
type Counts [Count]int

// Add increments the count for s.
func (c *Counts) Add(s Species) {
	if s.Valid() {
		c[s]++
	}
}

// Total returns the sum over all species.
func (c *Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Get returns the count for s.
func (c *Counts) Get(s Species) int {
	if !s.Valid() {
		return 0
	}
	return c[s]
}

type weightEntry struct {
	species Species
	weight  float64
}

// weightTable drives random species assignment; sardines dominate.
var weightTable = []weightEntry{
	{Sardine, 35},
	{Squid, 15},
	{Octopus, 10},
	{Crab, 10},
	{SeaTurtle, 10},
	{Jellyfish, 10},
	{Manta, 10},
}

// Balancing policy for spawns.
const (
	MinSpeciesCount = 2   // species below this are spawned first
	MaxSardineRatio = 0.5 // sardines are excluded at or above this share
)

// Weight returns the random-assignment weight of s.
func Weight(s Species) float64 {
	for _, e := range weightTable {
		if e.species == s {
			return e.weight
		}
	}
	return 0
}

// Weighted draws a species from the full weight table.
func Weighted(rng *rand.Rand) Species {
	return drawWeighted(rng, weightTable)
}

func drawWeighted(rng *rand.Rand, entries []weightEntry) Species {
	total := 0.0
	for _, e := range entries {
		total += e.weight
	}
	r := rng.Float64() * total
	for _, e := range entries {
		r -= e.weight
		if r <= 0 {
			return e.species
		}
	}
	// Float rounding can leave r marginally positive.
	return entries[len(entries)-1].species
}

// Balanced picks the species for a new spawn given the current population.
//
// Priority: any species under MinSpeciesCount is drawn uniformly among the
// under-populated ones; otherwise sardines at or above MaxSardineRatio are
// excluded from the weighted draw; otherwise the full weighted table is used.
func Balanced(rng *rand.Rand, counts Counts, total int) Species {
	var endangered [Count]Species
	n := 0
	for _, s := range All {
		if counts[s] < MinSpeciesCount {
			endangered[n] = s
			n++
		}
	}
	if n > 0 {
		return endangered[rng.Intn(n)]
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(counts[Sardine]) / float64(total)
	}
	if ratio >= MaxSardineRatio {
		// weightTable holds every other species, so this is never empty.
		return drawWeighted(rng, withoutSardine)
	}

	return Weighted(rng)
}

var withoutSardine = func() []weightEntry {
	out := make([]weightEntry, 0, len(weightTable)-1)
	for _, e := range weightTable {
		if e.species != Sardine {
			out = append(out, e)
		}
	}
	return out
}()
