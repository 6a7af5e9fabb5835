package systems

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/species"
)

func testPredator(x, y, vx, vy float64) *Predator {
	vel := r2.Vec{X: vx, Y: vy}
	return &Predator{
		Pos:    r2.Vec{X: x, Y: y},
		Vel:    vel,
		Facing: heading(vel),
	}
}

func TestSpeedMultiplierBoundaries(t *testing.T) {
	sp := DefaultSatietyParams() // speedup 3, overfed 8

	tests := []struct {
		satiety float64
		want    float64
	}{
		{0, 1.0},
		{2.999, 1.0},
		{3, sp.SpeedBoost},
		{3.001, sp.SpeedBoost},
		{7.999, sp.SpeedBoost},
		{8, sp.SpeedPenalty},
		{8.001, sp.SpeedPenalty},
		{100, sp.SpeedPenalty},
	}
	for _, tt := range tests {
		if got := SpeedMultiplier(tt.satiety, sp); got != tt.want {
			t.Errorf("SpeedMultiplier(%v) = %v, want %v", tt.satiety, got, tt.want)
		}
	}
}

func TestSatietyDecaysToZero(t *testing.T) {
	tuning := DefaultTuning()
	sp := DefaultSatietyParams()
	rng := rand.New(rand.NewSource(1))
	p := testPredator(400, 300, 1, 0)
	p.Satiety = 0.02

	prev := p.Satiety
	for i := 0; i < 10; i++ {
		p.Update(nil, 0, 800, 600, sp, &tuning, rng)
		if p.Satiety < 0 {
			t.Fatalf("satiety went negative: %v", p.Satiety)
		}
		if prev > 0 && p.Satiety >= prev {
			t.Fatalf("tick %d: satiety %v did not decrease from %v", i, p.Satiety, prev)
		}
		if prev == 0 && p.Satiety != 0 {
			t.Fatalf("tick %d: satiety left zero: %v", i, p.Satiety)
		}
		prev = p.Satiety
	}
	if p.Satiety != 0 {
		t.Errorf("satiety = %v, want 0", p.Satiety)
	}
}

func TestPredatorCapturesWithinRadius(t *testing.T) {
	tuning := DefaultTuning()
	sp := DefaultSatietyParams()
	rng := rand.New(rand.NewSource(2))

	p := testPredator(2, 300, 0, 0)
	near := prey(species.Sardine, 795, 300, 0, 0) // 7 units across the edge
	mid := prey(species.Crab, 2, 320, 0, 0)       // 20 units, outside eat radius
	far := prey(species.Manta, 400, 300, 0, 0)

	got := p.Update([]PreyState{near, mid, far}, 0, 800, 600, sp, &tuning, rng)
	if len(got.IDs) != 1 || got.IDs[0] != near.ID {
		t.Fatalf("captured %v, want [%d]", got.IDs, near.ID)
	}
	if got.Species[species.Sardine] != 1 {
		t.Errorf("species counts = %v", got.Species)
	}
	want := 1 - sp.DecayRate
	if math.Abs(p.Satiety-want) > 1e-12 {
		t.Errorf("satiety = %v, want %v", p.Satiety, want)
	}
}

// The single pass must agree with separate nearest and capture passes.
func TestPredatorScanMatchesTwoPass(t *testing.T) {
	tuning := DefaultTuning()
	rng := rand.New(rand.NewSource(3))
	const w, h = 800, 600

	for trial := 0; trial < 50; trial++ {
		p := testPredator(rng.Float64()*w, rng.Float64()*h, 0, 0)
		flock := make([]PreyState, 60)
		for i := range flock {
			// Cluster around the predator so captures happen.
			flock[i] = prey(species.All[rng.Intn(species.Count)],
				math.Mod(p.Pos.X+rng.NormFloat64()*20+w, w),
				math.Mod(p.Pos.Y+rng.NormFloat64()*20+h, h), 0, 0)
		}

		var wantIDs []uint32
		bestDist := math.Inf(1)
		var bestDelta r2.Vec
		for _, q := range flock {
			d := ToroidalDelta(p.Pos, q.Pos, w, h)
			if r2.Norm(d) < bestDist {
				bestDist = r2.Norm(d)
				bestDelta = d
			}
		}
		for _, q := range flock {
			if r2.Norm(ToroidalDelta(p.Pos, q.Pos, w, h)) < tuning.EatRadius {
				wantIDs = append(wantIDs, q.ID)
			}
		}

		var got Capture
		nearest, found := p.scan(flock, 0, w, h, &tuning, &got)
		if !found || nearest != bestDelta {
			t.Fatalf("nearest = %v (found %v), want %v", nearest, found, bestDelta)
		}
		sort.Slice(wantIDs, func(i, j int) bool { return wantIDs[i] < wantIDs[j] })
		sort.Slice(got.IDs, func(i, j int) bool { return got.IDs[i] < got.IDs[j] })
		if len(got.IDs) != len(wantIDs) {
			t.Fatalf("captured %d, want %d", len(got.IDs), len(wantIDs))
		}
		for i := range wantIDs {
			if got.IDs[i] != wantIDs[i] {
				t.Fatalf("captured %v, want %v", got.IDs, wantIDs)
			}
		}
		if got.Species.Total() != len(wantIDs) {
			t.Errorf("species total %d, want %d", got.Species.Total(), len(wantIDs))
		}
	}
}

// Field 800x600, predator at center, 50 mixed prey, thresholds (3, 8).
// A capture that lifts satiety to 4 boosts the next tick's speed cap 1.5x.
func TestSatietyBoostScenario(t *testing.T) {
	tuning := DefaultTuning()
	sp := SatietyParams{SpeedupThreshold: 3, OverfedThreshold: 8, DecayRate: 0.008, SpeedBoost: 1.5, SpeedPenalty: 0.5}
	rng := rand.New(rand.NewSource(4))

	p := testPredator(400, 300, 2.8, 0)
	p.Satiety = 3.008

	flock := []PreyState{prey(species.Sardine, 405, 300, 0, 0)}
	for len(flock) < 50 {
		x, y := rng.Float64()*800, rng.Float64()*600
		if r2.Norm(ToroidalDelta(p.Pos, r2.Vec{X: x, Y: y}, 800, 600)) < 60 {
			continue
		}
		flock = append(flock, prey(species.All[rng.Intn(species.Count)], x, y, 0, 0))
	}

	got := p.Update(flock, 0, 800, 600, sp, &tuning, rng)
	if len(got.IDs) != 1 {
		t.Fatalf("captured %d prey, want 1", len(got.IDs))
	}
	if math.Abs(p.Satiety-4) > 1e-9 {
		t.Fatalf("satiety = %v, want 4", p.Satiety)
	}

	p.Update(flock[1:], 16, 800, 600, sp, &tuning, rng)
	if want := tuning.PredatorSpeed * 1.5; math.Abs(p.SpeedCap-want) > 1e-12 {
		t.Errorf("next tick speed cap = %v, want %v", p.SpeedCap, want)
	}
	if Magnitude(p.Vel) > p.SpeedCap+1e-9 {
		t.Errorf("speed %v exceeds cap %v", Magnitude(p.Vel), p.SpeedCap)
	}
}

func TestStingingPreyStunsPredator(t *testing.T) {
	tuning := DefaultTuning()
	sp := DefaultSatietyParams()
	rng := rand.New(rand.NewSource(5))

	p := testPredator(400, 300, 2, 0)
	jelly := prey(species.Jellyfish, 405, 300, 0, 0)

	got := p.Update([]PreyState{jelly}, 1000, 800, 600, sp, &tuning, rng)
	if !got.Stunned || !p.IsStunned(1000) {
		t.Fatal("eating a jellyfish should stun")
	}
	facing := p.Facing

	// While stunned: no movement, no captures, facing kept.
	sardine := prey(species.Sardine, p.Pos.X+3, p.Pos.Y, 0, 0)
	pos := p.Pos
	got = p.Update([]PreyState{sardine}, 2000, 800, 600, sp, &tuning, rng)
	if len(got.IDs) != 0 {
		t.Errorf("stunned predator captured %v", got.IDs)
	}
	if p.Vel != (r2.Vec{}) || p.Pos != pos {
		t.Errorf("stunned predator moved: pos %v vel %v", p.Pos, p.Vel)
	}
	if p.Facing != facing {
		t.Errorf("facing changed while stunned: %v -> %v", facing, p.Facing)
	}

	// Stun over: the sardine is eaten.
	now := 1000 + tuning.StunDurationMs
	if p.IsStunned(now) {
		t.Fatal("stun should expire at its deadline")
	}
	got = p.Update([]PreyState{sardine}, now, 800, 600, sp, &tuning, rng)
	if len(got.IDs) != 1 {
		t.Errorf("recovered predator captured %v, want the sardine", got.IDs)
	}
}

func TestJellyfishCooldownSkipsJellyfish(t *testing.T) {
	tuning := DefaultTuning()
	sp := DefaultSatietyParams()
	rng := rand.New(rand.NewSource(6))

	p := testPredator(400, 300, 0, 0)
	p.JellyCooldownUntil = 5000
	jelly := prey(species.Jellyfish, 404, 300, 0, 0)
	crab := prey(species.Crab, 400, 200, 0, 0)

	got := p.Update([]PreyState{jelly, crab}, 4000, 800, 600, sp, &tuning, rng)
	if len(got.IDs) != 0 {
		t.Fatalf("captured %v during jellyfish cooldown", got.IDs)
	}
	// Chasing the crab above, not the jellyfish to the right.
	if p.Vel.Y >= 0 || math.Abs(p.Vel.X) > 1e-9 {
		t.Errorf("velocity %v, want heading toward the crab (-y)", p.Vel)
	}

	got = p.Update([]PreyState{jelly}, 5000, 800, 600, sp, &tuning, rng)
	if len(got.IDs) != 1 {
		t.Errorf("cooldown expired, captured %v, want jellyfish", got.IDs)
	}
}

func TestConfusedPredatorIgnoresPrey(t *testing.T) {
	tuning := DefaultTuning()
	tuning.ConfusionWander = 0
	sp := DefaultSatietyParams()
	rng := rand.New(rand.NewSource(7))

	target := prey(species.Sardine, 400, 200, 0, 0)

	focused := testPredator(400, 300, 2.8, 0)
	focused.Update([]PreyState{target}, 0, 800, 600, sp, &tuning, rng)
	if focused.Vel.Y >= 0 {
		t.Errorf("focused predator velocity %v, want turn toward -y", focused.Vel)
	}

	confused := testPredator(400, 300, 2.8, 0)
	confused.Confuse(0, 1000)
	confused.Update([]PreyState{target}, 0, 800, 600, sp, &tuning, rng)
	if !vecNear(confused.Vel, r2.Vec{X: 2.8}, 1e-9) {
		t.Errorf("confused predator velocity %v, want unchanged heading", confused.Vel)
	}
	if confused.IsConfused(1000) {
		t.Error("confusion should expire at its deadline")
	}
}

func TestStunDominatesConfusion(t *testing.T) {
	tuning := DefaultTuning()
	sp := DefaultSatietyParams()
	rng := rand.New(rand.NewSource(8))

	p := testPredator(400, 300, 2, 2)
	p.Confuse(0, 5000)
	p.Stun(0, 1000)
	p.Update(nil, 500, 800, 600, sp, &tuning, rng)

	if p.Vel != (r2.Vec{}) {
		t.Errorf("velocity %v, want zero while stunned and confused", p.Vel)
	}
	if !p.IsConfused(500) || !p.IsStunned(500) {
		t.Error("both states should be active")
	}
	if math.Abs(p.Facing-math.Pi/4) > 1e-12 {
		t.Errorf("facing = %v, want pi/4 retained", p.Facing)
	}
}
