package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/shoal/species"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1, 1000.0/60.0)
	if c.WindowTicks() != 60 {
		t.Fatalf("WindowTicks = %d, want 60", c.WindowTicks())
	}
	if c.ShouldFlush(59) {
		t.Error("flushed early")
	}
	if !c.ShouldFlush(60) {
		t.Error("did not flush at window end")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1, 1000.0/60.0)

	var caught species.Counts
	caught.Add(species.Sardine)
	caught.Add(species.Jellyfish)
	c.RecordCaptures(caught)
	c.RecordCaptures(caught)
	c.RecordSpawns(4)
	c.RecordTrims(2)
	c.RecordInk(3)
	c.RecordConfusions(1)
	c.RecordStun()
	c.SamplePredator(PredatorSample{Satiety: 2})
	c.SamplePredator(PredatorSample{Satiety: 4, Boosted: true})
	c.SamplePredator(PredatorSample{Satiety: 9, Overfed: true, Stunned: true})
	c.SamplePredator(PredatorSample{Satiety: 1, Stunned: true})

	var census species.Counts
	census[species.Crab] = 10
	stats := c.Flush(60, census)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d, %d], want [0, 60]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-1) > 1e-9 {
		t.Errorf("sim time = %v, want 1", stats.SimTimeSec)
	}
	if stats.Captures != 4 || stats.JellyCatches != 2 {
		t.Errorf("captures = %d (jelly %d), want 4 (2)", stats.Captures, stats.JellyCatches)
	}
	if math.Abs(stats.CaptureRate-4) > 1e-9 {
		t.Errorf("capture rate = %v, want 4/s", stats.CaptureRate)
	}
	if stats.Spawns != 4 || stats.Trims != 2 || stats.InkReleases != 3 || stats.Confusions != 1 || stats.Stuns != 1 {
		t.Errorf("event counts = %+v", stats)
	}
	if stats.Prey != 10 || stats.Crab != 10 {
		t.Errorf("census = %d prey, %d crab, want 10", stats.Prey, stats.Crab)
	}
	if stats.SatietyMean != 4 || stats.SatietyMax != 9 {
		t.Errorf("satiety mean/max = %v/%v, want 4/9", stats.SatietyMean, stats.SatietyMax)
	}
	if stats.BoostedFrac != 0.25 || stats.OverfedFrac != 0.25 || stats.StunnedFrac != 0.5 {
		t.Errorf("fractions = %v/%v/%v, want 0.25/0.25/0.5", stats.BoostedFrac, stats.OverfedFrac, stats.StunnedFrac)
	}

	// Counters reset for the next window.
	next := c.Flush(120, census)
	if next.WindowStartTick != 60 {
		t.Errorf("next window starts at %d, want 60", next.WindowStartTick)
	}
	if next.Captures != 0 || next.Spawns != 0 || next.Stuns != 0 || next.SatietyMean != 0 || next.StunnedFrac != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestCensusSampler(t *testing.T) {
	s := NewCensusSampler(500)
	steps := []struct {
		now  float64
		want bool
	}{
		{0, true},
		{16, false},
		{499, false},
		{500, true},
		{900, false},
		{1001, true},
	}
	for _, st := range steps {
		if got := s.Due(st.now); got != st.want {
			t.Errorf("Due(%v) = %v, want %v", st.now, got, st.want)
		}
	}
}

func TestNewCensusRow(t *testing.T) {
	var c species.Counts
	c[species.Octopus] = 3
	c[species.Sardine] = 7
	row := NewCensusRow(42, 700, c, 2.5, true, false)
	if row.Total != 10 || row.Octopus != 3 || row.Sardine != 7 {
		t.Errorf("row = %+v", row)
	}
	if row.Tick != 42 || row.TimeMs != 700 || row.Satiety != 2.5 || !row.Stunned || row.Confused {
		t.Errorf("row = %+v", row)
	}
}
