package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePredator)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhasePreySteer)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MinTick > stats.AvgTick || stats.AvgTick > stats.MaxTick {
		t.Errorf("min/avg/max out of order: %v/%v/%v", stats.MinTick, stats.AvgTick, stats.MaxTick)
	}
	if stats.PhaseAvg[PhasePredator] <= 0 || stats.PhaseAvg[PhasePreySteer] <= 0 {
		t.Error("expected predator and steer phases to be tracked")
	}
	if stats.PhaseAvg[PhaseReconcile] != 0 {
		t.Error("untouched phase should be zero")
	}
	if stats.PhaseAvg[PhasePreySteer] < stats.PhaseAvg[PhasePredator] {
		t.Error("steer phase slept longer than predator phase")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(3)
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.EndTick()
	}
	if pc.filled != 3 {
		t.Errorf("filled = %d, want window size 3", pc.filled)
	}
}

func TestPerfCollector_NilSafe(t *testing.T) {
	var pc *PerfCollector
	pc.StartTick()
	pc.StartPhase(PhaseRespawn)
	pc.EndTick()
	pc.RecordFrame()
	if s := pc.Stats(); s.AvgTick != 0 {
		t.Errorf("nil collector stats = %+v", s)
	}
}

func TestPhaseString(t *testing.T) {
	for ph := Phase(0); ph < numPhases; ph++ {
		if ph.String() == "" {
			t.Errorf("phase %d has no name", ph)
		}
	}
}
