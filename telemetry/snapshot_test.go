package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/shoal/species"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		RunID:   "3f2b8c1e-0000-4000-8000-000000000000",
		Width:   800,
		Height:  600,
		Tick:    1000,
		NowMs:   16666.5,
		NextID:  73,
		Prey: []PreyRecord{
			{ID: 1, Species: species.Octopus, X: 150, Y: 250, VelX: 0.5, VelY: -0.3,
				InkCooldownUntil: 20000, LastInkedAt: 12000, LastInkX: 140, LastInkY: 255, HasInked: true},
			{ID: 2, Species: species.Jellyfish, X: 700, Y: 10, VelX: -0.1, VelY: 0.2},
		},
		Predator: PredatorRecord{
			X: 400, Y: 300, VelX: 1.2, VelY: 0.4,
			Satiety: 3.5, Facing: 0.32,
			StunUntil: 17000, ConfusedUntil: 0, JellyCooldownUntil: 26000,
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if base := filepath.Base(path); base != "snapshot_3f2b8c1e_1000.json" {
		t.Errorf("file name = %q", base)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if loaded.Tick != snapshot.Tick || loaded.NextID != snapshot.NextID || loaded.NowMs != snapshot.NowMs {
		t.Errorf("header = %+v", loaded)
	}
	if len(loaded.Prey) != 2 || loaded.Prey[0] != snapshot.Prey[0] || loaded.Prey[1] != snapshot.Prey[1] {
		t.Errorf("prey = %+v", loaded.Prey)
	}
	if loaded.Predator != snapshot.Predator {
		t.Errorf("predator = %+v, want %+v", loaded.Predator, snapshot.Predator)
	}

	// Species are written by name.
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"species": "octopus"`) {
		t.Errorf("species not written by name:\n%s", data)
	}
}

func TestLoadSnapshotRejectsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	data, _ := json.Marshal(Snapshot{Version: SnapshotVersion + 1})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected version mismatch error")
	}
}

func TestNewRunIDUnique(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b || len(a) != 36 {
		t.Errorf("run ids %q %q", a, b)
	}
}
