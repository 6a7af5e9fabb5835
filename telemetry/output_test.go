package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/species"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("", "run")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// A nil manager swallows writes.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	runID := NewRunID()
	om, err := NewOutputManager(dir, runID)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: int64(i * 600), Captures: i}); err != nil {
			t.Fatal(err)
		}
	}
	var c species.Counts
	c[species.Manta] = 2
	if err := om.WriteCensus(NewCensusRow(30, 500, c, 1.5, false, true)); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkInkStorm, Tick: 600, Description: "storm"}); err != nil {
		t.Fatal(err)
	}
	if err := om.WritePerf(PerfStats{}, 600); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Cfg()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "telemetry.csv"))
	if len(lines) != 4 {
		t.Fatalf("telemetry.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end,") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Contains(strings.Join(lines[1:], "\n"), "window_end") {
		t.Error("header repeated")
	}

	census := readLines(t, filepath.Join(dir, "census.csv"))
	if len(census) != 2 || !strings.HasPrefix(census[1], "30,500,2,") {
		t.Errorf("census.csv = %q", census)
	}
	if bm := readLines(t, filepath.Join(dir, "bookmarks.csv")); len(bm) != 2 || bm[1] != "ink_storm,600,storm" {
		t.Errorf("bookmarks.csv = %q", bm)
	}

	id, err := os.ReadFile(filepath.Join(dir, "run_id"))
	if err != nil || strings.TrimSpace(string(id)) != runID {
		t.Errorf("run_id = %q, %v", id, err)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load: %v", err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
