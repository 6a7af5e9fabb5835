package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pthm-cable/shoal/species"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the complete kernel state needed to resume a run.
// The random source is not captured; callers reseed it explicitly.
type Snapshot struct {
	Version int    `json:"version"`
	RunID   string `json:"run_id"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Tick   int64   `json:"tick"`
	NowMs  float64 `json:"now_ms"`
	NextID uint32  `json:"next_id"`

	Prey     []PreyRecord   `json:"prey"`
	Predator PredatorRecord `json:"predator"`
}

// PreyRecord holds one prey's state in live order.
type PreyRecord struct {
	ID      uint32          `json:"id"`
	Species species.Species `json:"species"`
	X       float64         `json:"x"`
	Y       float64         `json:"y"`
	VelX    float64         `json:"vel_x"`
	VelY    float64         `json:"vel_y"`

	InkCooldownUntil float64 `json:"ink_cooldown_until,omitempty"`
	LastInkedAt      float64 `json:"last_inked_at,omitempty"`
	LastInkX         float64 `json:"last_ink_x,omitempty"`
	LastInkY         float64 `json:"last_ink_y,omitempty"`
	HasInked         bool    `json:"has_inked,omitempty"`
}

// PredatorRecord holds the predator's state.
type PredatorRecord struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VelX    float64 `json:"vel_x"`
	VelY    float64 `json:"vel_y"`
	Satiety float64 `json:"satiety"`
	Facing  float64 `json:"facing"`

	StunUntil          float64 `json:"stun_until"`
	ConfusedUntil      float64 `json:"confused_until"`
	JellyCooldownUntil float64 `json:"jelly_cooldown_until"`
}

// NewRunID returns a fresh identifier for a run's output and snapshots.
func NewRunID() string {
	return uuid.NewString()
}

// SaveSnapshot writes a snapshot to dir and returns its path.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d.json", snapshot.Tick)
	if snapshot.RunID != "" {
		name = fmt.Sprintf("snapshot_%s_%d.json", shortRunID(snapshot.RunID), snapshot.Tick)
	}
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}

// shortRunID keeps file names readable: the first uuid group.
func shortRunID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()[:8]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
