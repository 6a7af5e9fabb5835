package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayCRT        OverlayID = "crt"
	OverlayInk        OverlayID = "ink"
	OverlayParams     OverlayID = "params"
	OverlayPopulation OverlayID = "population"
	OverlayPerf       OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32
	KeyLabel string
}

// OverlayRegistry holds the overlays in legend order with their state.
type OverlayRegistry struct {
	overlays []OverlayDescriptor
	on       []bool
}

// NewOverlayRegistry creates a registry with the reef overlays. The CRT
// starts as configured, perf starts off, the rest start on.
func NewOverlayRegistry(crt bool) *OverlayRegistry {
	r := &OverlayRegistry{}
	r.Register(OverlayDescriptor{ID: OverlayCRT, Name: "CRT", Key: rl.KeyC, KeyLabel: "C"}, crt)
	r.Register(OverlayDescriptor{ID: OverlayInk, Name: "Ink", Key: rl.KeyI, KeyLabel: "I"}, true)
	r.Register(OverlayDescriptor{ID: OverlayParams, Name: "Params", Key: rl.KeyP, KeyLabel: "P"}, true)
	r.Register(OverlayDescriptor{ID: OverlayPopulation, Name: "Population", Key: rl.KeyN, KeyLabel: "N"}, true)
	r.Register(OverlayDescriptor{ID: OverlayPerf, Name: "Perf", Key: rl.KeyF, KeyLabel: "F"}, false)
	return r
}

// Register appends an overlay.
func (r *OverlayRegistry) Register(desc OverlayDescriptor, enabled bool) {
	r.overlays = append(r.overlays, desc)
	r.on = append(r.on, enabled)
}

func (r *OverlayRegistry) index(id OverlayID) int {
	for i, d := range r.overlays {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// IsEnabled reports whether an overlay is shown. Unknown ids are off.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	i := r.index(id)
	return i >= 0 && r.on[i]
}

// All returns the overlays in legend order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.overlays
}

// HandleKeyPress flips the overlay bound to key, if any, and returns its
// id and new state.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for i, d := range r.overlays {
		if d.Key == key {
			r.on[i] = !r.on[i]
			return d.ID, r.on[i], true
		}
	}
	return "", false, false
}

// Legend returns the key bindings as "[C] CRT  [I] Ink ...".
func (r *OverlayRegistry) Legend() string {
	parts := make([]string, len(r.overlays))
	for i, d := range r.overlays {
		parts[i] = "[" + d.KeyLabel + "] " + d.Name
	}
	return strings.Join(parts, "  ")
}
