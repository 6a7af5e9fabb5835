package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/components"
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/systems"
	"github.com/pthm-cable/shoal/telemetry"
)

// Snapshot captures the full kernel state at nowMs. The rng is not
// included; reseed both sides to compare continuations.
func (g *Game) Snapshot(nowMs float64, runID string) *telemetry.Snapshot {
	snap := &telemetry.Snapshot{
		Version: telemetry.SnapshotVersion,
		RunID:   runID,
		Width:   g.width,
		Height:  g.height,
		Tick:    g.tick,
		NowMs:   nowMs,
		NextID:  g.nextID,
		Prey:    make([]telemetry.PreyRecord, 0, len(g.order)),
	}

	for _, e := range g.order {
		pos := g.posMap.Get(e)
		vel := g.velMap.Get(e)
		prey := g.preyMap.Get(e)
		ink := g.inkMap.Get(e)
		snap.Prey = append(snap.Prey, telemetry.PreyRecord{
			ID:               prey.ID,
			Species:          prey.Species,
			X:                pos.X,
			Y:                pos.Y,
			VelX:             vel.X,
			VelY:             vel.Y,
			InkCooldownUntil: ink.CooldownUntil,
			LastInkedAt:      ink.LastInkedAt,
			LastInkX:         ink.LastX,
			LastInkY:         ink.LastY,
			HasInked:         ink.HasInked,
		})
	}

	p := g.predator
	snap.Predator = telemetry.PredatorRecord{
		X:                  p.Pos.X,
		Y:                  p.Pos.Y,
		VelX:               p.Vel.X,
		VelY:               p.Vel.Y,
		Satiety:            p.Satiety,
		Facing:             p.Facing,
		StunUntil:          p.StunUntil,
		ConfusedUntil:      p.ConfusedUntil,
		JellyCooldownUntil: p.JellyCooldownUntil,
	}
	return snap
}

// Restore rebuilds a game from a snapshot. Field size comes from the
// snapshot; the remaining options apply as in New.
func Restore(snap *telemetry.Snapshot, opts Options) *Game {
	opts.Width, opts.Height = snap.Width, snap.Height
	opts.Population = len(snap.Prey)
	g := newEmpty(opts)
	g.tick = snap.Tick
	g.nextID = snap.NextID

	for _, r := range snap.Prey {
		p := components.Position{X: r.X, Y: r.Y}
		v := components.Velocity{X: r.VelX, Y: r.VelY}
		prey := components.Prey{ID: r.ID, Species: r.Species, Params: species.Lookup(r.Species)}
		ink := components.Ink{
			CooldownUntil: r.InkCooldownUntil,
			LastInkedAt:   r.LastInkedAt,
			LastX:         r.LastInkX,
			LastY:         r.LastInkY,
			HasInked:      r.HasInked,
		}
		g.order = append(g.order, g.preyMapper.NewEntity(&p, &v, &prey, &ink))
	}

	pr := snap.Predator
	g.predator = &systems.Predator{
		Pos:                r2.Vec{X: pr.X, Y: pr.Y},
		Vel:                r2.Vec{X: pr.VelX, Y: pr.VelY},
		Satiety:            pr.Satiety,
		Facing:             pr.Facing,
		StunUntil:          pr.StunUntil,
		ConfusedUntil:      pr.ConfusedUntil,
		JellyCooldownUntil: pr.JellyCooldownUntil,
		SpeedCap:           g.tuning.PredatorSpeed,
	}

	g.log.Debug("game restored", "tick", g.tick, "prey", len(g.order))
	return g
}
