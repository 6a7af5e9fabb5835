package game

import (
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/systems"
	"github.com/pthm-cable/shoal/telemetry"
)

// Tick advances the reef one step at host time now (ms). The order is fixed:
// reconcile the population, move the predator and resolve its captures,
// remove and replace the captured prey, then steer every prey from a
// snapshot taken before any of them moves.
func (g *Game) Tick(now float64, p Params) TickResult {
	var res TickResult
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseReconcile)
	res.Spawned, res.Trimmed = g.reconcile(p.Population)

	g.perf.StartPhase(telemetry.PhasePredator)
	g.takeSnapshot()
	wasStunned := g.predator.IsStunned(now)
	capture := g.predator.Update(g.parallel.snapshots, now, g.width, g.height, p.Satiety, &g.tuning, g.rng)
	res.Stunned = capture.Stunned
	if capture.Stunned && !wasStunned {
		g.log.Debug("predator stunned", "until", g.predator.StunUntil)
	}

	g.perf.StartPhase(telemetry.PhaseRespawn)
	res.Captured = g.removeCaptured(capture.IDs)
	res.CapturedBySpecies = capture.Species
	res.Spawned += g.SpawnAtEdge(res.Captured)

	res.InkReleases, res.Confusions = g.advancePrey(now, p)

	g.perf.EndTick()
	g.tick++
	return res
}

// takeSnapshot copies every live prey into the read-only snapshot, in order.
func (g *Game) takeSnapshot() {
	ps := g.parallel
	ps.entities = ps.entities[:0]
	ps.snapshots = ps.snapshots[:0]
	for _, e := range g.order {
		pos := g.posMap.Get(e)
		vel := g.velMap.Get(e)
		prey := g.preyMap.Get(e)
		ps.entities = append(ps.entities, e)
		ps.snapshots = append(ps.snapshots, systems.PreyState{
			ID:      prey.ID,
			Species: prey.Species,
			Params:  prey.Params,
			Pos:     pos.Vec(),
			Vel:     vel.Vec(),
		})
	}
}

// advancePrey steers every prey against the tick-start snapshot, then writes
// the results back in live order. Ink release and the confusion check run
// during the write-back since they draw from the shared rng and mutate the
// predator.
func (g *Game) advancePrey(now float64, p Params) (inked, confused int) {
	g.perf.StartPhase(telemetry.PhasePreySnapshot)
	g.takeSnapshot()
	if len(g.parallel.snapshots) == 0 {
		return 0, 0
	}

	env := &systems.Env{
		Width:       g.width,
		Height:      g.height,
		GlobalSpeed: p.MaxSpeed,
		GlobalForce: p.MaxForce,
		Tuning:      &g.tuning,
	}
	predPos := g.predator.Pos

	g.perf.StartPhase(telemetry.PhasePreySteer)
	g.parallel.compute(predPos, env)

	g.perf.StartPhase(telemetry.PhasePreyApply)
	for i, e := range g.parallel.entities {
		snap := &g.parallel.snapshots[i]
		in := &g.parallel.intents[i]

		pos := g.posMap.Get(e)
		vel := g.velMap.Get(e)
		pos.X, pos.Y = in.Pos.X, in.Pos.Y
		vel.X, vel.Y = in.Vel.X, in.Vel.Y

		if snap.Species != species.Evasive {
			continue
		}
		ink := g.inkMap.Get(e)
		if systems.TryReleaseInk(ink, snap.Pos, in.PredDist, now, &g.tuning, g.rng) {
			inked++
			g.log.Debug("ink released", "prey", snap.ID, "x", snap.Pos.X, "y", snap.Pos.Y)
		}
		if !g.predator.IsConfused(now) &&
			systems.CloudTouches(ink, g.predator.Pos, now, g.width, g.height, &g.tuning) {
			g.predator.Confuse(now, g.tuning.ConfusionDurationMs)
			confused++
			g.log.Debug("predator confused", "prey", snap.ID, "until", g.predator.ConfusedUntil)
		}
	}
	return inked, confused
}
