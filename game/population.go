package game

import (
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/systems"
)

// liveCounts tallies the live population by species.
func (g *Game) liveCounts() species.Counts {
	var c species.Counts
	for _, e := range g.order {
		c.Add(g.preyMap.Get(e).Species)
	}
	return c
}

// SpawnAtEdge adds n prey at random field edges. Species are drawn with the
// balanced weights, recounting after every spawn so a burst of spawns still
// lifts the rarest species first. It returns the number spawned.
func (g *Game) SpawnAtEdge(n int) int {
	if n <= 0 {
		return 0
	}
	counts := g.liveCounts()
	total := counts.Total()
	for i := 0; i < n; i++ {
		s := species.Balanced(g.rng, counts, total)
		g.spawnPrey(systems.EdgePoint(g.rng, g.width, g.height), s)
		counts.Add(s)
		total++
	}
	g.log.Debug("prey spawned", "count", n, "live", len(g.order))
	return n
}

// reconcile grows the population to target with edge spawns or truncates it
// from the end. A negative target is treated as zero.
func (g *Game) reconcile(target int) (spawned, trimmed int) {
	target = max(target, 0)
	switch n := len(g.order); {
	case n < target:
		spawned = g.SpawnAtEdge(target - n)
	case n > target:
		for _, e := range g.order[target:] {
			g.world.RemoveEntity(e)
		}
		trimmed = n - target
		clear(g.order[target:])
		g.order = g.order[:target]
		g.log.Debug("population truncated", "removed", trimmed, "live", target)
	}
	return spawned, trimmed
}

// removeCaptured deletes the captured prey and compacts the live order in
// place, keeping survivors in their relative order.
func (g *Game) removeCaptured(ids []uint32) int {
	if len(ids) == 0 {
		return 0
	}
	captured := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		captured[id] = struct{}{}
	}

	kept := g.order[:0]
	removed := 0
	for _, e := range g.order {
		if _, ok := captured[g.preyMap.Get(e).ID]; ok {
			g.world.RemoveEntity(e)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clear(g.order[len(kept):])
	g.order = kept
	return removed
}
