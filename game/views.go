package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/systems"
)

// InkView describes a prey's most recent ink cloud.
type InkView struct {
	Active     bool // the cloud is still alive at the view time
	Position   r2.Vec
	ReleasedAt float64
	AgeMs      float64
	Radius     float64
	Alpha      float64
}

// PreyView is a read-only copy of one prey.
type PreyView struct {
	ID       uint32
	Position r2.Vec
	Velocity r2.Vec
	Species  species.Species
	Ink      InkView
}

// AppendPrey appends a view of every live prey, in live order, to dst.
// Hosts reuse dst across frames.
func (g *Game) AppendPrey(dst []PreyView, now float64) []PreyView {
	for _, e := range g.order {
		pos := g.posMap.Get(e)
		vel := g.velMap.Get(e)
		prey := g.preyMap.Get(e)
		ink := g.inkMap.Get(e)

		v := PreyView{
			ID:       prey.ID,
			Position: pos.Vec(),
			Velocity: vel.Vec(),
			Species:  prey.Species,
		}
		if age, alive := systems.CloudAge(ink, now, &g.tuning); alive {
			radius, alpha := systems.CloudState(age, &g.tuning)
			v.Ink = InkView{
				Active:     true,
				Position:   ink.Center(),
				ReleasedAt: ink.LastInkedAt,
				AgeMs:      age,
				Radius:     radius,
				Alpha:      alpha,
			}
		}
		dst = append(dst, v)
	}
	return dst
}

// Prey returns a fresh view of every live prey.
func (g *Game) Prey(now float64) []PreyView {
	return g.AppendPrey(make([]PreyView, 0, len(g.order)), now)
}

// PredatorView is a read-only copy of the predator.
type PredatorView struct {
	Position r2.Vec
	Velocity r2.Vec
	Speed    float64
	Facing   float64
	Satiety  float64
	SpeedCap float64
	Stunned  bool
	Confused bool
}

// Predator returns the predator's state at now.
func (g *Game) Predator(now float64) PredatorView {
	p := g.predator
	return PredatorView{
		Position: p.Pos,
		Velocity: p.Vel,
		Speed:    finiteSpeed(p.Vel),
		Facing:   p.Facing,
		Satiety:  p.Satiety,
		SpeedCap: p.SpeedCap,
		Stunned:  p.IsStunned(now),
		Confused: p.IsConfused(now),
	}
}

// Census is a point-in-time population reading.
type Census struct {
	Counts   species.Counts
	Total    int
	Satiety  float64
	Stunned  bool
	Confused bool
}

// Census counts the live prey by species. Taken between ticks it always
// reflects a fully updated population.
func (g *Game) Census(now float64) Census {
	var c species.Counts
	query := g.preyFilter.Query()
	for query.Next() {
		_, _, prey, _ := query.Get()
		c.Add(prey.Species)
	}
	return Census{
		Counts:   c,
		Total:    c.Total(),
		Satiety:  g.predator.Satiety,
		Stunned:  g.predator.IsStunned(now),
		Confused: g.predator.IsConfused(now),
	}
}
