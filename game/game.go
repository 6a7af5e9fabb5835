// Package game is the reef simulation kernel: a prey population steering
// by species rules, one pursuing predator, and the tick that advances them.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/components"
	"github.com/pthm-cable/shoal/species"
	"github.com/pthm-cable/shoal/systems"
	"github.com/pthm-cable/shoal/telemetry"
)

// Options configures a new Game.
type Options struct {
	Width, Height float64
	Population    int   // initial prey count
	Seed          int64 // rng seed (0 = 1)

	Tuning *systems.Tuning // nil = systems.DefaultTuning()
	Logger *slog.Logger    // nil = slog.Default()
	Perf   *telemetry.PerfCollector

	// Workers bounds the prey steering pool (0 = GOMAXPROCS, 1 = no goroutines).
	Workers int
}

// Game holds the complete kernel state. It is not safe for concurrent use:
// hosts call Tick once per frame and read views between ticks.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	log   *slog.Logger
	perf  *telemetry.PerfCollector

	preyMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Prey,
		components.Ink,
	]
	preyFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Prey,
		components.Ink,
	]

	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	preyMap *ecs.Map1[components.Prey]
	inkMap  *ecs.Map1[components.Ink]

	// Live prey in stable order. Truncation removes from the end and capture
	// removal compacts without reordering.
	order []ecs.Entity

	predator *systems.Predator
	tuning   systems.Tuning

	parallel *parallelState

	width, height float64
	nextID        uint32
	tick          int64
}

// New creates a game with an initial population at random positions and
// the predator at the field center.
func New(opts Options) *Game {
	g := newEmpty(opts)

	center := r2.Vec{X: g.width / 2, Y: g.height / 2}
	g.predator = systems.NewPredator(center, &g.tuning, g.rng)

	for i := 0; i < opts.Population; i++ {
		pos := r2.Vec{X: g.rng.Float64() * g.width, Y: g.rng.Float64() * g.height}
		g.spawnPrey(pos, species.Weighted(g.rng))
	}
	g.log.Debug("game created",
		"width", g.width,
		"height", g.height,
		"prey", len(g.order),
		"seed", opts.Seed,
	)
	return g
}

// newEmpty builds the world and mappers without any entities or predator.
func newEmpty(opts Options) *Game {
	world := ecs.NewWorld()

	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	tuning := systems.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Game{
		world:  world,
		rng:    rand.New(rand.NewSource(seed)),
		log:    logger,
		perf:   opts.Perf,
		tuning: tuning,
		width:  opts.Width,
		height: opts.Height,
		preyMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Prey,
			components.Ink,
		](world),
		preyFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Prey,
			components.Ink,
		](world),
		posMap:   ecs.NewMap1[components.Position](world),
		velMap:   ecs.NewMap1[components.Velocity](world),
		preyMap:  ecs.NewMap1[components.Prey](world),
		inkMap:   ecs.NewMap1[components.Ink](world),
		order:    make([]ecs.Entity, 0, max(opts.Population, 64)),
		parallel: newParallelState(opts.Workers),
	}
}

// spawnPrey creates one prey at pos with a random heading at the default
// max speed and appends it to the live order.
func (g *Game) spawnPrey(pos r2.Vec, s species.Species) ecs.Entity {
	g.nextID++
	vel := systems.RandomHeading(g.rng, g.tuning.DefaultMaxSpeed)

	p := components.Position{X: pos.X, Y: pos.Y}
	v := components.Velocity{X: vel.X, Y: vel.Y}
	prey := components.Prey{ID: g.nextID, Species: s, Params: species.Lookup(s)}
	ink := components.Ink{}

	e := g.preyMapper.NewEntity(&p, &v, &prey, &ink)
	g.order = append(g.order, e)
	return e
}

// Reseed replaces the random source.
func (g *Game) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Resize changes the field. Entities outside the new bounds are wrapped
// back in on their next integration; wrapped deltas stay correct meanwhile.
func (g *Game) Resize(w, h float64) {
	if w == g.width && h == g.height {
		return
	}
	g.log.Debug("field resized", "width", w, "height", h)
	g.width, g.height = w, h
}

// Size returns the field dimensions.
func (g *Game) Size() (w, h float64) { return g.width, g.height }

// Tuning returns the kernel constants in use.
func (g *Game) Tuning() systems.Tuning { return g.tuning }

// Ticks returns the number of ticks advanced so far.
func (g *Game) Ticks() int64 { return g.tick }

// Len returns the live prey count.
func (g *Game) Len() int { return len(g.order) }

// Close stops the steering workers.
func (g *Game) Close() {
	g.parallel.stopWorkers()
}

// finiteSpeed is the speed of v, or 0 when v is not finite.
func finiteSpeed(v r2.Vec) float64 {
	n := r2.Norm(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
