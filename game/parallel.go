package game

import (
	"runtime"
	"sync"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/systems"
)

// parallelThreshold is the minimum prey count to use the worker pool.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// intent captures one prey's computed outputs to apply after the compute phase.
type intent struct {
	Pos      r2.Vec
	Vel      r2.Vec
	PredDist float64 // wrapped distance to the predator at tick start
}

// workChunk represents a range of snapshots for a worker to process.
type workChunk struct {
	start, end int
	env        *systems.Env
	predPos    r2.Vec
}

// parallelState holds the tick-start snapshot, the computed intents and the
// persistent worker pool.
type parallelState struct {
	entities   []ecs.Entity
	snapshots  []systems.PreyState
	intents    []intent
	numWorkers int

	workChan chan workChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func newParallelState(workers int) *parallelState {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &parallelState{
		numWorkers: workers,
		entities:   make([]ecs.Entity, 0, 256),
		snapshots:  make([]systems.PreyState, 0, 256),
		intents:    make([]intent, 0, 256),
	}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers() {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *parallelState) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.computeChunk(chunk.start, chunk.end, chunk.predPos, chunk.env)
			p.doneChan <- struct{}{}
		}
	}
}

// computeChunk steers snapshots [i0, i1). It reads only the snapshot and
// writes only its own intents, so chunks never race.
func (p *parallelState) computeChunk(i0, i1 int, predPos r2.Vec, env *systems.Env) {
	for i := i0; i < i1; i++ {
		self := &p.snapshots[i]
		forces := systems.PreyForces(self, p.snapshots, predPos, env)
		pos, vel := systems.IntegratePrey(self, forces, env)
		p.intents[i] = intent{
			Pos:      pos,
			Vel:      vel,
			PredDist: r2.Norm(systems.ToroidalDelta(self.Pos, predPos, env.Width, env.Height)),
		}
	}
}

// compute fills the intents for every snapshot, on the pool when the
// population is large enough and more than one worker is allowed.
func (p *parallelState) compute(predPos r2.Vec, env *systems.Env) {
	n := len(p.snapshots)
	if cap(p.intents) < n {
		p.intents = make([]intent, n)
	}
	p.intents = p.intents[:n]

	if n < parallelThreshold || p.numWorkers < 2 {
		p.computeChunk(0, n, predPos, env)
		return
	}

	p.startWorkers()
	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	dispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}
		p.workChan <- workChunk{start: start, end: end, env: env, predPos: predPos}
		dispatched++
	}
	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}
}
