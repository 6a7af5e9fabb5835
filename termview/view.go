package termview

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/shoal/game"
)

// populationStep is how much +/- changes the target population.
const populationStep = 10

// View drives a Runner in a tcell screen.
type View struct {
	screen tcell.Screen
	runner *game.Runner
	cells  []Cell
	prey   []game.PreyView
	paused bool
	log    *slog.Logger
}

// New initializes the terminal screen.
func New(runner *game.Runner, log *slog.Logger) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &View{screen: screen, runner: runner, log: log}, nil
}

// Run steps the simulation at tickMs intervals until the user quits or
// maxTicks is reached (0 = no limit).
func (v *View) Run(tickMs float64, maxTicks int64, populationMax int) {
	defer v.screen.Fini()

	ticker := time.NewTicker(time.Duration(tickMs * float64(time.Millisecond)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)

	now := v.runner.Now()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev, populationMax) {
				close(quit)
				return
			}
		case <-ticker.C:
			if !v.paused {
				now += tickMs
				v.runner.Step(now)
			}
			v.draw(now)
			if maxTicks > 0 && v.runner.Game().Ticks() >= maxTicks {
				close(quit)
				return
			}
		}
	}
}

func (v *View) handle(ev tcell.Event, populationMax int) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		p := v.runner.Params()
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case '+', '=':
			p.Population = min(p.Population+populationStep, populationMax)
			v.log.Info("population target", "target", p.Population)
		case '-':
			p.Population = max(p.Population-populationStep, 0)
			v.log.Info("population target", "target", p.Population)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) draw(now float64) {
	g := v.runner.Game()
	cols, rows := v.screen.Size()
	fw, fh := g.Size()
	grid := Grid{FieldW: fw, FieldH: fh, Cols: cols, Rows: rows - 1}

	v.prey = g.AppendPrey(v.prey[:0], now)
	v.cells = Compose(v.cells[:0], grid, v.prey, g.Predator(now))

	v.screen.Clear()
	for _, c := range v.cells {
		v.screen.SetContent(c.X, c.Y, c.Rune, nil, c.Style)
	}
	status := StatusLine(g.Ticks(), g.Census(now), v.paused)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true)
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		v.screen.SetContent(i, rows-1, r, nil, style)
	}
	v.screen.Show()
}
