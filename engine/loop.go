package engine

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/status"
)

// Screen is the draw target of the loop; terminal.Terminal satisfies it
type Screen interface {
	render.Sink
	Flush() error
}

// Sounder plays game cues; audio.SoundManager satisfies it
type Sounder interface {
	PlayEat()
	PlayDeath()
}

type silent struct{}

func (silent) PlayEat()   {}
func (silent) PlayDeath() {}

// LoopConfig wires a Loop; zero-valued optional fields get defaults
type LoopConfig struct {
	Game   *game.Game
	Field  *render.Canvas
	Header *render.Canvas
	Screen Screen
	Queue  *event.Queue[input.Intent]

	Palette  *render.Palette  // default render.DefaultPalette
	Clock    Clock            // default RealClock
	Sound    Sounder          // default silent
	Registry *status.Registry // default private registry

	BaseInterval time.Duration // default parameter.BaseInterval
	DeathDelay   time.Duration // final frame hold after a death, zero for none
}

// Loop drives the game at a speed-dependent cadence on the calling goroutine
type Loop struct {
	cfg LoopConfig

	statTicks  *atomic.Int64
	statFrames *atomic.Int64
	statCells  *atomic.Int64
	statSteers *atomic.Int64
	statApples *atomic.Int64
}

// NewLoop creates a loop; Game, Field, Header, Screen and Queue are required
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Game == nil || cfg.Field == nil || cfg.Header == nil || cfg.Screen == nil || cfg.Queue == nil {
		panic("engine: incomplete loop config")
	}
	if cfg.Palette == nil {
		cfg.Palette = render.DefaultPalette()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	if cfg.Sound == nil {
		cfg.Sound = silent{}
	}
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = parameter.BaseInterval
	}
	if cfg.DeathDelay < 0 {
		cfg.DeathDelay = 0
	}

	reg := cfg.Registry
	return &Loop{
		cfg:        cfg,
		statTicks:  reg.Ints.Get(status.TicksTotal),
		statFrames: reg.Ints.Get(status.FramesTotal),
		statCells:  reg.Ints.Get(status.CellsDrawn),
		statSteers: reg.Ints.Get(status.IntentsApplied),
		statApples: reg.Ints.Get(status.ApplesEaten),
	}
}

// Interval returns the sleep between ticks at the current speed
func (l *Loop) Interval() time.Duration {
	speed := l.cfg.Game.Speed()
	if speed <= 0 {
		return l.cfg.BaseInterval
	}
	return l.cfg.BaseInterval / time.Duration(speed)
}

// Run plays until the game ends and returns its outcome
// Each iteration draws, sleeps, applies queued intents, then ticks. After a death the final
// frame is drawn and held for the death delay. Screen errors abort the loop
func (l *Loop) Run() (game.Outcome, error) {
	g := l.cfg.Game
	start := l.cfg.Clock.Now()

	for {
		if err := l.frame(); err != nil {
			return game.Outcome{}, err
		}

		l.cfg.Clock.Sleep(l.Interval())

		if g.HandleIntents(l.cfg.Queue.Drain()) {
			l.statSteers.Add(1)
		}
		if g.State() == game.StateGameOver {
			break
		}

		res := g.Tick()
		l.statTicks.Add(1)
		if res.Ate {
			l.statApples.Add(1)
			l.cfg.Sound.PlayEat()
		}
		if res.Died {
			l.cfg.Sound.PlayDeath()
		}
		if g.State() == game.StateGameOver {
			break
		}
	}

	out := g.Outcome()
	played := l.cfg.Clock.Now().Sub(start)
	l.cfg.Registry.Ints.Get(status.PlayTimeMs).Store(played.Milliseconds())
	log.Printf("game over: quit=%t score=%d after %v", out.Quit, out.Score, played)
	if !out.Quit {
		if err := l.frame(); err != nil {
			return out, err
		}
		l.cfg.Clock.Sleep(l.cfg.DeathDelay)
	}
	return out, nil
}

// frame draws the game into both canvases and pushes the diff to the screen
func (l *Loop) frame() error {
	c := l.cfg
	c.Game.Draw(c.Field, c.Header)

	n, err := c.Field.Render(c.Screen, c.Palette)
	if err != nil {
		return fmt.Errorf("render field: %w", err)
	}
	m, err := c.Header.Render(c.Screen, c.Palette)
	if err != nil {
		return fmt.Errorf("render header: %w", err)
	}
	if err := c.Screen.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	l.statFrames.Add(1)
	l.statCells.Add(int64(n + m))
	return nil
}

// Finish reports the result after the terminal is restored; only deaths print a score line
func Finish(out game.Outcome, w io.Writer) error {
	if out.Quit {
		return nil
	}
	_, err := fmt.Fprintf(w, "Game over. Score: %d\n", out.Score)
	return err
}
