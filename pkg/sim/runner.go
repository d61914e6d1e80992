// Package sim runs the game core without a window.
//
// A Runner drives a scenes.World tick by tick with a seeded RNG and a Bot in
// place of the player, and checks the bookkeeping invariants after every
// tick. Key releases are injected to leave the title and game over screens.
package sim

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/events"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/logging"
	"github.com/gonewx/cardace/pkg/scenes"
	"github.com/gonewx/cardace/pkg/telemetry"
	"github.com/gonewx/cardace/pkg/types"
)

// Options configures a headless run.
type Options struct {
	Config *config.GameConfig
	Seed   int64
	Ticks  int
	TPS    int
	// FireInterval is the number of ticks between bot shots.
	FireInterval int
	// Restart starts a new run whenever one completes.
	Restart bool
	Log     zerolog.Logger
	Metrics *telemetry.Metrics
}

// Summary is the state of the world when the runner stopped.
type Summary struct {
	Ticks       int
	Runs        int
	Shots       int
	State       game.RunState
	Elapsed     float64
	Best        float64
	Cursor      int
	Next        string
	Captured    []types.CardID
	DeckSize    int
	FieldCards  int
	Projectiles int
}

// Runner owns one world and its bot.
type Runner struct {
	opts  Options
	world *scenes.World
	bot   *Bot
	log   zerolog.Logger

	ticks int
	runs  int
}

// NewRunner builds the world with the bot as its aimer.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultGameConfig()
	}
	if opts.TPS <= 0 {
		opts.TPS = config.DefaultTPS
	}
	if opts.FireInterval <= 0 {
		opts.FireInterval = 6
	}

	bot := NewBot(opts.FireInterval)
	w, err := scenes.NewWorld(scenes.Options{
		Config:  opts.Config,
		Seed:    opts.Seed,
		Log:     opts.Log,
		Metrics: opts.Metrics,
		Aimer:   bot,
	})
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	bot.Attach(w)

	return &Runner{opts: opts, world: w, bot: bot, log: logging.Component(opts.Log, "Simulator")}, nil
}

// World exposes the simulated world.
func (r *Runner) World() *scenes.World {
	return r.world
}

// Run advances the world until Ticks have elapsed, ctx is done or a tick
// fails. Without Restart it also stops once a run has completed.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	dt := 1.0 / float64(r.opts.TPS)
	for r.ticks < r.opts.Ticks {
		if err := ctx.Err(); err != nil {
			return r.Summary(), err
		}

		before := r.world.Scenes.Current()
		switch before {
		case game.StateStart:
			r.pressAnyKey()
		case game.StateGameOver:
			if !r.opts.Restart {
				return r.Summary(), nil
			}
			r.pressAnyKey()
		}

		if err := r.world.Update(dt); err != nil {
			return r.Summary(), fmt.Errorf("tick %d: %w", r.ticks, err)
		}
		r.ticks++

		if err := CheckInvariants(r.world); err != nil {
			return r.Summary(), fmt.Errorf("tick %d: %w", r.ticks, err)
		}
		if before == game.StatePlaying && r.world.Scenes.Current() == game.StateGameOver {
			r.runs++
			r.log.Info().Int("tick", r.ticks).Float64("elapsed", r.world.State.Score.Elapsed()).
				Msg("run completed")
		}
	}
	return r.Summary(), nil
}

func (r *Runner) pressAnyKey() {
	r.world.Keys.Push(events.KeyEvent{Key: "Space", State: events.KeyReleased})
}

// Summary reports the current state of the world.
func (r *Runner) Summary() Summary {
	w := r.world
	s := Summary{
		Ticks:   r.ticks,
		Runs:    r.runs,
		Shots:   r.bot.Shots(),
		State:   w.Scenes.Current(),
		Elapsed: w.State.Score.Elapsed(),
		Best:    w.State.Score.Best(),
		Next:    "-",
	}
	if run := w.State.Run; run != nil {
		s.Cursor = run.Stack.Cursor()
		s.Captured = run.Stack.Captured()
		s.DeckSize = run.Deck.Len()
		s.Projectiles = run.Projectiles.Count()
		if next, ok := run.Stack.Next(); ok {
			s.Next = next
		}
	}
	s.FieldCards = len(fieldCards(w))
	return s
}
