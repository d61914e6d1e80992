package scenes

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/logging"
	"github.com/gonewx/cardace/pkg/systems"
)

// PlayingScene runs the game systems for one run.
type PlayingScene struct {
	world *World
	log   zerolog.Logger

	flight    *systems.FlightSystem
	launch    *systems.LaunchSystem
	collision *systems.CollisionSystem
	effects   *systems.EffectSystem
	reap      *systems.ReapSystem
	spawn     *systems.CardSpawnSystem
}

// NewPlayingScene creates the scene; the systems are built on Enter.
func NewPlayingScene(w *World) *PlayingScene {
	return &PlayingScene{world: w, log: logging.Component(w.Log, "PlayingScene")}
}

// Enter resets the clock, builds fresh run resources and the systems that
// mutate them.
func (s *PlayingScene) Enter() error {
	w := s.world
	if !w.Entities.IsAlive(w.Ship) {
		return errors.New("playing without a ship")
	}
	run := w.State.BeginRun(w.Config)
	w.Contacts.Clear()
	w.Effects.Clear()
	w.Cues.Clear()

	shipRec, _ := w.Entities.Get(w.Ship)
	s.flight = systems.NewFlightSystem(w.Entities, w.Config.Ship, w.Steering)
	s.launch = systems.NewLaunchSystem(w.Entities, w.Ship, w.Aimer, run.Projectiles, w.Config.Laser,
		w.Metrics, logging.Component(w.Log, "LaunchSystem"))
	s.collision = systems.NewCollisionSystem(w.Entities, run, w.Contacts, w.Effects, w.Cues, w.Scenes,
		w.Metrics, logging.Component(w.Log, "CollisionSystem"))
	s.effects = systems.NewEffectSystem(w.Entities, w.Rand, w.Effects, w.Config.Effect, w.Metrics)
	s.reap = systems.NewReapSystem(w.Entities, run, w.Ship, w.Config, w.Metrics)
	s.spawn = systems.NewCardSpawnSystem(w.Entities, w.Rand, run.Deck, shipRec.Transform.Position, w.Config.Card,
		w.Metrics, logging.Component(w.Log, "CardSpawnSystem"))

	s.log.Info().Int("deck", run.Deck.Len()).Msg("run started")
	return nil
}

// Exit keeps the run resources for the game over screen.
func (s *PlayingScene) Exit() error {
	return nil
}

// Update runs one tick of every system in order.
func (s *PlayingScene) Update(deltaTime float64) error {
	w := s.world
	w.State.Score.Tick(deltaTime)

	s.flight.Update(deltaTime)
	if err := s.launch.Update(deltaTime); err != nil {
		return err
	}
	w.Physics.Update(deltaTime)
	if err := s.collision.Update(deltaTime); err != nil {
		return err
	}
	if err := s.effects.Update(deltaTime); err != nil {
		return err
	}
	if err := s.reap.Update(deltaTime); err != nil {
		return err
	}
	if err := s.spawn.Update(deltaTime); err != nil {
		return err
	}

	for _, cue := range w.Cues.Drain() {
		w.Sound.Play(cue)
	}
	w.State.Board.Refresh(w.State.Score, w.State.Run.Stack)
	return nil
}

// Draw renders the field and the scoreboard.
func (s *PlayingScene) Draw(screen *ebiten.Image) {
	drawWorld(screen, s.world)
	drawScoreboard(screen, &s.world.State.Board)
}
