package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/logging"
)

// GameOverScene shows the result of a completed run. Any key release goes
// back to the title.
type GameOverScene struct {
	world *World
	log   zerolog.Logger
}

// NewGameOverScene creates the scene.
func NewGameOverScene(w *World) *GameOverScene {
	return &GameOverScene{world: w, log: logging.Component(w.Log, "GameOverScene")}
}

// Enter records the best time and shows the game over prompt.
func (s *GameOverScene) Enter() error {
	w := s.world
	elapsed := w.State.Score.Elapsed()
	best := w.State.FinishRun()
	w.Metrics.RunCompleted(elapsed, best)
	w.State.Board.Refresh(w.State.Score, w.State.Run.Stack)

	s.log.Info().Float64("elapsed", elapsed).Float64("best", w.State.Score.Best()).
		Bool("new_best", best).Msg("run finished")

	if _, err := entities.NewPrompt(w.Entities, components.PromptGameOver, entities.GameOverText); err != nil {
		return fmt.Errorf("create game over prompt: %w", err)
	}
	return nil
}

// Exit clears the field except for the camera and drops the run resources.
func (s *GameOverScene) Exit() error {
	w := s.world
	for _, id := range w.Entities.GetEntitiesWith(0) {
		if id != w.Camera {
			w.Entities.DestroyEntity(id)
		}
	}
	w.State.EndRun()
	w.Physics.Reset()
	w.Contacts.Clear()
	w.Effects.Clear()
	w.Cues.Clear()
	return nil
}

// Update lets the field settle and waits for a key release.
func (s *GameOverScene) Update(deltaTime float64) error {
	w := s.world
	w.Physics.Update(deltaTime)
	w.Contacts.Clear()

	if w.releasedKey() {
		return w.Scenes.RequestTransition(game.StateStart)
	}
	return nil
}

// Draw renders the field, the final board and the prompt.
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	drawWorld(screen, s.world)
	drawScoreboard(screen, &s.world.State.Board)
}
