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

// StartScene is the title screen. Any key release starts a run.
type StartScene struct {
	world   *World
	control string
	log     zerolog.Logger
}

// NewStartScene creates the title scene.
func NewStartScene(w *World, control string) *StartScene {
	return &StartScene{world: w, control: control, log: logging.Component(w.Log, "StartScene")}
}

// Enter spawns the ship and the title prompt.
func (s *StartScene) Enter() error {
	w := s.world
	if !w.Entities.IsAlive(w.Ship) {
		ship, err := entities.NewShip(w.Entities, w.Config.Ship)
		if err != nil {
			return fmt.Errorf("create ship: %w", err)
		}
		w.Ship = ship
	}
	if _, err := entities.NewPrompt(w.Entities, components.PromptTitle, entities.TitleText(s.control)); err != nil {
		return fmt.Errorf("create title: %w", err)
	}
	return nil
}

// Exit removes the title prompt.
func (s *StartScene) Exit() error {
	s.world.destroyPrompts(components.PromptTitle)
	return nil
}

// Update waits for a key release.
func (s *StartScene) Update(deltaTime float64) error {
	if s.world.releasedKey() {
		s.log.Debug().Msg("key released, starting run")
		return s.world.Scenes.RequestTransition(game.StatePlaying)
	}
	return nil
}

// Draw renders the field and the title.
func (s *StartScene) Draw(screen *ebiten.Image) {
	drawWorld(screen, s.world)
}
