// Package scenes implements the Start, Playing and GameOver scenes and the
// world they share.
package scenes

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/audio"
	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/events"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/input"
	"github.com/gonewx/cardace/pkg/logging"
	"github.com/gonewx/cardace/pkg/systems"
	"github.com/gonewx/cardace/pkg/telemetry"
)

// Options configures a World.
type Options struct {
	Config  *config.GameConfig
	Control string // config.ControlKeyboard or config.ControlPointer
	Seed    int64
	Log     zerolog.Logger
	Metrics *telemetry.Metrics
	Sound   audio.Cues

	// Steering and Aimer override the adapters picked from Control.
	Steering systems.Steering
	Aimer    systems.Aimer
}

// World is everything the scenes share: the entities, the event queues, the
// process-wide game state and the state machine.
type World struct {
	Config   *config.GameConfig
	Entities *ecs.EntityManager
	State    *game.GameState
	Scenes   *game.SceneManager

	Contacts *events.Queue[events.ContactEvent]
	Effects  *events.Queue[events.EffectRequest]
	Keys     *events.Queue[events.KeyEvent]
	Cues     *events.Queue[events.CueKind]

	Rand     *rand.Rand
	Physics  *systems.PhysicsSystem
	Steering systems.Steering
	Aimer    systems.Aimer
	Sound    audio.Cues
	Metrics  *telemetry.Metrics
	Log      zerolog.Logger

	Camera ecs.EntityID
	Ship   ecs.EntityID
}

var (
	_ game.Scene = (*StartScene)(nil)
	_ game.Scene = (*PlayingScene)(nil)
	_ game.Scene = (*GameOverScene)(nil)
)

// NewWorld builds the world, registers the three scenes and enters Start.
func NewWorld(opts Options) (*World, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultGameConfig()
	}
	if opts.Sound == nil {
		opts.Sound = audio.NopCues{}
	}

	w := &World{
		Config:   opts.Config,
		Entities: ecs.NewEntityManager(),
		State:    game.NewGameState(),
		Scenes:   game.NewSceneManager(logging.Component(opts.Log, "SceneManager")),
		Contacts: events.NewQueue[events.ContactEvent](),
		Effects:  events.NewQueue[events.EffectRequest](),
		Keys:     events.NewQueue[events.KeyEvent](),
		Cues:     events.NewQueue[events.CueKind](),
		Rand:     rand.New(rand.NewSource(opts.Seed)),
		Sound:    opts.Sound,
		Metrics:  opts.Metrics,
		Log:      opts.Log,
	}
	w.Physics = systems.NewPhysicsSystem(w.Entities, w.Config.Physics, w.Contacts)

	cam, err := entities.NewCamera(w.Entities, w.Config)
	if err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}
	w.Camera = cam

	w.Steering, w.Aimer = opts.Steering, opts.Aimer
	if w.Aimer == nil {
		w.Steering, w.Aimer = w.defaultControls(opts.Control)
	}

	w.Scenes.Register(game.StateStart, NewStartScene(w, opts.Control))
	w.Scenes.Register(game.StatePlaying, NewPlayingScene(w))
	w.Scenes.Register(game.StateGameOver, NewGameOverScene(w))
	if err := w.Scenes.Start(game.StateStart); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) defaultControls(control string) (systems.Steering, systems.Aimer) {
	if control == config.ControlPointer {
		rec, _ := w.Entities.Get(w.Camera)
		return nil, &input.Pointer{
			Camera: rec.Camera,
			PlaneZ: w.Config.Ship.Position.Z() + w.Config.Card.Depth,
			Width:  config.GameWindowWidth,
			Height: config.GameWindowHeight,
		}
	}
	return input.Keyboard{}, input.Keyboard{}
}

// Update runs one tick: the current scene, then slot reclamation. Key events
// not consumed by the tick are dropped.
func (w *World) Update(deltaTime float64) error {
	err := w.Scenes.Update(deltaTime)
	w.Entities.RemoveMarkedEntities()
	w.Keys.Clear()
	return err
}

// CameraComponent returns the camera used for drawing and aiming.
func (w *World) CameraComponent() *components.CameraComponent {
	rec, ok := w.Entities.Get(w.Camera)
	if !ok {
		return nil
	}
	return rec.Camera
}

// destroyPrompts removes every overlay of the given kind.
func (w *World) destroyPrompts(kind components.PromptKind) {
	for _, id := range w.Entities.GetEntitiesWith(ecs.HasPrompt) {
		rec, _ := w.Entities.Get(id)
		if rec.Prompt.Kind == kind {
			w.Entities.DestroyEntity(id)
		}
	}
}

// releasedKey drains the key queue and reports whether any key went up.
func (w *World) releasedKey() bool {
	return input.AnyReleased(w.Keys.Drain())
}
