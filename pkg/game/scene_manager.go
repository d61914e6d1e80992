package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneManager owns the RunState and the scene registered for each state.
// Only the current scene is updated and drawn.
//
// A transition requested during a tick is applied after the scene's Update
// returns: Exit of the old scene, then Enter of the new one. The first request
// of a tick wins.
type SceneManager struct {
	scenes  map[RunState]Scene
	current RunState
	started bool

	pending    RunState
	hasPending bool

	log zerolog.Logger
}

// NewSceneManager creates a manager with no scenes. Register every state and
// call Start before the first Update.
func NewSceneManager(log zerolog.Logger) *SceneManager {
	return &SceneManager{
		scenes: make(map[RunState]Scene, 3),
		log:    log,
	}
}

// Register binds a scene to a state, replacing any previous binding.
func (sm *SceneManager) Register(state RunState, scene Scene) {
	sm.scenes[state] = scene
}

// Start enters the initial state.
func (sm *SceneManager) Start(initial RunState) error {
	if sm.started {
		return fmt.Errorf("scene manager already started in %s", sm.current)
	}
	scene, ok := sm.scenes[initial]
	if !ok {
		return fmt.Errorf("no scene registered for %s", initial)
	}
	sm.current = initial
	sm.started = true
	sm.log.Info().Stringer("state", initial).Msg("entering initial state")
	return scene.Enter()
}

// Current returns the active state.
func (sm *SceneManager) Current() RunState {
	return sm.current
}

// Pending returns the transition queued for the end of this tick.
func (sm *SceneManager) Pending() (RunState, bool) {
	return sm.pending, sm.hasPending
}

// RequestTransition queues a move to the given state. A request that is not
// a step of the run cycle fails with ErrInvalidTransition. A second request in
// the same tick is ignored.
func (sm *SceneManager) RequestTransition(to RunState) error {
	if !CanTransition(sm.current, to) {
		return fmt.Errorf("%s -> %s: %w", sm.current, to, ErrInvalidTransition)
	}
	if sm.hasPending {
		return nil
	}
	sm.pending = to
	sm.hasPending = true
	return nil
}

// Update runs the current scene and then applies a pending transition.
func (sm *SceneManager) Update(deltaTime float64) error {
	if !sm.started {
		return nil
	}
	if err := sm.scenes[sm.current].Update(deltaTime); err != nil {
		return fmt.Errorf("%s update: %w", sm.current, err)
	}
	if !sm.hasPending {
		return nil
	}
	return sm.apply()
}

func (sm *SceneManager) apply() error {
	from, to := sm.current, sm.pending
	sm.hasPending = false

	next, ok := sm.scenes[to]
	if !ok {
		return fmt.Errorf("no scene registered for %s", to)
	}
	if err := sm.scenes[from].Exit(); err != nil {
		return fmt.Errorf("%s exit: %w", from, err)
	}
	sm.current = to
	sm.log.Info().Stringer("from", from).Stringer("to", to).Msg("state transition")
	if err := next.Enter(); err != nil {
		return fmt.Errorf("%s enter: %w", to, err)
	}
	return nil
}

// Draw renders the current scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if !sm.started {
		return
	}
	sm.scenes[sm.current].Draw(screen)
}
