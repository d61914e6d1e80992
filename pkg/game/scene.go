package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the behaviour bound to one RunState.
//
// Enter and Exit run once per transition, Update once per tick while the
// scene is current. An error from any of them is an invariant violation and
// ends the game loop.
type Scene interface {
	Enter() error
	Exit() error
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
}
