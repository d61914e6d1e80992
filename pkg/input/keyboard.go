// Package input adapts ebiten input to the steering and aiming interfaces
// of the game systems, and collects key edges for the state machine.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cardace/pkg/ecs"
)

// Keyboard is the arrow-keys-and-space control scheme.
type Keyboard struct{}

// Axes reads the arrow keys. Left wins over Right and Down over Up.
func (Keyboard) Axes() (horizontal, vertical float64) {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		horizontal = 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		horizontal = -1
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		vertical = -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		vertical = 1
	}
	return horizontal, vertical
}

// Aim fires along the current heading when Space goes down.
func (Keyboard) Aim(ship *ecs.Record) bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
