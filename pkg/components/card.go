package components

import "github.com/gonewx/cardace/pkg/types"

// CardComponent marks a playing card entity.
// A captured card sits in the trophy row and no longer collides.
type CardComponent struct {
	ID       types.CardID
	Captured bool
}
