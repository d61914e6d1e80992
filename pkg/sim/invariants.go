package sim

import (
	"errors"
	"fmt"

	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/scenes"
	"github.com/gonewx/cardace/pkg/types"
)

// ErrInvariant reports broken run bookkeeping.
var ErrInvariant = errors.New("run invariant violated")

// CheckInvariants verifies the run bookkeeping against the live entities:
//   - every card is in exactly one of the deck, the field or the stack
//   - the projectile counter equals the live projectiles
//   - the cursor equals the number of captured cards, and each captured card
//     is still in the trophy row
func CheckInvariants(w *scenes.World) error {
	run := w.State.Run
	if run == nil {
		return nil
	}

	seen := make(map[types.CardID]string, types.DeckSize)
	mark := func(id types.CardID, where string) error {
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("%w: card %s in both %s and %s", ErrInvariant, id, prev, where)
		}
		seen[id] = where
		return nil
	}

	for _, id := range run.Deck.Cards() {
		if err := mark(id, "deck"); err != nil {
			return err
		}
	}
	for _, id := range fieldCards(w) {
		if err := mark(id, "field"); err != nil {
			return err
		}
	}
	captured := run.Stack.Captured()
	for _, id := range captured {
		if err := mark(id, "stack"); err != nil {
			return err
		}
	}
	if len(seen) != types.DeckSize {
		return fmt.Errorf("%w: %d cards accounted for, want %d", ErrInvariant, len(seen), types.DeckSize)
	}

	if live := len(w.Entities.GetEntitiesWith(ecs.HasProjectile)); live != run.Projectiles.Count() {
		return fmt.Errorf("%w: counter %d, live projectiles %d", ErrInvariant, run.Projectiles.Count(), live)
	}

	if run.Stack.Cursor() != len(captured) {
		return fmt.Errorf("%w: cursor %d, captured %d", ErrInvariant, run.Stack.Cursor(), len(captured))
	}
	trophies := 0
	for _, id := range w.Entities.GetEntitiesWith(ecs.HasCard) {
		rec, _ := w.Entities.Get(id)
		if rec.Card.Captured {
			trophies++
		}
	}
	if trophies != len(captured) {
		return fmt.Errorf("%w: %d trophies for %d captured cards", ErrInvariant, trophies, len(captured))
	}
	return nil
}

// fieldCards lists the uncaptured card entities.
func fieldCards(w *scenes.World) []types.CardID {
	var out []types.CardID
	for _, id := range w.Entities.GetEntitiesWith(ecs.HasCard) {
		rec, _ := w.Entities.Get(id)
		if !rec.Card.Captured {
			out = append(out, rec.Card.ID)
		}
	}
	return out
}
