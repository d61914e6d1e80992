package game

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/cardace/pkg/types"
)

// DeckPool is the talon: the card identifiers not currently in play.
//
// Together with the cards on the play field it always holds each of the 52
// identifiers exactly once. Draw removes, Return puts back.
type DeckPool struct {
	cards []types.CardID
	index map[types.CardID]int
}

// NewDeckPool returns a full pool in deck order.
func NewDeckPool() *DeckPool {
	all := types.AllCards()
	d := &DeckPool{
		cards: all,
		index: make(map[types.CardID]int, len(all)),
	}
	for i, id := range all {
		d.index[id] = i
	}
	return d
}

// Len returns the number of cards available to draw.
func (d *DeckPool) Len() int {
	return len(d.cards)
}

// Contains reports whether id is in the pool.
func (d *DeckPool) Contains(id types.CardID) bool {
	_, ok := d.index[id]
	return ok
}

// Cards returns a copy of the pool contents.
func (d *DeckPool) Cards() []types.CardID {
	out := make([]types.CardID, len(d.cards))
	copy(out, d.cards)
	return out
}

// Draw removes and returns a uniformly random card.
func (d *DeckPool) Draw(rng *rand.Rand) (types.CardID, error) {
	if len(d.cards) == 0 {
		return "", ErrDeckEmpty
	}
	i := rng.Intn(len(d.cards))
	id := d.cards[i]

	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.index[d.cards[i]] = i
	d.cards = d.cards[:last]
	delete(d.index, id)
	return id, nil
}

// Return puts a card back into the pool.
func (d *DeckPool) Return(id types.CardID) error {
	if !types.IsKnown(id) {
		return fmt.Errorf("return %q: %w", id, ErrUnknownCard)
	}
	if d.Contains(id) {
		return fmt.Errorf("return %q: %w", id, ErrDuplicateCard)
	}
	d.index[id] = len(d.cards)
	d.cards = append(d.cards, id)
	return nil
}
