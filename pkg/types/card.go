// Package types defines the shared card vocabulary.
// It depends on no other package of the module so that every layer can use it.
package types

import (
	"fmt"
	"strings"
)

// Suit is one of the four playing card suits.
type Suit string

const (
	SuitClubs    Suit = "clubs"
	SuitDiamonds Suit = "diamonds"
	SuitHearts   Suit = "hearts"
	SuitSpades   Suit = "spades"
)

// Suits lists the suits in deck order.
var Suits = []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}

// RankCodes lists the rank components used inside card identifiers, lowest first.
// Single digit ranks carry a leading zero so identifiers sort by file name.
var RankCodes = []string{"02", "03", "04", "05", "06", "07", "08", "09", "10", "J", "Q", "K", "A"}

// RankLabels lists the suit-independent rank labels in ascending order.
var RankLabels = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// DeckSize is the number of distinct card identifiers.
const DeckSize = 52

// CardID identifies one of the 52 cards, e.g. "card_hearts_02" or "card_spades_K".
type CardID string

const cardPrefix = "card"

// NewCardID builds the identifier for a suit and rank code.
func NewCardID(suit Suit, rankCode string) CardID {
	return CardID(cardPrefix + "_" + string(suit) + "_" + rankCode)
}

var (
	universe   []CardID
	universeIx map[CardID]int
)

func init() {
	universe = make([]CardID, 0, DeckSize)
	universeIx = make(map[CardID]int, DeckSize)
	for _, s := range Suits {
		for _, r := range RankCodes {
			id := NewCardID(s, r)
			universeIx[id] = len(universe)
			universe = append(universe, id)
		}
	}
}

// AllCards returns a fresh copy of the 52 identifiers in deck order.
func AllCards() []CardID {
	out := make([]CardID, len(universe))
	copy(out, universe)
	return out
}

// IsKnown reports whether id belongs to the card universe.
func IsKnown(id CardID) bool {
	_, ok := universeIx[id]
	return ok
}

// ParseCardID validates s and returns it as a CardID.
func ParseCardID(s string) (CardID, error) {
	id := CardID(s)
	if !IsKnown(id) {
		return "", fmt.Errorf("unknown card identifier %q", s)
	}
	return id, nil
}

// RankLabel returns the rank used for sequence matching.
// It is the component after the last '_' with one leading zero removed,
// so "card_clubs_02" yields "2" and "card_clubs_10" yields "10".
func (id CardID) RankLabel() string {
	s := string(id)
	if i := strings.LastIndex(s, "_"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimPrefix(s, "0")
}

// Suit returns the suit component of the identifier, or "" if it has none.
func (id CardID) Suit() Suit {
	parts := strings.Split(string(id), "_")
	if len(parts) != 3 {
		return ""
	}
	return Suit(parts[1])
}

func (id CardID) String() string {
	return string(id)
}
