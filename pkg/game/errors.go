package game

import "errors"

// Invariant violations. They mean a caller broke a contract and the run state
// can no longer be trusted, so they propagate out of the tick.
var (
	// ErrDeckEmpty is returned when drawing from an empty deck pool.
	ErrDeckEmpty = errors.New("deck pool is empty")
	// ErrDuplicateCard is returned when a card already in the pool is returned again.
	ErrDuplicateCard = errors.New("card is already in the deck pool")
	// ErrUnknownCard is returned for identifiers outside the 52-card universe.
	ErrUnknownCard = errors.New("card is not part of the deck")
	// ErrNoCapturedCard is returned when a rollback finds no captured card.
	ErrNoCapturedCard = errors.New("no captured card to roll back")
	// ErrRunComplete is returned when a hit is resolved after the last rank.
	ErrRunComplete = errors.New("run is already complete")
	// ErrCounterUnderflow is returned when more projectiles are released than admitted.
	ErrCounterUnderflow = errors.New("projectile counter underflow")
	// ErrInvalidTransition is returned for a state change outside the run cycle.
	ErrInvalidTransition = errors.New("invalid run state transition")
)
