package game

// RunState is the top-level state of the game loop.
type RunState int

const (
	StateStart RunState = iota
	StatePlaying
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Next returns the only state s may move to.
func (s RunState) Next() RunState {
	switch s {
	case StateStart:
		return StatePlaying
	case StatePlaying:
		return StateGameOver
	default:
		return StateStart
	}
}

// CanTransition reports whether from -> to is a step of the run cycle.
func CanTransition(from, to RunState) bool {
	switch from {
	case StateStart, StatePlaying, StateGameOver:
		return from.Next() == to
	}
	return false
}
