package game

import (
	"fmt"

	"github.com/gonewx/cardace/pkg/types"
)

// RunLength is the number of ranks to capture, 2 through Ace.
const RunLength = 13

// HitResult tells whether a struck card matched the next rank.
type HitResult int

const (
	HitSuccess HitResult = iota
	HitFailure
)

func (r HitResult) String() string {
	if r == HitSuccess {
		return "success"
	}
	return "failure"
}

// Outcome describes the effect of one resolved hit on the stack.
type Outcome struct {
	Result HitResult
	Struck types.CardID
	// Rollback is the previously captured card popped by a failure,
	// empty when the cursor was already at zero.
	Rollback types.CardID
	// Cursor is the cursor after the hit.
	Cursor int
	// RunComplete is set by the success that captured the last rank.
	RunComplete bool
}

// ProgressStack is the ordered rank sequence the player must clear.
//
// Invariants: 0 <= cursor <= RunLength and len(captured) == cursor.
type ProgressStack struct {
	targets  []string
	cursor   int
	captured []types.CardID
}

// NewProgressStack returns a stack positioned before rank "2".
func NewProgressStack() *ProgressStack {
	targets := make([]string, len(types.RankLabels))
	copy(targets, types.RankLabels)
	return &ProgressStack{
		targets:  targets,
		captured: make([]types.CardID, 0, RunLength),
	}
}

// Cursor returns the index of the next required rank.
func (s *ProgressStack) Cursor() int {
	return s.cursor
}

// Captured returns a copy of the capture history, oldest first.
func (s *ProgressStack) Captured() []types.CardID {
	out := make([]types.CardID, len(s.captured))
	copy(out, s.captured)
	return out
}

// Next returns the rank label required next; ok is false once complete.
func (s *ProgressStack) Next() (label string, ok bool) {
	if s.Complete() {
		return "", false
	}
	return s.targets[s.cursor], true
}

// Complete reports whether every rank has been captured.
func (s *ProgressStack) Complete() bool {
	return s.cursor >= len(s.targets)
}

// ResolveHit scores a hit on the card id. A matching rank is captured and the
// cursor advances. Otherwise the cursor steps back one rank, popping the most
// recent capture into Outcome.Rollback.
func (s *ProgressStack) ResolveHit(id types.CardID) (Outcome, error) {
	if s.Complete() {
		return Outcome{}, fmt.Errorf("resolve %q: %w", id, ErrRunComplete)
	}

	if id.RankLabel() == s.targets[s.cursor] {
		s.captured = append(s.captured, id)
		s.cursor++
		return Outcome{
			Result:      HitSuccess,
			Struck:      id,
			Cursor:      s.cursor,
			RunComplete: s.Complete(),
		}, nil
	}

	out := Outcome{Result: HitFailure, Struck: id}
	if s.cursor > 0 {
		if len(s.captured) != s.cursor {
			return Outcome{}, fmt.Errorf("rollback at cursor %d with %d captured: %w",
				s.cursor, len(s.captured), ErrNoCapturedCard)
		}
		s.cursor--
		out.Rollback = s.captured[s.cursor]
		s.captured = s.captured[:s.cursor]
	}
	out.Cursor = s.cursor
	return out, nil
}
