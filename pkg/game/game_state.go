package game

import "github.com/gonewx/cardace/pkg/config"

// GameState holds the state shared by the scenes: the score clock, which
// lives for the whole process, and the run context, which exists only
// between Playing entry and GameOver exit.
type GameState struct {
	Score *ScoreClock
	Board Scoreboard

	// Run is nil outside a run.
	Run *RunContext
}

// NewGameState returns a state with no active run.
func NewGameState() *GameState {
	return &GameState{Score: NewScoreClock()}
}

// BeginRun resets the clock and creates fresh per-run resources.
func (gs *GameState) BeginRun(cfg *config.GameConfig) *RunContext {
	gs.Score.Reset()
	gs.Run = NewRunContext(cfg)
	gs.Board.Refresh(gs.Score, gs.Run.Stack)
	return gs.Run
}

// FinishRun records the elapsed time as best if it improves on it.
func (gs *GameState) FinishRun() bool {
	return gs.Score.Record()
}

// EndRun drops the per-run resources.
func (gs *GameState) EndRun() {
	gs.Run = nil
}

// InRun reports whether per-run resources exist.
func (gs *GameState) InRun() bool {
	return gs.Run != nil
}
