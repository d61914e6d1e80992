package game

import "github.com/gonewx/cardace/pkg/config"

// RunContext bundles the per-run resources. It is built when Playing is
// entered and dropped when GameOver is left; only the Playing systems mutate it.
type RunContext struct {
	Deck        *DeckPool
	Stack       *ProgressStack
	Projectiles *ProjectileCounter
	Trophies    *TrophyRow
}

// NewRunContext returns fresh resources: full deck, empty stack, no
// projectiles, trophy row at its origin.
func NewRunContext(cfg *config.GameConfig) *RunContext {
	return &RunContext{
		Deck:        NewDeckPool(),
		Stack:       NewProgressStack(),
		Projectiles: NewProjectileCounter(cfg.Laser),
		Trophies:    NewTrophyRow(cfg.Card.TrophyOrigin, cfg.Card.TrophyStep),
	}
}
