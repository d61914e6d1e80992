package game

import "github.com/gonewx/cardace/pkg/config"

// ProjectileCounter is the admission gate for laser shots.
type ProjectileCounter struct {
	count int
	cfg   config.LaserConfig
}

// NewProjectileCounter returns a counter at zero.
func NewProjectileCounter(cfg config.LaserConfig) *ProjectileCounter {
	return &ProjectileCounter{cfg: cfg}
}

// Admit counts a new projectile if the cap allows it.
func (c *ProjectileCounter) Admit() bool {
	if !c.cfg.Admits(c.count) {
		return false
	}
	c.count++
	return true
}

// Release uncounts a despawned projectile.
func (c *ProjectileCounter) Release() error {
	if c.count == 0 {
		return ErrCounterUnderflow
	}
	c.count--
	return nil
}

// Count returns the number of live projectiles.
func (c *ProjectileCounter) Count() int {
	return c.count
}
