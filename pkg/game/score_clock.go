package game

import "github.com/gonewx/cardace/pkg/config"

// ScoreClock is the run stopwatch plus the best time of the process lifetime.
// Lower is better: a run is a race to capture all thirteen ranks.
type ScoreClock struct {
	elapsed float64
	best    float64
}

// NewScoreClock returns a stopped clock with the best time at its sentinel.
func NewScoreClock() *ScoreClock {
	return &ScoreClock{best: config.BestTimeSentinel}
}

// Reset zeroes the stopwatch. The best time is kept.
func (c *ScoreClock) Reset() {
	c.elapsed = 0
}

// Tick advances the stopwatch.
func (c *ScoreClock) Tick(deltaTime float64) {
	c.elapsed += deltaTime
}

// Elapsed returns the seconds of the current run.
func (c *ScoreClock) Elapsed() float64 {
	return c.elapsed
}

// Best returns the best run time so far.
func (c *ScoreClock) Best() float64 {
	return c.best
}

// Record keeps the current elapsed time if it beats the best and reports
// whether it did.
func (c *ScoreClock) Record() bool {
	if c.elapsed < c.best {
		c.best = c.elapsed
		return true
	}
	return false
}
