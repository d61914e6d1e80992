package systems

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/events"
	"github.com/gonewx/cardace/pkg/telemetry"
)

// EffectSystem turns effect requests into debris bursts and removes debris
// whose lifetime has run out.
type EffectSystem struct {
	em       *ecs.EntityManager
	rng      *rand.Rand
	requests *events.Queue[events.EffectRequest]
	cfg      config.EffectConfig
	metrics  *telemetry.Metrics
}

// NewEffectSystem creates the system.
//
// Parameters:
//   - em: entity manager receiving the debris
//   - rng: source for the debris impulses
//   - requests: burst requests pushed by the collision system
//   - cfg: grid, lifetime and impulse of a burst
//   - metrics: reap counter, may be nil
func NewEffectSystem(
	em *ecs.EntityManager,
	rng *rand.Rand,
	requests *events.Queue[events.EffectRequest],
	cfg config.EffectConfig,
	metrics *telemetry.Metrics,
) *EffectSystem {
	return &EffectSystem{
		em:       em,
		rng:      rng,
		requests: requests,
		cfg:      cfg,
		metrics:  metrics,
	}
}

// Update ages existing debris, then spawns the requested bursts. New debris
// starts ageing on the next tick.
func (s *EffectSystem) Update(deltaTime float64) error {
	expired := 0
	for _, id := range s.em.GetEntitiesWith(ecs.HasEffect) {
		rec, _ := s.em.Get(id)
		if rec.Effect.Lifetime.Tick(deltaTime) {
			s.em.DestroyEntity(id)
			expired++
		}
	}
	s.metrics.Reaped(telemetry.ReapExpired, expired)

	for _, req := range s.requests.Drain() {
		if _, err := entities.NewDebrisBurst(s.em, s.rng, req.Position, s.cfg); err != nil {
			return fmt.Errorf("spawn debris: %w", err)
		}
	}
	return nil
}
