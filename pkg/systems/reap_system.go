package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/telemetry"
)

// ReapSystem removes projectiles that flew too far from the ship and cards
// that fell through the floor, recycling their counter slot or identifier.
type ReapSystem struct {
	em      *ecs.EntityManager
	run     *game.RunContext
	ship    ecs.EntityID
	laser   config.LaserConfig
	card    config.CardConfig
	metrics *telemetry.Metrics
}

// NewReapSystem creates the reaper for one run.
//
// Parameters:
//   - em: entity manager
//   - run: receives released projectiles and returned cards
//   - ship: distances are measured from this entity
//   - cfg: laser range and card floor
//   - metrics: reap counter, may be nil
func NewReapSystem(
	em *ecs.EntityManager,
	run *game.RunContext,
	ship ecs.EntityID,
	cfg *config.GameConfig,
	metrics *telemetry.Metrics,
) *ReapSystem {
	return &ReapSystem{
		em:      em,
		run:     run,
		ship:    ship,
		laser:   cfg.Laser,
		card:    cfg.Card,
		metrics: metrics,
	}
}

// Update reaps projectiles first, then cards.
func (s *ReapSystem) Update(deltaTime float64) error {
	if err := s.reapProjectiles(); err != nil {
		return err
	}
	return s.reapCards()
}

func (s *ReapSystem) reapProjectiles() error {
	shipRec, ok := s.em.Get(s.ship)
	if !ok {
		return nil
	}
	origin := shipRec.Transform.Position

	n := 0
	for _, id := range s.em.GetEntitiesWith(ecs.HasTransform | ecs.HasProjectile) {
		rec, _ := s.em.Get(id)
		if distance(origin, rec.Transform.Position) <= s.laser.MaxDistance {
			continue
		}
		s.em.DestroyEntity(id)
		if err := s.run.Projectiles.Release(); err != nil {
			return fmt.Errorf("reap projectile %d: %w", id, err)
		}
		n++
	}
	s.metrics.Reaped(telemetry.ReapDistance, n)
	return nil
}

func (s *ReapSystem) reapCards() error {
	n := 0
	for _, id := range s.em.GetEntitiesWith(ecs.HasTransform | ecs.HasCard) {
		rec, _ := s.em.Get(id)
		if rec.Card.Captured || rec.Transform.Position.Y() > s.card.FloorY {
			continue
		}
		s.em.DestroyEntity(id)
		if err := s.run.Deck.Return(rec.Card.ID); err != nil {
			return fmt.Errorf("reap card: %w", err)
		}
		n++
	}
	s.metrics.Reaped(telemetry.ReapFloor, n)
	return nil
}

func distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}
