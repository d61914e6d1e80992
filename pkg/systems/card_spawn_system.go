package systems

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/telemetry"
)

// CardSpawnSystem drops a random card from the deck at a fixed interval.
// An empty deck skips the spawn.
type CardSpawnSystem struct {
	em          *ecs.EntityManager
	rng         *rand.Rand
	deck        *game.DeckPool
	origin      mgl64.Vec3
	cfg         config.CardConfig
	accumulator float64
	metrics     *telemetry.Metrics
	log         zerolog.Logger
}

// NewCardSpawnSystem creates the spawner. Cards appear above and in front of
// origin, which is the ship position.
//
// Parameters:
//   - em: entity manager receiving the cards
//   - rng: source for the draw and the horizontal offset
//   - deck: the run's deck pool
//   - origin: ship position
//   - cfg: cadence, drop offsets and card size
//   - metrics: spawn counter, may be nil
//   - log: component logger
func NewCardSpawnSystem(
	em *ecs.EntityManager,
	rng *rand.Rand,
	deck *game.DeckPool,
	origin mgl64.Vec3,
	cfg config.CardConfig,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *CardSpawnSystem {
	return &CardSpawnSystem{
		em:      em,
		rng:     rng,
		deck:    deck,
		origin:  origin,
		cfg:     cfg,
		metrics: metrics,
		log:     log,
	}
}

// Update advances the interval timer and spawns once per elapsed interval.
func (s *CardSpawnSystem) Update(deltaTime float64) error {
	s.accumulator += deltaTime
	for s.accumulator >= s.cfg.SpawnInterval {
		s.accumulator -= s.cfg.SpawnInterval
		if err := s.spawn(); err != nil {
			return err
		}
	}
	return nil
}

func (s *CardSpawnSystem) spawn() error {
	if s.deck.Len() == 0 {
		s.log.Debug().Msg("deck empty, skipping card")
		return nil
	}
	id, err := s.deck.Draw(s.rng)
	if err != nil {
		return err
	}

	pos := s.origin.Add(mgl64.Vec3{
		(s.rng.Float64()*2 - 1) * s.cfg.LimitX,
		s.cfg.DropHeight,
		s.cfg.Depth,
	})
	if _, err := entities.NewCard(s.em, id, pos, s.cfg); err != nil {
		return fmt.Errorf("spawn card %s: %w", id, err)
	}
	s.metrics.CardSpawned()
	s.log.Debug().Str("card", id.String()).Int("deck", s.deck.Len()).Msg("card spawned")
	return nil
}
