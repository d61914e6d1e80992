package systems

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/telemetry"
)

// Aimer is the input side of firing. Aim is called once per tick with the
// ship; it may turn the ship towards a target and reports whether a shot was
// requested along the ship's forward vector.
type Aimer interface {
	Aim(ship *ecs.Record) bool
}

// LaunchSystem admits fire requests against the projectile cap and spawns
// the projectiles.
type LaunchSystem struct {
	em      *ecs.EntityManager
	ship    ecs.EntityID
	aimer   Aimer
	counter *game.ProjectileCounter
	cfg     config.LaserConfig
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

// NewLaunchSystem creates the system for one run.
//
// Parameters:
//   - em: entity manager receiving the projectiles
//   - ship: the firing ship
//   - aimer: fire input; nil never fires
//   - counter: the run's projectile counter
//   - cfg: projectile cap, speed and size
//   - metrics: shot counter, may be nil
//   - log: component logger
func NewLaunchSystem(
	em *ecs.EntityManager,
	ship ecs.EntityID,
	aimer Aimer,
	counter *game.ProjectileCounter,
	cfg config.LaserConfig,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *LaunchSystem {
	return &LaunchSystem{
		em:      em,
		ship:    ship,
		aimer:   aimer,
		counter: counter,
		cfg:     cfg,
		metrics: metrics,
		log:     log,
	}
}

// Update handles at most one fire request.
func (s *LaunchSystem) Update(deltaTime float64) error {
	rec, ok := s.em.Get(s.ship)
	if !ok || s.aimer == nil {
		return nil
	}
	if !s.aimer.Aim(rec) {
		return nil
	}

	if !s.counter.Admit() {
		s.metrics.Shot(false)
		s.log.Debug().Int("live", s.counter.Count()).Msg("fire rejected at cap")
		return nil
	}
	if _, err := entities.NewProjectile(s.em, rec.Transform, s.cfg); err != nil {
		return fmt.Errorf("spawn projectile: %w", err)
	}
	s.metrics.Shot(true)
	return nil
}
