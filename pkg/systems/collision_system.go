package systems

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/events"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/telemetry"
	"github.com/gonewx/cardace/pkg/types"
)

// Transitioner accepts state change requests.
type Transitioner interface {
	RequestTransition(to game.RunState) error
}

// CollisionSystem resolves projectile hits on cards against the progress
// stack.
//
// Contact events are handled one at a time in arrival order, and each one
// sees the stack as left by the previous one. Only started contacts between a
// live projectile and a live, uncaptured card count; everything else is
// ignored. Once the run completes the rest of the tick's events are dropped.
type CollisionSystem struct {
	em       *ecs.EntityManager
	run      *game.RunContext
	contacts *events.Queue[events.ContactEvent]
	effects  *events.Queue[events.EffectRequest]
	cues     *events.Queue[events.CueKind]
	states   Transitioner
	metrics  *telemetry.Metrics
	log      zerolog.Logger
}

// NewCollisionSystem creates the system for one run.
//
// Parameters:
//   - em: entity manager holding projectiles and cards
//   - run: deck, stack, projectile counter and trophy row of the run
//   - contacts: contact events from the physics stepper
//   - effects: receives a burst request per resolved hit
//   - cues: receives a hit or miss cue per resolved hit
//   - states: asked for GameOver when the run completes
//   - metrics: hit counter, may be nil
//   - log: component logger
func NewCollisionSystem(
	em *ecs.EntityManager,
	run *game.RunContext,
	contacts *events.Queue[events.ContactEvent],
	effects *events.Queue[events.EffectRequest],
	cues *events.Queue[events.CueKind],
	states Transitioner,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *CollisionSystem {
	return &CollisionSystem{
		em:       em,
		run:      run,
		contacts: contacts,
		effects:  effects,
		cues:     cues,
		states:   states,
		metrics:  metrics,
		log:      log,
	}
}

// Update drains the contact queue.
func (s *CollisionSystem) Update(deltaTime float64) error {
	for _, e := range s.contacts.Drain() {
		if s.run.Stack.Complete() {
			break
		}
		if e.Kind != events.ContactStarted {
			continue
		}
		laser, card, ok := s.classify(e)
		if !ok {
			continue
		}
		if err := s.resolve(laser, card); err != nil {
			return err
		}
	}
	return nil
}

// classify picks the projectile and the card out of a contact pair.
func (s *CollisionSystem) classify(e events.ContactEvent) (laser, card *ecs.Record, ok bool) {
	for _, id := range [2]ecs.EntityID{e.A, e.B} {
		rec, live := s.em.Get(id)
		if !live || rec.Projectile == nil {
			continue
		}
		other, _ := e.Other(id)
		target, live := s.em.Get(other)
		if !live || target.Card == nil || target.Card.Captured {
			return nil, nil, false
		}
		return rec, target, true
	}
	return nil, nil, false
}

func (s *CollisionSystem) resolve(laser, card *ecs.Record) error {
	s.effects.Push(events.EffectRequest{Position: card.Transform.Position})

	s.em.DestroyEntity(laser.ID)
	if err := s.run.Projectiles.Release(); err != nil {
		return fmt.Errorf("release projectile %d: %w", laser.ID, err)
	}

	out, err := s.run.Stack.ResolveHit(card.Card.ID)
	if err != nil {
		return err
	}
	s.metrics.Hit(out.Result.String(), out.Rollback != "")

	if out.Result == game.HitSuccess {
		entities.CaptureCard(card, s.run.Trophies.Place())
		s.cues.Push(events.CueHit)
		s.log.Debug().Str("card", card.Card.ID.String()).Int("cursor", out.Cursor).Msg("card captured")

		if out.RunComplete {
			s.log.Info().Msg("run complete")
			return s.states.RequestTransition(game.StateGameOver)
		}
		return nil
	}

	s.cues.Push(events.CueMiss)
	if err := s.discard(card); err != nil {
		return err
	}
	if out.Rollback == "" {
		return nil
	}

	captured, ok := s.findCard(out.Rollback)
	if !ok {
		return fmt.Errorf("roll back %s: %w", out.Rollback, game.ErrNoCapturedCard)
	}
	s.log.Debug().Str("struck", out.Struck.String()).Str("rollback", out.Rollback.String()).
		Int("cursor", out.Cursor).Msg("wrong card, rolled back")
	return s.discard(captured)
}

// discard removes a card from the field and returns it to the deck.
func (s *CollisionSystem) discard(card *ecs.Record) error {
	s.em.DestroyEntity(card.ID)
	return s.run.Deck.Return(card.Card.ID)
}

func (s *CollisionSystem) findCard(id types.CardID) (*ecs.Record, bool) {
	for _, eid := range s.em.GetEntitiesWith(ecs.HasCard) {
		rec, _ := s.em.Get(eid)
		if rec.Card.ID == id {
			return rec, true
		}
	}
	return nil, false
}
