package systems

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/entities"
	"github.com/gonewx/cardace/pkg/events"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/logging"
	"github.com/gonewx/cardace/pkg/types"
)

// testWorld wires the run resources and queues the systems share.
type testWorld struct {
	cfg      *config.GameConfig
	em       *ecs.EntityManager
	run      *game.RunContext
	rng      *rand.Rand
	contacts *events.Queue[events.ContactEvent]
	effects  *events.Queue[events.EffectRequest]
	cues     *events.Queue[events.CueKind]
	states   *recordingTransitioner
	ship     ecs.EntityID
}

type recordingTransitioner struct {
	requests []game.RunState
}

func (r *recordingTransitioner) RequestTransition(to game.RunState) error {
	r.requests = append(r.requests, to)
	return nil
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	ship, err := entities.NewShip(em, cfg.Ship)
	require.NoError(t, err)

	return &testWorld{
		cfg:      cfg,
		em:       em,
		run:      game.NewRunContext(cfg),
		rng:      rand.New(rand.NewSource(1)),
		contacts: events.NewQueue[events.ContactEvent](),
		effects:  events.NewQueue[events.EffectRequest](),
		cues:     events.NewQueue[events.CueKind](),
		states:   &recordingTransitioner{},
		ship:     ship,
	}
}

func (w *testWorld) collisionSystem() *CollisionSystem {
	return NewCollisionSystem(w.em, w.run, w.contacts, w.effects, w.cues, w.states, nil, logging.Nop())
}

// takeCard removes id from the deck so the test can put it in play.
func (w *testWorld) takeCard(t *testing.T, id types.CardID) {
	t.Helper()
	drawn := make([]types.CardID, 0, w.run.Deck.Len())
	for w.run.Deck.Len() > 0 {
		c, err := w.run.Deck.Draw(w.rng)
		require.NoError(t, err)
		drawn = append(drawn, c)
	}
	for _, c := range drawn {
		if c != id {
			require.NoError(t, w.run.Deck.Return(c))
		}
	}
}

// spawnCard puts a card in play at pos, drawn out of the deck.
func (w *testWorld) spawnCard(t *testing.T, suit types.Suit, rank string, pos mgl64.Vec3) ecs.EntityID {
	t.Helper()
	id := types.NewCardID(suit, rank)
	w.takeCard(t, id)
	eid, err := entities.NewCard(w.em, id, pos, w.cfg.Card)
	require.NoError(t, err)
	return eid
}

// spawnLaser fires an admitted projectile from the ship.
func (w *testWorld) spawnLaser(t *testing.T) ecs.EntityID {
	t.Helper()
	require.True(t, w.run.Projectiles.Admit())
	ship, _ := w.em.Get(w.ship)
	id, err := entities.NewProjectile(w.em, ship.Transform, w.cfg.Laser)
	require.NoError(t, err)
	return id
}

func (w *testWorld) hit(laser, card ecs.EntityID) {
	w.contacts.Push(events.ContactEvent{Kind: events.ContactStarted, A: laser, B: card})
}

// assertConserved checks that every identifier is either in the deck or on
// the field, exactly once.
func (w *testWorld) assertConserved(t *testing.T) {
	t.Helper()
	onField := make(map[types.CardID]int)
	for _, id := range w.em.GetEntitiesWith(ecs.HasCard) {
		rec, _ := w.em.Get(id)
		onField[rec.Card.ID]++
	}
	for id, n := range onField {
		require.Equal(t, 1, n, "%s on field %d times", id, n)
		require.False(t, w.run.Deck.Contains(id), "%s both in deck and on field", id)
	}
	require.Equal(t, types.DeckSize, w.run.Deck.Len()+len(onField))
}
