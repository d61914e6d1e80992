package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/cardace/pkg/events"
	"github.com/gonewx/cardace/pkg/game"
	"github.com/gonewx/cardace/pkg/types"
)

var fieldPos = mgl64.Vec3{0, 2, -24}

func TestCollisionSuccessCapturesCard(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	card := w.spawnCard(t, types.SuitHearts, "02", fieldPos)
	laser := w.spawnLaser(t)
	w.hit(laser, card)

	require.NoError(t, sys.Update(1.0/60))

	assert.Equal(t, 1, w.run.Stack.Cursor())
	assert.False(t, w.em.IsAlive(laser))
	assert.Zero(t, w.run.Projectiles.Count())

	rec, ok := w.em.Get(card)
	require.True(t, ok)
	assert.True(t, rec.Card.Captured)
	assert.Nil(t, rec.Body)
	assert.Nil(t, rec.Collider)
	assert.Equal(t, w.cfg.Card.TrophyOrigin, rec.Transform.Position)
	assert.Equal(t, mgl64.Vec3{-14, -12.5, -28}, w.run.Trophies.Next())

	reqs := w.effects.Drain()
	require.Len(t, reqs, 1)
	assert.Equal(t, fieldPos, reqs[0].Position)
	assert.Equal(t, []events.CueKind{events.CueHit}, w.cues.Drain())
	w.assertConserved(t)
}

func TestCollisionFailureRollsBack(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	two := w.spawnCard(t, types.SuitClubs, "02", fieldPos)
	w.hit(w.spawnLaser(t), two)
	require.NoError(t, sys.Update(1.0/60))
	require.Equal(t, 1, w.run.Stack.Cursor())

	five := w.spawnCard(t, types.SuitSpades, "05", fieldPos)
	w.hit(w.spawnLaser(t), five)
	require.NoError(t, sys.Update(1.0/60))

	assert.Zero(t, w.run.Stack.Cursor())
	assert.Empty(t, w.run.Stack.Captured())
	assert.False(t, w.em.IsAlive(two))
	assert.False(t, w.em.IsAlive(five))
	assert.True(t, w.run.Deck.Contains(types.NewCardID(types.SuitClubs, "02")))
	assert.True(t, w.run.Deck.Contains(types.NewCardID(types.SuitSpades, "05")))
	assert.Equal(t, 52, w.run.Deck.Len())
	assert.Zero(t, w.run.Projectiles.Count())
	assert.Len(t, w.effects.Drain(), 2)
	assert.Equal(t, []events.CueKind{events.CueHit, events.CueMiss}, w.cues.Drain())
	w.assertConserved(t)
}

func TestCollisionFailureAtZeroRemovesOnlyStruckCard(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	bystander := w.spawnCard(t, types.SuitHearts, "03", fieldPos.Add(mgl64.Vec3{5, 0, 0}))
	king := w.spawnCard(t, types.SuitDiamonds, "K", fieldPos)
	w.hit(w.spawnLaser(t), king)

	require.NoError(t, sys.Update(1.0/60))

	assert.Zero(t, w.run.Stack.Cursor())
	assert.False(t, w.em.IsAlive(king))
	assert.True(t, w.em.IsAlive(bystander))
	w.assertConserved(t)
}

func TestCollisionSequentialEventsSeeEachOther(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	two := w.spawnCard(t, types.SuitClubs, "02", fieldPos)
	three := w.spawnCard(t, types.SuitClubs, "03", fieldPos.Add(mgl64.Vec3{3, 0, 0}))
	w.hit(w.spawnLaser(t), two)
	w.hit(w.spawnLaser(t), three)

	require.NoError(t, sys.Update(1.0/60))
	assert.Equal(t, 2, w.run.Stack.Cursor())
	assert.Equal(t, []types.CardID{
		types.NewCardID(types.SuitClubs, "02"),
		types.NewCardID(types.SuitClubs, "03"),
	}, w.run.Stack.Captured())
}

func TestCollisionSkipsConsumedEntities(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	a := w.spawnCard(t, types.SuitClubs, "02", fieldPos)
	b := w.spawnCard(t, types.SuitHearts, "02", fieldPos)
	laser := w.spawnLaser(t)
	other := w.spawnLaser(t)
	w.hit(laser, a)
	w.hit(laser, b) // laser already spent
	w.hit(other, a) // card already captured
	w.contacts.Push(events.ContactEvent{Kind: events.ContactStopped, A: other, B: b})
	w.contacts.Push(events.ContactEvent{Kind: events.ContactStarted, A: a, B: b})

	require.NoError(t, sys.Update(1.0/60))

	assert.Equal(t, 1, w.run.Stack.Cursor())
	assert.True(t, w.em.IsAlive(other))
	assert.Equal(t, 1, w.run.Projectiles.Count())
	assert.Len(t, w.effects.Drain(), 1)
	w.assertConserved(t)
}

func TestCollisionAcceptsEitherPairOrder(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	card := w.spawnCard(t, types.SuitSpades, "02", fieldPos)
	laser := w.spawnLaser(t)
	w.contacts.Push(events.ContactEvent{Kind: events.ContactStarted, A: card, B: laser})

	require.NoError(t, sys.Update(1.0/60))
	assert.Equal(t, 1, w.run.Stack.Cursor())
}

func TestCollisionRunCompleteStopsTick(t *testing.T) {
	w := newTestWorld(t)
	sys := w.collisionSystem()

	for _, rank := range types.RankCodes[:12] {
		_, err := w.run.Stack.ResolveHit(types.NewCardID(types.SuitClubs, rank))
		require.NoError(t, err)
	}

	ace := w.spawnCard(t, types.SuitHearts, "A", fieldPos)
	late := w.spawnCard(t, types.SuitSpades, "A", fieldPos)
	lateLaser := w.spawnLaser(t)
	w.hit(w.spawnLaser(t), ace)
	w.hit(lateLaser, late)

	require.NoError(t, sys.Update(1.0/60))

	assert.True(t, w.run.Stack.Complete())
	assert.Equal(t, []game.RunState{game.StateGameOver}, w.states.requests)
	assert.True(t, w.em.IsAlive(lateLaser))
	assert.True(t, w.em.IsAlive(late))
	assert.Zero(t, w.contacts.Len())
}

func TestCollisionInvariantViolations(t *testing.T) {
	t.Run("rollback card missing", func(t *testing.T) {
		w := newTestWorld(t)
		sys := w.collisionSystem()
		_, err := w.run.Stack.ResolveHit(types.NewCardID(types.SuitClubs, "02"))
		require.NoError(t, err)

		card := w.spawnCard(t, types.SuitClubs, "09", fieldPos)
		w.hit(w.spawnLaser(t), card)
		assert.ErrorIs(t, sys.Update(1.0/60), game.ErrNoCapturedCard)
	})

	t.Run("projectile counter underflow", func(t *testing.T) {
		w := newTestWorld(t)
		sys := w.collisionSystem()
		card := w.spawnCard(t, types.SuitClubs, "02", fieldPos)
		laser := w.spawnLaser(t)
		require.NoError(t, w.run.Projectiles.Release())

		w.hit(laser, card)
		assert.ErrorIs(t, sys.Update(1.0/60), game.ErrCounterUnderflow)
	})

	t.Run("struck card already in deck", func(t *testing.T) {
		w := newTestWorld(t)
		sys := w.collisionSystem()
		card := w.spawnCard(t, types.SuitClubs, "07", fieldPos)
		require.NoError(t, w.run.Deck.Return(types.NewCardID(types.SuitClubs, "07")))

		w.hit(w.spawnLaser(t), card)
		assert.ErrorIs(t, sys.Update(1.0/60), game.ErrDuplicateCard)
	})
}
