package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/cardace/pkg/types"
)

func card(suit types.Suit, rank string) types.CardID {
	return types.NewCardID(suit, rank)
}

func TestProgressStackInitial(t *testing.T) {
	s := NewProgressStack()
	assert.Zero(t, s.Cursor())
	assert.Empty(t, s.Captured())
	assert.False(t, s.Complete())

	next, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, "2", next)
}

func TestResolveHitSuccessThenFailure(t *testing.T) {
	s := NewProgressStack()
	two := card(types.SuitHearts, "02")
	five := card(types.SuitClubs, "05")

	out, err := s.ResolveHit(two)
	require.NoError(t, err)
	assert.Equal(t, HitSuccess, out.Result)
	assert.Equal(t, 1, out.Cursor)
	assert.Equal(t, []types.CardID{two}, s.Captured())

	out, err = s.ResolveHit(five)
	require.NoError(t, err)
	assert.Equal(t, HitFailure, out.Result)
	assert.Equal(t, five, out.Struck)
	assert.Equal(t, two, out.Rollback)
	assert.Zero(t, out.Cursor)
	assert.Empty(t, s.Captured())
}

func TestResolveHitFailureAtZero(t *testing.T) {
	s := NewProgressStack()
	out, err := s.ResolveHit(card(types.SuitSpades, "K"))
	require.NoError(t, err)
	assert.Equal(t, HitFailure, out.Result)
	assert.Empty(t, out.Rollback)
	assert.Zero(t, s.Cursor())
}

func TestResolveHitIgnoresSuit(t *testing.T) {
	for _, suit := range types.Suits {
		s := NewProgressStack()
		out, err := s.ResolveHit(card(suit, "02"))
		require.NoError(t, err)
		assert.Equal(t, HitSuccess, out.Result, "suit %s", suit)
	}
}

func TestResolveHitFullRun(t *testing.T) {
	s := NewProgressStack()
	for i, rank := range types.RankCodes {
		out, err := s.ResolveHit(card(types.Suits[i%len(types.Suits)], rank))
		require.NoError(t, err)
		require.Equal(t, HitSuccess, out.Result)
		assert.Equal(t, i == RunLength-1, out.RunComplete, "rank %s", rank)
	}

	assert.True(t, s.Complete())
	assert.Equal(t, RunLength, s.Cursor())
	_, ok := s.Next()
	assert.False(t, ok)

	_, err := s.ResolveHit(card(types.SuitHearts, "02"))
	assert.ErrorIs(t, err, ErrRunComplete)
}

func TestProgressStackInvariantUnderRandomHits(t *testing.T) {
	s := NewProgressStack()
	rng := rand.New(rand.NewSource(99))
	all := types.AllCards()

	for i := 0; i < 5000 && !s.Complete(); i++ {
		before := s.Cursor()
		out, err := s.ResolveHit(all[rng.Intn(len(all))])
		require.NoError(t, err)

		require.Len(t, s.Captured(), s.Cursor())
		require.GreaterOrEqual(t, s.Cursor(), 0)
		require.LessOrEqual(t, s.Cursor(), RunLength)

		switch out.Result {
		case HitSuccess:
			require.Equal(t, before+1, s.Cursor())
		case HitFailure:
			require.Equal(t, max(before-1, 0), s.Cursor())
		}
	}
}
