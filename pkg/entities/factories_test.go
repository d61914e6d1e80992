package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/types"
)

func TestFactoriesRejectNilManager(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ship := components.NewTransform(cfg.Ship.Position)

	_, err := NewCamera(nil, cfg)
	assert.Error(t, err)
	_, err = NewShip(nil, cfg.Ship)
	assert.Error(t, err)
	_, err = NewPrompt(nil, components.PromptTitle, "x")
	assert.Error(t, err)
	_, err = NewCard(nil, types.AllCards()[0], mgl64.Vec3{}, cfg.Card)
	assert.Error(t, err)
	_, err = NewProjectile(nil, ship, cfg.Laser)
	assert.Error(t, err)
	_, err = NewDebrisBurst(nil, rand.New(rand.NewSource(1)), mgl64.Vec3{}, cfg.Effect)
	assert.Error(t, err)
}

func TestNewCard(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	pos := mgl64.Vec3{1, 7, -24}

	id, err := NewCard(em, types.NewCardID(types.SuitHearts, "Q"), pos, cfg.Card)
	require.NoError(t, err)

	rec, ok := em.Get(id)
	require.True(t, ok)
	assert.Equal(t, pos, rec.Transform.Position)
	assert.Equal(t, components.BodyDynamic, rec.Body.Kind)
	assert.InDelta(t, 0.5, rec.Body.GravityScale, 1e-12)
	assert.True(t, rec.Collider.ReportContacts)
	assert.InDelta(t, 1.1, rec.Collider.HalfExtents.X(), 1e-12)
	assert.InDelta(t, 1.6, rec.Collider.HalfExtents.Y(), 1e-12)
	assert.InDelta(t, 0.4, rec.Collider.HalfExtents.Z(), 1e-12)
	assert.Equal(t, "Q", rec.Card.ID.RankLabel())

	_, err = NewCard(em, "card_moons_3", pos, cfg.Card)
	assert.Error(t, err)
}

func TestNewCardRejectsUnknownIdentifier(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	for _, id := range []types.CardID{"", "card_spades_1", "card_stars_A", "spades_A"} {
		_, err := NewCard(em, id, mgl64.Vec3{}, cfg.Card)
		assert.Error(t, err, "identifier %q", id)
	}
	assert.Zero(t, em.Count(), "no entity is created for a rejected identifier")
}

func TestCaptureCard(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	id, err := NewCard(em, types.NewCardID(types.SuitClubs, "02"), mgl64.Vec3{0, 5, -24}, cfg.Card)
	require.NoError(t, err)

	rec, _ := em.Get(id)
	CaptureCard(rec, cfg.Card.TrophyOrigin)

	assert.Nil(t, rec.Body)
	assert.Nil(t, rec.Collider)
	assert.True(t, rec.Card.Captured)
	assert.Equal(t, cfg.Card.TrophyOrigin, rec.Transform.Position)
	assert.Empty(t, em.GetEntitiesWith(ecs.HasCard|ecs.HasCollider))
}

func TestNewProjectileFollowsShip(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name string
		rot  mgl64.Quat
		want mgl64.Vec3
	}{
		{"straight ahead", mgl64.QuatIdent(), mgl64.Vec3{0, 0, -48}},
		{"yawed left", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{-48, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := &components.TransformComponent{Position: cfg.Ship.Position, Rotation: tt.rot}
			id, err := NewProjectile(em, ship, cfg.Laser)
			require.NoError(t, err)

			rec, _ := em.Get(id)
			assert.Equal(t, cfg.Ship.Position, rec.Transform.Position)
			assert.Equal(t, components.BodyKinematic, rec.Body.Kind)
			assert.InDelta(t, 0, rec.Body.Velocity.Sub(tt.want).Len(), 1e-9, "velocity %v", rec.Body.Velocity)
			assert.False(t, rec.Collider.ReportContacts)
			assert.InDelta(t, 0.8, rec.Collider.HalfExtents.Z(), 1e-12)
		})
	}
}

func TestNewDebrisBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	center := mgl64.Vec3{2, 3, -20}

	ids, err := NewDebrisBurst(em, rand.New(rand.NewSource(3)), center, cfg.Effect)
	require.NoError(t, err)
	assert.Len(t, ids, 32)

	for _, id := range ids {
		rec, ok := em.Get(id)
		require.True(t, ok)
		require.NotNil(t, rec.Effect)
		assert.InDelta(t, 2.0, rec.Effect.Lifetime.TargetTime, 1e-12)
		assert.Nil(t, rec.Collider)

		d := rec.Transform.Position.Sub(center)
		assert.LessOrEqual(t, math.Abs(d.X()), 0.2+1e-9)
		assert.GreaterOrEqual(t, d.Y(), -1e-9)

		// lift / mass
		assert.InDelta(t, 10.0, rec.Body.Velocity.Y(), 1e-9)
		assert.LessOrEqual(t, math.Abs(rec.Body.Velocity.X()), 10.0)
	}
}

func TestPrompts(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewPrompt(em, components.PromptGameOver, GameOverText)
	require.NoError(t, err)

	rec, _ := em.Get(id)
	assert.Equal(t, components.PromptGameOver, rec.Prompt.Kind)
	assert.Contains(t, TitleText(config.ControlKeyboard), "space")
	assert.Contains(t, TitleText(config.ControlPointer), "click")
}

func TestNewCameraLooksAtShip(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewCamera(em, cfg)
	require.NoError(t, err)
	rec, _ := em.Get(id)
	assert.Equal(t, mgl64.Vec3{0, 0, -8}, rec.Camera.Target)

	shipID, err := NewShip(em, cfg.Ship)
	require.NoError(t, err)
	ship, _ := em.Get(shipID)
	assert.InDelta(t, 1.6, ship.Ship.Follow, 1e-12)
}
