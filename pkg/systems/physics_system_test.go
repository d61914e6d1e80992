package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/events"
)

func newPhysics(em *ecs.EntityManager) (*PhysicsSystem, *events.Queue[events.ContactEvent]) {
	q := events.NewQueue[events.ContactEvent]()
	return NewPhysicsSystem(em, config.PhysicsConfig{Gravity: -9.81}, q), q
}

func addBox(em *ecs.EntityManager, pos mgl64.Vec3, half mgl64.Vec3, report bool) ecs.EntityID {
	id := em.CreateEntity()
	rec, _ := em.Get(id)
	rec.Transform = components.NewTransform(pos)
	rec.Collider = &components.ColliderComponent{HalfExtents: half, ReportContacts: report}
	return id
}

func TestPhysicsIntegration(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, _ := newPhysics(em)

	falling := em.CreateEntity()
	fr, _ := em.Get(falling)
	fr.Transform = components.NewTransform(mgl64.Vec3{0, 10, 0})
	fr.Body = &components.BodyComponent{Kind: components.BodyDynamic, GravityScale: 0.5}

	flying := em.CreateEntity()
	kr, _ := em.Get(flying)
	kr.Transform = components.NewTransform(mgl64.Vec3{})
	kr.Body = &components.BodyComponent{Kind: components.BodyKinematic, Velocity: mgl64.Vec3{0, 0, -48}}

	sys.Update(0.5)

	assert.InDelta(t, -2.4525, fr.Body.Velocity.Y(), 1e-9)
	assert.InDelta(t, 10-1.22625, fr.Transform.Position.Y(), 1e-9)
	assert.Equal(t, mgl64.Vec3{0, 0, -48}, kr.Body.Velocity)
	assert.InDelta(t, -24, kr.Transform.Position.Z(), 1e-9)
}

func TestPhysicsContactLifecycle(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, q := newPhysics(em)

	card := addBox(em, mgl64.Vec3{0, 0, -10}, mgl64.Vec3{1.1, 1.6, 0.4}, true)
	laser := addBox(em, mgl64.Vec3{0, 0, -9}, mgl64.Vec3{0.05, 0.05, 0.8}, false)

	sys.Update(0)
	got := q.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, events.ContactStarted, got[0].Kind)
	other, ok := got[0].Other(card)
	assert.True(t, ok)
	assert.Equal(t, laser, other)

	sys.Update(0)
	assert.Zero(t, q.Len(), "an ongoing contact is reported once")

	lr, _ := em.Get(laser)
	lr.Transform.Position = mgl64.Vec3{0, 0, 10}
	sys.Update(0)
	got = q.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, events.ContactStopped, got[0].Kind)
}

func TestPhysicsStoppedWhenEntityDies(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, q := newPhysics(em)

	addBox(em, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, true)
	b := addBox(em, mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1, 1, 1}, false)
	sys.Update(0)
	require.Equal(t, 1, q.Len())
	q.Clear()

	em.DestroyEntity(b)
	sys.Update(0)
	got := q.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, events.ContactStopped, got[0].Kind)
}

func TestPhysicsIgnoresSilentPairs(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, q := newPhysics(em)

	addBox(em, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, false)
	addBox(em, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, false)
	sys.Update(0)
	assert.Zero(t, q.Len())
}

func TestPhysicsReset(t *testing.T) {
	em := ecs.NewEntityManager()
	sys, q := newPhysics(em)

	addBox(em, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, true)
	addBox(em, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, false)
	sys.Update(0)
	require.Equal(t, 1, q.Len())
	q.Clear()

	sys.Reset()
	sys.Update(0)
	assert.Equal(t, 1, q.Len(), "overlap is reported again after a reset")
}

func TestEnclosingHalfExtents(t *testing.T) {
	half := mgl64.Vec3{0.05, 0.05, 0.8}

	tests := []struct {
		name string
		rot  mgl64.Quat
		want mgl64.Vec3
	}{
		{"identity", mgl64.QuatIdent(), half},
		{"quarter turn about Y", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{0.8, 0.05, 0.05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enclosingHalfExtents(tt.rot, half)
			assert.InDelta(t, 0, got.Sub(tt.want).Len(), 1e-9, "got %v", got)
		})
	}
}
