package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cardace/pkg/components"
)

// setupBenchmarkEntities fills an arena with a mix of cards, lasers and debris,
// roughly what a busy play field holds.
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		rec, _ := em.Get(id)
		rec.Transform = components.NewTransform(mgl64.Vec3{float64(i), 0, 0})
		rec.Body = &components.BodyComponent{}
		switch i % 3 {
		case 0:
			rec.Card = &components.CardComponent{}
			rec.Collider = &components.ColliderComponent{}
		case 1:
			rec.Projectile = &components.ProjectileComponent{}
			rec.Collider = &components.ColliderComponent{}
		default:
			rec.Effect = &components.EffectComponent{}
		}
	}
	return em
}

func BenchmarkGetEntitiesWith(b *testing.B) {
	em := setupBenchmarkEntities(300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(HasCard | HasTransform)
	}
}

func BenchmarkCreateDestroyCycle(b *testing.B) {
	em := NewEntityManager()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := em.CreateEntity()
		em.DestroyEntity(id)
		em.RemoveMarkedEntities()
	}
}
