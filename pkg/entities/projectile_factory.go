package entities

import (
	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
)

// NewProjectile creates a laser shot at the ship transform, flying along the
// ship's forward vector. The box collider is oriented with the shot.
//
// Parameters:
//   - em: entity manager
//   - ship: transform the shot starts from
//   - cfg: speed and collider size
//
// Returns the entity ID, or an error for a nil manager.
func NewProjectile(em *ecs.EntityManager, ship *components.TransformComponent, cfg config.LaserConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, errNilManager
	}

	id := em.CreateEntity()
	rec, _ := em.Get(id)
	rec.Transform = &components.TransformComponent{
		Position: ship.Position,
		Rotation: ship.Rotation,
	}
	rec.Body = &components.BodyComponent{
		Kind:     components.BodyKinematic,
		Velocity: ship.Forward().Mul(cfg.Speed),
	}
	rec.Collider = components.NewBoxCollider(cfg.Size[0], cfg.Size[1], cfg.Size[2], false)
	rec.Projectile = &components.ProjectileComponent{Speed: cfg.Speed}
	return id, nil
}
