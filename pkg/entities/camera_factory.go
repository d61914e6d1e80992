package entities

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
)

// NewCamera creates the fixed camera. It looks at the ship position raised by
// the configured offset and survives every state transition.
//
// Parameters:
//   - em: entity manager
//   - cfg: camera optics, ship position and look offset
//
// Returns the entity ID, or an error for a nil manager.
func NewCamera(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, errNilManager
	}

	id := em.CreateEntity()
	rec, _ := em.Get(id)
	rec.Transform = components.NewTransform(cfg.Camera.Eye)
	rec.Camera = &components.CameraComponent{
		Eye:    cfg.Camera.Eye,
		Target: cfg.Ship.Position.Add(cfg.Camera.LookOffset),
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   cfg.Camera.FovY,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}
	return id, nil
}
