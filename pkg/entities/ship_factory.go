package entities

import (
	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
)

// NewShip creates the player ship at its fixed position, facing -Z.
//
// Parameters:
//   - em: entity manager
//   - cfg: position and steering smoothing
//
// Returns the entity ID, or an error for a nil manager.
func NewShip(em *ecs.EntityManager, cfg config.ShipConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, errNilManager
	}

	id := em.CreateEntity()
	rec, _ := em.Get(id)
	rec.Transform = components.NewTransform(cfg.Position)
	rec.Ship = &components.ShipComponent{Follow: cfg.Follow}
	return id, nil
}
