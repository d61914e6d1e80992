package entities

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
	"github.com/gonewx/cardace/pkg/types"
)

// cardColliderInset narrows the card collider so that grazing shots along
// the side margins of the card face miss.
const cardColliderInset = 0.5

// NewCard creates a falling card.
//
// Parameters:
//   - em: entity manager
//   - id: the card identifier drawn from the deck
//   - position: spawn position in world coordinates
//   - cfg: card size and gravity scale
//
// Returns the entity ID, or an error for a nil manager or an unknown identifier.
func NewCard(em *ecs.EntityManager, id types.CardID, position mgl64.Vec3, cfg config.CardConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, errNilManager
	}
	if _, err := types.ParseCardID(string(id)); err != nil {
		return 0, fmt.Errorf("new card: %w", err)
	}

	entityID := em.CreateEntity()
	rec, _ := em.Get(entityID)
	rec.Transform = components.NewTransform(position)
	rec.Body = &components.BodyComponent{
		Kind:         components.BodyDynamic,
		GravityScale: cfg.GravityScale,
		Mass:         1,
	}
	rec.Collider = &components.ColliderComponent{
		HalfExtents: mgl64.Vec3{
			cfg.Width/2 - cardColliderInset,
			cfg.Width * cfg.Aspect / 2,
			0.4,
		},
		ReportContacts: true,
	}
	rec.Card = &components.CardComponent{ID: id}
	return entityID, nil
}

// CaptureCard freezes a card into the trophy row. It loses its body and
// collider and no longer takes part in physics.
func CaptureCard(rec *ecs.Record, slot mgl64.Vec3) {
	rec.Body = nil
	rec.Collider = nil
	rec.Transform.Position = slot
	rec.Transform.Rotation = mgl64.QuatIdent()
	rec.Card.Captured = true
}
