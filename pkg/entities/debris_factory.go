package entities

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
)

// NewDebrisBurst spawns one debris piece per cell of the configured grid
// around center. Each piece gets a small random sideways impulse and a fixed
// lift, and expires when its lifetime timer finishes.
//
// Parameters:
//   - em: entity manager
//   - rng: source for the sideways impulses
//   - center: hit position in world coordinates
//   - cfg: grid, piece size, mass, impulse and lifetime
//
// Returns the IDs of the pieces in grid order, or an error for a nil manager.
func NewDebrisBurst(em *ecs.EntityManager, rng *rand.Rand, center mgl64.Vec3, cfg config.EffectConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, errNilManager
	}

	ids := make([]ecs.EntityID, 0, cfg.DebrisPerBurst())
	for x := cfg.GridMin[0]; x < cfg.GridMax[0]; x++ {
		for y := cfg.GridMin[1]; y < cfg.GridMax[1]; y++ {
			for z := cfg.GridMin[2]; z < cfg.GridMax[2]; z++ {
				offset := mgl64.Vec3{float64(x), float64(y), float64(z)}.Mul(cfg.Size)

				id := em.CreateEntity()
				rec, _ := em.Get(id)
				rec.Transform = components.NewTransform(center.Add(offset))
				rec.Body = &components.BodyComponent{
					Kind:         components.BodyDynamic,
					GravityScale: 1,
					Mass:         cfg.Mass,
				}
				rec.Body.ApplyImpulse(mgl64.Vec3{
					spread(rng, cfg.Impulse),
					cfg.Lift,
					spread(rng, cfg.Impulse),
				})
				rec.Effect = &components.EffectComponent{
					Lifetime: components.NewTimer("effect_lifetime", cfg.Lifetime),
				}
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

// spread returns a uniform value in [-limit, limit).
func spread(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}
