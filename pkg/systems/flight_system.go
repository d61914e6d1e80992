package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/config"
	"github.com/gonewx/cardace/pkg/ecs"
)

// Steering supplies the raw steering axes, each in [-1, 1].
// Positive horizontal turns left, positive vertical pitches up.
type Steering interface {
	Axes() (horizontal, vertical float64)
}

// FlightSystem turns the ship from the steering axes. The axes are smoothed
// towards the raw input, integrated into yaw and pitch and clamped.
type FlightSystem struct {
	em    *ecs.EntityManager
	cfg   config.ShipConfig
	input Steering
}

// NewFlightSystem creates the system. A nil input leaves the ship alone.
func NewFlightSystem(em *ecs.EntityManager, cfg config.ShipConfig, input Steering) *FlightSystem {
	return &FlightSystem{em: em, cfg: cfg, input: input}
}

// Update steers every ship.
func (s *FlightSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	rawH, rawV := s.input.Axes()

	for _, id := range s.em.GetEntitiesWith(ecs.HasTransform | ecs.HasShip) {
		rec, _ := s.em.Get(id)
		ship := rec.Ship

		t := ship.Follow * deltaTime
		h := lerp(ship.CurrentHorizontal, rawH, t)
		v := lerp(ship.CurrentVertical, rawV, t)

		ship.Yaw = mgl64.Clamp(ship.Yaw+h*s.cfg.TurnRate*deltaTime, -s.cfg.MaxAngle, s.cfg.MaxAngle)
		ship.Pitch = mgl64.Clamp(ship.Pitch+v*s.cfg.TurnRate*deltaTime, -s.cfg.MaxAngle, s.cfg.MaxAngle)

		// Yaw doubles as roll so the ship banks into the turn.
		rec.Transform.Rotation = components.EulerYXZ(ship.Yaw, ship.Pitch, ship.Yaw)

		ship.CurrentHorizontal = h
		ship.CurrentVertical = v
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
