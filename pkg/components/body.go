package components

import "github.com/go-gl/mathgl/mgl64"

// BodyKind selects how the physics stepper moves a body.
type BodyKind int

const (
	// BodyDynamic bodies are affected by gravity and impulses.
	BodyDynamic BodyKind = iota
	// BodyKinematic bodies move at their velocity and ignore gravity.
	BodyKinematic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	default:
		return "unknown"
	}
}

// BodyComponent is the rigid body state integrated by the physics stepper.
type BodyComponent struct {
	Kind         BodyKind
	Velocity     mgl64.Vec3
	GravityScale float64
	Mass         float64 // kg; zero is treated as 1
}

// ApplyImpulse changes the velocity by impulse / mass.
func (b *BodyComponent) ApplyImpulse(impulse mgl64.Vec3) {
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(1 / m))
}
