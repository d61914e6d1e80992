package components

import "github.com/go-gl/mathgl/mgl64"

// ColliderComponent is an oriented box collider centred on the entity transform.
// The physics stepper only reports contacts for pairs where at least one
// collider has ReportContacts set.
type ColliderComponent struct {
	HalfExtents    mgl64.Vec3 // half size along the local axes
	ReportContacts bool       // emit contact started/stopped events
}

// NewBoxCollider builds a collider from full box dimensions.
func NewBoxCollider(width, height, depth float64, report bool) *ColliderComponent {
	return &ColliderComponent{
		HalfExtents:    mgl64.Vec3{width / 2, height / 2, depth / 2},
		ReportContacts: report,
	}
}
