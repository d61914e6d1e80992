package components

import "github.com/go-gl/mathgl/mgl64"

// Forward is the local forward axis; entities look down -Z.
var Forward = mgl64.Vec3{0, 0, -1}

// TransformComponent holds the world position and orientation of an entity.
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns an unrotated transform at position.
func NewTransform(position mgl64.Vec3) *TransformComponent {
	return &TransformComponent{Position: position, Rotation: mgl64.QuatIdent()}
}

// Forward returns the world-space direction the entity faces.
func (t *TransformComponent) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(Forward)
}

// EulerYXZ composes a rotation of yaw about Y, then pitch about X, then roll
// about Z, applied to vectors in Z, X, Y order.
func EulerYXZ(yaw, pitch, roll float64) mgl64.Quat {
	qy := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
	qx := mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(roll, mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}
