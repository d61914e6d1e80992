package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cardace/pkg/components"
	"github.com/gonewx/cardace/pkg/ecs"
)

// Pointer is the click-to-fire control scheme. A left click or a tap casts a ray from
// the camera through the cursor onto the plane z = PlaneZ, turns the ship
// towards the hit point and fires.
type Pointer struct {
	Camera *components.CameraComponent
	PlaneZ float64
	Width  int
	Height int
}

// Aim handles a click or tap of the current tick.
func (p *Pointer) Aim(ship *ecs.Record) bool {
	ok, x, y := justTapped()
	if !ok {
		return false
	}
	return p.AimAt(ship, float64(x), float64(y))
}

// justTapped reports a new touch or left click and where it happened.
// Touches win over the mouse.
func justTapped() (bool, int, int) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return true, x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// AimAt turns the ship towards the point under screen pixel (sx, sy).
// It reports false, leaving the ship as it was, when the ray misses the plane.
func (p *Pointer) AimAt(ship *ecs.Record, sx, sy float64) bool {
	if p.Camera == nil || ship == nil || ship.Transform == nil {
		return false
	}
	origin, dir, err := p.Camera.Ray(sx, sy, p.Width, p.Height)
	if err != nil {
		return false
	}
	hit, ok := IntersectPlaneZ(origin, dir, p.PlaneZ)
	if !ok {
		return false
	}
	return OrientTowards(ship, hit)
}

// IntersectPlaneZ intersects a ray with the plane z = planeZ.
// Rays parallel to the plane or pointing away from it miss.
func IntersectPlaneZ(origin, dir mgl64.Vec3, planeZ float64) (mgl64.Vec3, bool) {
	if math.Abs(dir.Z()) < 1e-9 {
		return mgl64.Vec3{}, false
	}
	t := (planeZ - origin.Z()) / dir.Z()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// OrientTowards points the ship's forward axis at target, without roll.
func OrientTowards(ship *ecs.Record, target mgl64.Vec3) bool {
	d := target.Sub(ship.Transform.Position)
	if d.Len() < 1e-9 {
		return false
	}
	d = d.Normalize()

	yaw := math.Atan2(-d.X(), -d.Z())
	pitch := math.Asin(mgl64.Clamp(d.Y(), -1, 1))
	ship.Transform.Rotation = components.EulerYXZ(yaw, pitch, 0)
	if ship.Ship != nil {
		ship.Ship.Yaw = yaw
		ship.Ship.Pitch = pitch
	}
	return true
}
