package components

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraComponent describes the fixed viewpoint used to draw the play field
// and to turn pointer positions into aim rays.
type CameraComponent struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // degrees
	Near   float64
	Far    float64
}

// View returns the world-to-camera matrix.
func (c *CameraComponent) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective matrix for a viewport of width x height.
func (c *CameraComponent) Projection(width, height int) mgl64.Mat4 {
	aspect := float64(width) / math.Max(1, float64(height))
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Project maps a world point to screen pixels (origin top-left).
// ok is false when the point is behind the camera.
func (c *CameraComponent) Project(p mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	clip := c.Projection(width, height).Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-9 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * float64(width)
	y = (1 - ndcY) / 2 * float64(height)
	return x, y, true
}

// Ray returns the world-space ray through screen pixel (sx, sy).
func (c *CameraComponent) Ray(sx, sy float64, width, height int) (origin, dir mgl64.Vec3, err error) {
	view := c.View()
	proj := c.Projection(width, height)
	winY := float64(height) - sy
	near, err := mgl64.UnProject(mgl64.Vec3{sx, winY, 0}, view, proj, 0, 0, width, height)
	if err != nil {
		return origin, dir, fmt.Errorf("unproject near plane: %w", err)
	}
	far, err := mgl64.UnProject(mgl64.Vec3{sx, winY, 1}, view, proj, 0, 0, width, height)
	if err != nil {
		return origin, dir, fmt.Errorf("unproject far plane: %w", err)
	}
	d := far.Sub(near)
	if d.Len() == 0 {
		return origin, dir, fmt.Errorf("degenerate aim ray at (%.1f, %.1f)", sx, sy)
	}
	return near, d.Normalize(), nil
}
