// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/sungizmo/internal/engine/picking"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// Camera is a perspective camera with a world transform and a logical viewport.
type Camera struct {
	Position math.Vec3
	Rotation math.Quat

	FovY float32 // radians
	Near float32
	Far  float32

	// Logical viewport size in pixels. Zero means the camera has no active viewport.
	ViewportWidth  float32
	ViewportHeight float32
}

// New creates a camera at position looking at target with +Y up.
func New(position, target math.Vec3) *Camera {
	c := &Camera{
		Position: position,
		FovY:     0.785398, // 45 degrees
		Near:     0.1,
		Far:      1000.0,
	}
	c.LookAt(target)
	return c
}

// LookAt rotates the camera to face target.
func (c *Camera) LookAt(target math.Vec3) {
	c.Rotation = math.QuatLookRotation(target.Sub(c.Position), math.Vec3Up)
}

// SetViewport sets the logical viewport size in pixels.
func (c *Camera) SetViewport(width, height float32) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// LogicalViewport returns the viewport size, or false if the camera has no active viewport.
func (c *Camera) LogicalViewport() (math.Vec2, bool) {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return math.Vec2{}, false
	}
	return math.Vec2{X: c.ViewportWidth, Y: c.ViewportHeight}, true
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Rotation.Forward()), c.Rotation.Up())
}

// ProjectionMatrix returns the perspective projection for the current viewport.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	aspect := float32(1)
	if c.ViewportHeight > 0 {
		aspect = c.ViewportWidth / c.ViewportHeight
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// ViewportToWorld returns the world-space ray through a viewport pixel.
// All rays of a perspective camera pass through its position, so the ray starts there
// rather than on the near plane.
func (c *Camera) ViewportToWorld(pixel math.Vec2) (picking.Ray, bool) {
	viewport, ok := c.LogicalViewport()
	if !ok {
		return picking.Ray{}, false
	}
	ray, ok := picking.ScreenToRay(pixel, viewport, c.ViewProjection())
	if !ok {
		return picking.Ray{}, false
	}
	ray.Origin = c.Position
	return ray, true
}
