// Package picking provides screen-to-world ray casting.
package picking

import (
	gomath "math"

	"github.com/Faultbox/sungizmo/pkg/math"
)

// minW guards the perspective divide against points on the camera plane.
const minW = 1e-7

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// PointAt returns Origin + Direction*t.
func (r Ray) PointAt(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts a viewport pixel to a world-space ray.
// screen is in pixels with (0,0) at the top-left, viewport is the viewport size in pixels.
// viewProj is the camera view-projection matrix (OpenGL clip space).
// ok is false when the viewport is empty or the projection cannot be inverted.
func ScreenToRay(screen, viewport math.Vec2, viewProj math.Mat4) (Ray, bool) {
	if viewport.X <= 0 || viewport.Y <= 0 {
		return Ray{}, false
	}
	invViewProj, ok := viewProj.InverseOK()
	if !ok {
		return Ray{}, false
	}

	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screen.X/viewport.X - 1.0
	ndcY := 1.0 - 2.0*screen.Y/viewport.Y // Flip Y

	near, ok := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1.0, 1.0})
	if !ok {
		return Ray{}, false
	}
	far, ok := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1.0, 1.0})
	if !ok {
		return Ray{}, false
	}

	dir := far.Sub(near)
	if dir.Length() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, true
}

func unproject(invViewProj math.Mat4, ndc math.Vec4) (math.Vec3, bool) {
	p := invViewProj.MulVec4(ndc)
	if gomath.Abs(float64(p[3])) < minW {
		return math.Vec3{}, false
	}
	v := math.Vec3{X: p[0] / p[3], Y: p[1] / p[3], Z: p[2] / p[3]}
	if !v.IsFinite() {
		return math.Vec3{}, false
	}
	return v, true
}
