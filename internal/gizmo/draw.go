package gizmo

import (
	gomath "math"

	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// Painter receives immediate-mode world-space primitives. debug.DrawList implements it.
type Painter interface {
	Arc(angle, radius float32, center math.Vec3, rotation math.Quat, color debug.Color)
	Line(from, to math.Vec3, color debug.Color)
	Arrow(from, to math.Vec3, color debug.Color)
}

// Horizontal reference rings, outermost first.
var (
	ringRadii  = [4]float32{1.0, 0.8, 0.6, 0.4}
	ringAlphas = [4]float32{1.0, 0.4, 0.25, 0.1}
)

// Light arrow span along -forward, in gizmo units.
const (
	lightArrowStart = 1.2
	lightArrowEnd   = 0.2
)

// Orientations of the reference arcs. Arcs are drawn in the local XZ plane, so the rotation
// maps local +Y onto the plane normal.
var (
	horizontalPlane = math.QuatIdentity()
	yzPlane         = math.QuatFromRotationArc(math.Vec3UnitY, math.Vec3UnitX).Mul(math.QuatRotationY(gomath.Pi / 2))
	xyPlane         = math.QuatFromRotationArc(math.Vec3UnitY, math.Vec3UnitZ)
)

// Draw emits the gizmo centered at anchor: reference rings and half-arcs, the axis triad,
// and one arrow with its plane projections per light in scene.
func Draw(p Painter, anchor math.Vec3, unit float32, scene Scene) {
	drawReference(p, anchor, unit)
	scene.SunLights(func(light *lighting.DirectionalLight, b *Binding) bool {
		drawLight(p, anchor, unit, light.Direction(), b.Color)
		return true
	})
}

func drawReference(p Painter, anchor math.Vec3, unit float32) {
	for i, r := range ringRadii {
		p.Arc(2*gomath.Pi, r*unit, anchor, horizontalPlane, YColor.WithAlpha(ringAlphas[i]))
	}
	p.Arc(gomath.Pi, unit, anchor, yzPlane, XColor)
	p.Arc(gomath.Pi, unit, anchor, xyPlane, ZColor)

	p.Arrow(anchor, anchor.Add(math.Vec3UnitX.Scale(unit)), XColor)
	p.Arrow(anchor, anchor.Add(math.Vec3UnitY.Scale(unit)), YColor)
	p.Arrow(anchor, anchor.Add(math.Vec3UnitZ.Scale(unit)), ZColor)
}

// drawLight draws an arrow pointing from where the light comes from towards the anchor,
// plus lines from the arrow start to its projections on the three reference planes.
func drawLight(p Painter, anchor math.Vec3, unit float32, forward math.Vec3, color debug.Color) {
	start := anchor.Sub(forward.Scale(lightArrowStart * unit))
	end := anchor.Sub(forward.Scale(lightArrowEnd * unit))
	p.Arrow(start, end, color)

	for _, proj := range PlaneProjections(anchor, start) {
		p.Line(start, proj.Point, proj.Color)
	}
}

// Projection is a point projected onto one reference plane, with that plane's color.
type Projection struct {
	Point math.Vec3
	Color debug.Color
}

// PlaneProjections returns the orthogonal projections of point onto the horizontal (XZ),
// YZ and XY planes through anchor.
func PlaneProjections(anchor, point math.Vec3) [3]Projection {
	return [3]Projection{
		{Point: math.Vec3{X: point.X, Y: anchor.Y, Z: point.Z}, Color: YColor},
		{Point: math.Vec3{X: anchor.X, Y: point.Y, Z: point.Z}, Color: XColor},
		{Point: math.Vec3{X: point.X, Y: point.Y, Z: anchor.Z}, Color: ZColor},
	}
}
