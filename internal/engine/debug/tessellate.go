package debug

import (
	gomath "math"

	"github.com/Faultbox/sungizmo/pkg/math"
)

// FloatsPerVertex is the vertex layout produced by Tessellate: x, y, z, r, g, b, a.
const FloatsPerVertex = 7

// ArcSegmentsPerTurn is the number of line segments used for a full circle.
const ArcSegmentsPerTurn = 32

// ArrowTipRatio is the arrow head length relative to the shaft.
const ArrowTipRatio = 0.1

// Tessellate appends GL_LINES vertices for every primitive to dst and returns it.
func (d *DrawList) Tessellate(dst []float32) []float32 {
	for _, p := range d.prims {
		switch p.Kind {
		case KindLine:
			dst = appendSegment(dst, p.From, p.To, p.Color)
		case KindArrow:
			dst = appendArrow(dst, p.From, p.To, p.Color)
		case KindArc:
			dst = appendArc(dst, p)
		}
	}
	return dst
}

// ArcSegments returns the number of segments used for an arc sweeping angle radians.
func ArcSegments(angle float32) int {
	// The tolerance absorbs float32 rounding of π so a half turn is exactly half the segments.
	turns := gomath.Abs(float64(angle)) / (2 * gomath.Pi)
	n := int(gomath.Ceil(float64(ArcSegmentsPerTurn)*turns - 1e-3))
	if n < 1 {
		n = 1
	}
	return n
}

// ArcPoint returns the point at parameter t in [0,1] along an arc primitive.
func ArcPoint(p Primitive, t float32) math.Vec3 {
	a := float64(p.Angle * t)
	// Counter-clockwise about +Y seen from above: +X towards -Z.
	local := math.Vec3{
		X: p.Radius * float32(gomath.Cos(a)),
		Z: -p.Radius * float32(gomath.Sin(a)),
	}
	return p.Center.Add(p.Rotation.Rotate(local))
}

func appendArc(dst []float32, p Primitive) []float32 {
	n := ArcSegments(p.Angle)
	prev := ArcPoint(p, 0)
	for i := 1; i <= n; i++ {
		next := ArcPoint(p, float32(i)/float32(n))
		dst = appendSegment(dst, prev, next, p.Color)
		prev = next
	}
	return dst
}

func appendArrow(dst []float32, from, to math.Vec3, c Color) []float32 {
	dst = appendSegment(dst, from, to, c)

	shaft := to.Sub(from)
	length := shaft.Length()
	if length == 0 {
		return dst
	}
	dir := shaft.Scale(1 / length)
	tip := length * ArrowTipRatio

	// Two perpendicular axes for the four tip lines.
	side := dir.Cross(math.Vec3Up)
	if side.Length() < 1e-4 {
		side = dir.Cross(math.Vec3UnitX)
	}
	side = side.Normalize()
	other := dir.Cross(side)

	back := to.Sub(dir.Scale(tip))
	for _, off := range [4]math.Vec3{side, side.Neg(), other, other.Neg()} {
		dst = appendSegment(dst, to, back.Add(off.Scale(tip)), c)
	}
	return dst
}

func appendSegment(dst []float32, a, b math.Vec3, c Color) []float32 {
	return append(dst,
		a.X, a.Y, a.Z, c[0], c[1], c[2], c[3],
		b.X, b.Y, b.Z, c[0], c[1], c[2], c[3],
	)
}
