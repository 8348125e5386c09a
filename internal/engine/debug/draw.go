// Package debug provides immediate-mode debug drawing: lines, arcs and arrows in world space.
package debug

import "github.com/Faultbox/sungizmo/pkg/math"

// Color is a linear RGBA color.
type Color [4]float32

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Common colors.
var (
	White  = Color{1, 1, 1, 1}
	Yellow = Color{1, 1, 0, 1}
	Gray   = Color{0.5, 0.5, 0.5, 1}
)

// Kind identifies a primitive type.
type Kind int

const (
	KindLine Kind = iota
	KindArc
	KindArrow
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindArrow:
		return "arrow"
	}
	return "unknown"
}

// Primitive is one recorded draw call.
// Lines and arrows use From/To; arcs use Angle, Radius, Center and Rotation.
type Primitive struct {
	Kind  Kind
	Color Color

	From, To math.Vec3

	Angle    float32
	Radius   float32
	Center   math.Vec3
	Rotation math.Quat
}

// DrawList records primitives for one frame.
type DrawList struct {
	prims []Primitive
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{prims: make([]Primitive, 0, 64)}
}

// Reset discards all recorded primitives, keeping capacity.
func (d *DrawList) Reset() {
	d.prims = d.prims[:0]
}

// Line records a line segment.
func (d *DrawList) Line(from, to math.Vec3, color Color) {
	d.prims = append(d.prims, Primitive{Kind: KindLine, From: from, To: to, Color: color})
}

// Arrow records a line segment with an arrow head at to.
func (d *DrawList) Arrow(from, to math.Vec3, color Color) {
	d.prims = append(d.prims, Primitive{Kind: KindArrow, From: from, To: to, Color: color})
}

// Arc records an arc of the given angle (radians) and radius.
// The arc lies in the local XZ plane, starts at local +X and sweeps counter-clockwise about +Y;
// rotation and center place it in the world.
func (d *DrawList) Arc(angle, radius float32, center math.Vec3, rotation math.Quat, color Color) {
	d.prims = append(d.prims, Primitive{
		Kind:     KindArc,
		Angle:    angle,
		Radius:   radius,
		Center:   center,
		Rotation: rotation,
		Color:    color,
	})
}

// Primitives returns the recorded primitives in draw order.
func (d *DrawList) Primitives() []Primitive {
	return d.prims
}

// Count returns how many primitives of kind were recorded.
func (d *DrawList) Count(kind Kind) int {
	n := 0
	for _, p := range d.prims {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of recorded primitives.
func (d *DrawList) Len() int {
	return len(d.prims)
}
