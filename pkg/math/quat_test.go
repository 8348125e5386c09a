package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func vecNear(a, b Vec3) bool {
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateMatchesMathgl(t *testing.T) {
	axes := []Vec3{Vec3UnitX, Vec3UnitY, Vec3{1, 1, 0}.Normalize(), Vec3{-0.3, 0.8, 0.5}.Normalize()}
	angles := []float32{0, 0.3, float32(math.Pi / 2), 2.5, -1.1}
	v := Vec3{0.2, -0.7, 1.3}

	for _, axis := range axes {
		for _, angle := range angles {
			got := QuatFromAxisAngle(axis, angle).Rotate(v)

			ref := mgl32.QuatRotate(angle, mgl32.Vec3{axis.X, axis.Y, axis.Z}).Rotate(mgl32.Vec3{v.X, v.Y, v.Z})
			want := Vec3{ref[0], ref[1], ref[2]}
			if !vecNear(got, want) {
				t.Errorf("Rotate(axis=%v, angle=%v): got %v, want %v", axis, angle, got, want)
			}
		}
	}
}

func TestQuatMulMatchesMathgl(t *testing.T) {
	a := QuatFromAxisAngle(Vec3UnitX, 0.7)
	b := QuatFromAxisAngle(Vec3UnitY, -1.2)
	got := a.Mul(b)

	ma := mgl32.QuatRotate(0.7, mgl32.Vec3{1, 0, 0})
	mb := mgl32.QuatRotate(-1.2, mgl32.Vec3{0, 1, 0})
	ref := ma.Mul(mb)

	if abs(got.W-ref.W) > eps || abs(got.X-ref.V[0]) > eps || abs(got.Y-ref.V[1]) > eps || abs(got.Z-ref.V[2]) > eps {
		t.Errorf("Mul: got %+v, want %+v", got, ref)
	}
}

func TestQuatBasisVectors(t *testing.T) {
	q := QuatIdentity()
	if q.Forward() != Vec3Forward || q.Up() != Vec3UnitY || q.Right() != Vec3UnitX {
		t.Errorf("identity basis: forward=%v up=%v right=%v", q.Forward(), q.Up(), q.Right())
	}

	// Quarter turn around Y: -Z forward becomes -X.
	q = QuatRotationY(float32(math.Pi / 2))
	if !vecNear(q.Forward(), Vec3{-1, 0, 0}) {
		t.Errorf("forward after +90° yaw: got %v", q.Forward())
	}
}

func TestQuatFromRotationArc(t *testing.T) {
	cases := []struct{ from, to Vec3 }{
		{Vec3UnitY, Vec3UnitX},
		{Vec3UnitY, Vec3UnitZ},
		{Vec3UnitY, Vec3UnitY},
		{Vec3UnitY, Vec3Down},
		{Vec3{1, 2, 3}.Normalize(), Vec3{-2, 0.5, 1}.Normalize()},
	}
	for _, c := range cases {
		got := QuatFromRotationArc(c.from, c.to).Rotate(c.from)
		if !vecNear(got, c.to) {
			t.Errorf("rotation arc %v -> %v rotated to %v", c.from, c.to, got)
		}
	}
}

func TestQuatLookRotation(t *testing.T) {
	dirs := []Vec3{
		{0, 0, -1},
		{1, 0, 0},
		Vec3{0, -5, -5}.Normalize(),
		Vec3{0, 1, 0},
		Vec3{0, -1, 0},
	}
	for _, d := range dirs {
		q := QuatLookRotation(d, Vec3Up)
		if !vecNear(q.Forward(), d) {
			t.Errorf("LookRotation(%v).Forward() = %v", d, q.Forward())
		}
		if abs(q.Right().Dot(q.Forward())) > eps || abs(q.Up().Dot(q.Forward())) > eps {
			t.Errorf("LookRotation(%v) basis not orthogonal", d)
		}
	}
}

func TestQuatRotateAxisIsWorldSpace(t *testing.T) {
	// Tilted light; rotating around world Y must keep the elevation of forward.
	q := QuatLookRotation(Vec3{0, -1, -1}.Normalize(), Vec3Up)
	before := q.Forward()
	after := q.RotateAxis(Vec3UnitY, 1.0).Forward()
	if abs(before.Y-after.Y) > eps {
		t.Errorf("yaw changed elevation: %v -> %v", before.Y, after.Y)
	}
}
