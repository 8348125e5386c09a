package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// QuatRotationY creates a rotation of angle radians around +Y.
func QuatRotationY(angle float32) Quat {
	return QuatFromAxisAngle(Vec3UnitY, angle)
}

// QuatFromRotationArc returns the shortest rotation taking unit vector from onto unit vector to.
func QuatFromRotationArc(from, to Vec3) Quat {
	d := from.Dot(to)
	if d > 1-1e-6 {
		return QuatIdentity()
	}
	if d < -1+1e-6 {
		// Opposite vectors: half turn around any axis orthogonal to from.
		axis := Vec3UnitX.Cross(from)
		if axis.Length() < 1e-4 {
			axis = Vec3UnitY.Cross(from)
		}
		return QuatFromAxisAngle(axis.Normalize(), math.Pi)
	}
	c := from.Cross(to)
	return Quat{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}.Normalize()
}

// QuatFromBasis builds a rotation from the orthonormal columns x, y, z of a rotation matrix.
func QuatFromBasis(x, y, z Vec3) Quat {
	m00, m10, m20 := x.X, x.Y, x.Z
	m01, m11, m21 := y.X, y.Y, y.Z
	m02, m12, m22 := z.X, z.Y, z.Z

	trace := m00 + m11 + m22
	var q Quat
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q = Quat{W: s / 4, X: (m21 - m12) / s, Y: (m02 - m20) / s, Z: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := float32(math.Sqrt(float64(1+m00-m11-m22))) * 2
		q = Quat{W: (m21 - m12) / s, X: s / 4, Y: (m01 + m10) / s, Z: (m02 + m20) / s}
	case m11 > m22:
		s := float32(math.Sqrt(float64(1+m11-m00-m22))) * 2
		q = Quat{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: s / 4, Z: (m12 + m21) / s}
	default:
		s := float32(math.Sqrt(float64(1+m22-m00-m11))) * 2
		q = Quat{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: s / 4}
	}
	return q.Normalize()
}

// QuatLookRotation returns the rotation whose forward (-Z) points along dir with +Y as close to up as possible.
// If dir is parallel to up, an alternative up axis is used.
func QuatLookRotation(dir, up Vec3) Quat {
	f := dir.Normalize()
	if f.Length() == 0 {
		return QuatIdentity()
	}
	right := f.Cross(up)
	if right.Length() < 1e-5 {
		right = f.Cross(Vec3UnitZ)
		if right.Length() < 1e-5 {
			right = f.Cross(Vec3UnitX)
		}
	}
	right = right.Normalize()
	u := right.Cross(f)
	return QuatFromBasis(right, u, f.Neg())
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// RotateAxis pre-multiplies a world-space rotation of angle radians around axis.
func (q Quat) RotateAxis(axis Vec3, angle float32) Quat {
	return QuatFromAxisAngle(axis, angle).Mul(q).Normalize()
}

// Forward returns the rotated -Z axis.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3Forward)
}

// Up returns the rotated +Y axis.
func (q Quat) Up() Vec3 {
	return q.Rotate(Vec3UnitY)
}

// Right returns the rotated +X axis.
func (q Quat) Right() Vec3 {
	return q.Rotate(Vec3UnitX)
}
