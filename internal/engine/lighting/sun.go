// Package lighting provides directional light sources for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/sungizmo/pkg/math"
)

// SunDirection converts longitude/latitude angles in degrees to a unit vector pointing towards the sun.
// Longitude is rotation around Y axis (0-360), latitude is elevation from horizon (-90..90).
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(longitude) * gomath.Pi / 180.0
	latRad := float64(latitude) * gomath.Pi / 180.0

	// Spherical to Cartesian conversion
	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}

// SunAngles is the inverse of SunDirection for a light travelling along forward.
func SunAngles(forward math.Vec3) (longitude, latitude float32) {
	toSun := forward.Neg().Normalize()
	latitude = elevation(toSun.Y)
	longitude = float32(gomath.Atan2(float64(toSun.X), float64(toSun.Z)) * 180 / gomath.Pi)
	if longitude < 0 {
		longitude += 360
	}
	return longitude, latitude
}

// elevation returns asin(y) in degrees. A normalized float32 vector can carry |y| slightly
// above 1, so y is clamped first.
func elevation(y float32) float32 {
	s := gomath.Max(-1, gomath.Min(1, float64(y)))
	return float32(gomath.Asin(s) * 180 / gomath.Pi)
}
