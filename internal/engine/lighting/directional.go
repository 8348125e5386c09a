package lighting

import (
	"github.com/google/uuid"

	"github.com/Faultbox/sungizmo/pkg/math"
)

// LightID identifies a directional light for the lifetime of the scene.
type LightID = uuid.UUID

// DirectionalLight is an infinitely distant light. Only its orientation matters:
// light travels along Rotation.Forward().
type DirectionalLight struct {
	ID          LightID
	Name        string
	Rotation    math.Quat
	Color       [3]float32 // RGB, 0-1
	Illuminance float32    // lux
}

// NewDirectional creates a white light travelling along -Z.
func NewDirectional(name string) *DirectionalLight {
	return &DirectionalLight{
		ID:          uuid.New(),
		Name:        name,
		Rotation:    math.QuatIdentity(),
		Color:       [3]float32{1, 1, 1},
		Illuminance: 10000,
	}
}

// LookingAt orients the light as if placed at position and aimed at target.
func (l *DirectionalLight) LookingAt(position, target math.Vec3) *DirectionalLight {
	l.Rotation = math.QuatLookRotation(target.Sub(position), math.Vec3Up)
	return l
}

// FromAngles orients the light so it comes from the given sun longitude/latitude in degrees.
func (l *DirectionalLight) FromAngles(longitude, latitude float32) *DirectionalLight {
	l.Rotation = math.QuatLookRotation(SunDirection(longitude, latitude).Neg(), math.Vec3Up)
	return l
}

// Direction returns the direction the light travels in.
func (l *DirectionalLight) Direction() math.Vec3 {
	return l.Rotation.Forward()
}
