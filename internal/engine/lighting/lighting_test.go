package lighting

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sungizmo/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"horizon south", 0, 0, math.Vec3{Z: 1}},
		{"horizon east", 90, 0, math.Vec3{X: 1}},
		{"zenith", 0, 90, math.Vec3{Y: 1}},
		{"nadir", 0, -90, math.Vec3{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			assert.InDelta(t, tt.want.X, got.X, 1e-5)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-5)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-5)
		})
	}
}

func TestSunAnglesRoundTrip(t *testing.T) {
	l := NewDirectional("sun").FromAngles(135, 40)
	lon, lat := SunAngles(l.Direction())
	assert.InDelta(t, 135, lon, 1e-2)
	assert.InDelta(t, 40, lat, 1e-2)
}

func TestSunAnglesAtPoles(t *testing.T) {
	for _, forward := range []math.Vec3{
		{Y: -1},
		{Y: 1},
		{Y: -3},
		{X: 1e-7, Y: -1},
		{Y: 0.9999999, Z: 1e-6},
	} {
		lon, lat := SunAngles(forward)
		assert.False(t, gomath.IsNaN(float64(lat)), "forward=%v", forward)
		assert.False(t, gomath.IsNaN(float64(lon)), "forward=%v", forward)
		assert.InDelta(t, 90, gomath.Abs(float64(lat)), 1e-1, "forward=%v", forward)
	}
}

func TestElevationClampsRoundingError(t *testing.T) {
	above := gomath.Nextafter32(1, 2)
	assert.Equal(t, float32(90), elevation(above))
	assert.Equal(t, float32(-90), elevation(-above))
	assert.InDelta(t, 30, elevation(0.5), 1e-4)
}

func TestLookingAt(t *testing.T) {
	l := NewDirectional("sun").LookingAt(math.Vec3{Y: 5, Z: 5}, math.Vec3{})
	want := math.Vec3{Y: -1, Z: -1}.Normalize()
	got := l.Direction()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func TestNewDirectionalHasUniqueIDs(t *testing.T) {
	a := NewDirectional("a")
	b := NewDirectional("b")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, math.QuatIdentity(), a.Rotation)
}
