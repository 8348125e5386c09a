package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sungizmo/internal/engine/camera"
	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/pkg/math"
)

const eps = 1e-4

func assertVec3(t *testing.T, want, got math.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

// frontCamera looks down -Z from the origin with an 800x600 viewport.
func frontCamera() *camera.Camera {
	cam := camera.New(math.Vec3{}, math.Vec3{Z: -1})
	cam.SetViewport(800, 600)
	return cam
}

// twoLightWorld returns a world with a sun on LeftAlt+1 and a moon on LeftAlt+2.
func twoLightWorld() (*World, *lighting.DirectionalLight, *lighting.DirectionalLight) {
	sun := lighting.NewDirectional("sun").LookingAt(math.Vec3{Y: 5, Z: 5}, math.Vec3{})
	moon := lighting.NewDirectional("moon").LookingAt(math.Vec3{Y: -5, Z: 5}, math.Vec3{})

	w := NewWorld()
	w.Bind(sun, Binding{Color: DefaultLightColor, Keys: []input.Key{input.KeyLeftAlt, input.Key1}})
	w.Bind(moon, Binding{Color: debug.Color{0.56, 0.75, 1, 1}, Keys: []input.Key{input.KeyLeftAlt, input.Key2}})
	w.BindCamera(frontCamera())
	return w, sun, moon
}

func frameInput(dt float32, dx, dy float32, keys ...input.Key) *input.State {
	in := input.New()
	in.BeginFrame(dt)
	for _, k := range keys {
		in.KeyDown(k)
	}
	in.MouseMotion(dx, dy)
	return in
}

// flatten drops the Y component.
func flatten(v math.Vec3) math.Vec3 {
	return math.Vec3{X: v.X, Z: v.Z}
}
