package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/pkg/math"
)

func TestSystemTwoLightsDisjointGestures(t *testing.T) {
	w, sun, moon := twoLightWorld()
	moonBefore := moon.Rotation
	sunBefore := sun.Rotation

	s := NewSystem(DefaultConfig(), nil)
	list := debug.NewDrawList()

	res := s.Frame(w, frameInput(0.1, 30, -10, input.KeyLeftAlt, input.Key1), list)

	assert.True(t, res.Rotated)
	assert.True(t, res.Drawn)
	assert.NotEqual(t, sunBefore, sun.Rotation)
	assert.Equal(t, moonBefore, moon.Rotation)

	// both bound lights are drawn even though only one rotated
	assert.Equal(t, 3+2, list.Count(debug.KindArrow))
	assert.Equal(t, 6, list.Count(debug.KindLine))
}

func TestSystemIdleThenHide(t *testing.T) {
	w, _, _ := twoLightWorld()
	cfg := DefaultConfig()
	cfg.PersistTime = 0.5
	s := NewSystem(cfg, nil)
	list := debug.NewDrawList()

	res := s.Frame(w, frameInput(0.1, 0, 0), list)
	assert.False(t, res.Drawn, "hidden before any gesture")

	res = s.Frame(w, frameInput(0.1, 5, 0, input.KeyLeftAlt, input.Key2), list)
	assert.True(t, res.Drawn)

	for i := 0; i < 10; i++ {
		list.Reset()
		res = s.Frame(w, frameInput(0.1, 0, 0), list)
	}
	assert.False(t, res.Rotated)
	assert.False(t, res.Drawn)
	assert.Zero(t, list.Len())
}

func TestSystemUpdateThenDraw(t *testing.T) {
	w, _, _ := twoLightWorld()
	s := NewSystem(DefaultConfig(), nil)
	list := debug.NewDrawList()

	dirty := s.Update(w, frameInput(0.016, 1, 1, input.KeyLeftAlt, input.Key1))
	assert.True(t, dirty)

	anchor, drawn := s.Draw(w, dirty, 0.016, list)
	assert.True(t, drawn)
	assert.InDelta(t, 10, anchor.Length(), 1e-3)
	assert.Equal(t, s.Config().PersistTime-0.016, s.Projector().Timer().Remaining())
}

func TestWorldBindReplaces(t *testing.T) {
	light := lighting.NewDirectional("sun")
	w := NewWorld()
	w.Bind(light, Binding{Color: DefaultLightColor, Keys: []input.Key{input.KeyL}})
	w.Bind(light, Binding{Color: XColor})
	assert.Equal(t, 1, w.Len())

	w.SunLights(func(_ *lighting.DirectionalLight, b *Binding) bool {
		assert.Equal(t, XColor, b.Color)
		assert.Empty(t, b.Keys)
		return true
	})

	assert.True(t, w.Unbind(light.ID))
	assert.False(t, w.Unbind(light.ID))
	assert.Zero(t, w.Len())
}

func TestWorldSunLightsStopsEarly(t *testing.T) {
	w, _, _ := twoLightWorld()
	visited := 0
	w.SunLights(func(*lighting.DirectionalLight, *Binding) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestWorldGizmoCamera(t *testing.T) {
	w := NewWorld()
	_, ok := w.GizmoCamera()
	assert.False(t, ok)

	cam := frontCamera()
	w.BindCamera(cam)
	v, ok := w.GizmoCamera()
	assert.True(t, ok)
	size, ok := v.LogicalViewport()
	assert.True(t, ok)
	assert.Equal(t, math.Vec2{X: 800, Y: 600}, size)
}
