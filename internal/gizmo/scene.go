package gizmo

import (
	"github.com/Faultbox/sungizmo/internal/engine/camera"
	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/internal/engine/picking"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// Binding marks a light as controlled and drawn by the gizmo.
type Binding struct {
	Color debug.Color
	// Keys must all be held for the light to rotate. An empty set never activates.
	Keys []input.Key
}

// Viewer is the camera surface the projector needs.
type Viewer interface {
	LogicalViewport() (math.Vec2, bool)
	ViewportToWorld(pixel math.Vec2) (picking.Ray, bool)
}

// Scene is the host's entity store as seen by the gizmo.
type Scene interface {
	// SunLights calls fn for every light with a Binding until fn returns false.
	SunLights(fn func(light *lighting.DirectionalLight, binding *Binding) bool)
	// GizmoCamera returns the camera bound to the gizmo, if any.
	GizmoCamera() (Viewer, bool)
}

type boundLight struct {
	light   *lighting.DirectionalLight
	binding Binding
}

// World is a plain-record Scene: a list of bound lights and at most one camera binding.
type World struct {
	lights []boundLight
	camera *camera.Camera
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Bind registers light for gizmo control. Binding the same light again replaces its binding.
func (w *World) Bind(light *lighting.DirectionalLight, binding Binding) {
	for i := range w.lights {
		if w.lights[i].light.ID == light.ID {
			w.lights[i].binding = binding
			return
		}
	}
	w.lights = append(w.lights, boundLight{light: light, binding: binding})
}

// Unbind removes a light from gizmo control. It reports whether the light was bound.
func (w *World) Unbind(id lighting.LightID) bool {
	for i := range w.lights {
		if w.lights[i].light.ID == id {
			w.lights = append(w.lights[:i], w.lights[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of bound lights.
func (w *World) Len() int {
	return len(w.lights)
}

// BindCamera marks cam as the gizmo camera, replacing any previous one.
func (w *World) BindCamera(cam *camera.Camera) {
	w.camera = cam
}

// UnbindCamera removes the camera binding.
func (w *World) UnbindCamera() {
	w.camera = nil
}

// SunLights implements Scene.
func (w *World) SunLights(fn func(*lighting.DirectionalLight, *Binding) bool) {
	for i := range w.lights {
		if !fn(w.lights[i].light, &w.lights[i].binding) {
			return
		}
	}
}

// GizmoCamera implements Scene.
func (w *World) GizmoCamera() (Viewer, bool) {
	if w.camera == nil {
		return nil, false
	}
	return w.camera, true
}
