package gizmo

import (
	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// Axis colors shared by the reference planes, arcs and projection lines.
var (
	XColor = debug.Color{1, 0.4, 0.4, 1}
	YColor = debug.Color{0.4, 1, 0.4, 1}
	ZColor = debug.Color{0.4, 0.4, 1, 1}
)

// DefaultLightColor is used for lights bound without an explicit color.
var DefaultLightColor = debug.Yellow

// Config is the process-wide gizmo configuration. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	// Anchor is the gizmo center in normalized screen space: (0,0) top-left, (1,1) bottom-right.
	Anchor math.Vec2
	// Size is the on-screen size. The gizmo is placed 1/Size world units in front of the camera.
	Size float32
	// PersistTime is how long in seconds the gizmo stays visible after the last rotation.
	PersistTime float32
	// Sensitivity scales raw mouse motion before it is turned into radians per second.
	Sensitivity float32
	// LineWidth is the width in pixels used by the renderer.
	LineWidth float32
	// UnitScale scales every radius and arrow length of the gizmo geometry.
	UnitScale float32
	// DepthBias is handed to the renderer so the gizmo is drawn over scene geometry.
	DepthBias float32
	// KeyBindings is the gesture used by lights that do not bring their own.
	KeyBindings []input.Key
}

// DefaultConfig returns the default gizmo configuration.
func DefaultConfig() Config {
	return Config{
		Anchor:      math.Vec2{X: 0.7, Y: 0.7},
		Size:        0.1,
		PersistTime: 5.0,
		Sensitivity: 0.5,
		LineWidth:   4.0,
		UnitScale:   1.0,
		DepthBias:   -1.0,
		KeyBindings: []input.Key{input.KeyRightCtrl, input.KeyL},
	}
}
