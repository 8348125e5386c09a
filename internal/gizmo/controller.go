package gizmo

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// VerticalStep returns the pitch in radians to apply around the light's right axis for a
// vertical mouse delta. Positive pitch raises forward towards world up.
// The step never exceeds the angle left to straight up, nor the angle left to straight down,
// so a single step cannot carry forward over either pole.
func VerticalStep(forward math.Vec3, deltaY, dt float32) float32 {
	step := -deltaY * dt
	if toUp := forward.AngleBetween(math.Vec3Up); step > toUp {
		step = toUp
	}
	if toDown := forward.AngleBetween(math.Vec3Down); step < -toDown {
		step = -toDown
	}
	return step
}

// Rotate applies one frame of gesture input to a light orientation.
// When active is false the orientation is returned untouched and rotated is false.
// Otherwise mouseDelta (the sum of this frame's motion) is scaled by sensitivity; the
// vertical part pitches around the light's current right axis, then the horizontal part
// yaws around world +Y.
func Rotate(orientation math.Quat, active bool, mouseDelta math.Vec2, sensitivity, dt float32) (math.Quat, bool) {
	if !active {
		return orientation, false
	}
	delta := mouseDelta.Scale(sensitivity)

	right := orientation.Right()
	pitch := VerticalStep(orientation.Forward(), delta.Y, dt)

	orientation = orientation.RotateAxis(right, pitch)
	orientation = orientation.RotateAxis(math.Vec3UnitY, delta.X*dt)
	return orientation, true
}

// Controller rotates every bound light whose gesture is held.
type Controller struct {
	sensitivity float32
	log         *zap.Logger

	// Lights whose gesture was held last frame, for edge logging.
	held map[lighting.LightID]bool
}

// NewController creates a controller using cfg.Sensitivity.
func NewController(cfg Config, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		sensitivity: cfg.Sensitivity,
		log:         log,
		held:        make(map[lighting.LightID]bool),
	}
}

// Update evaluates every light's gesture against the input snapshot and rotates the active ones.
// It returns true if at least one light rotated this frame.
func (c *Controller) Update(scene Scene, in *input.State) bool {
	delta := in.MouseDelta()
	dt := in.Dt()
	rotated := false

	var seen map[lighting.LightID]bool
	if len(c.held) > 0 {
		seen = make(map[lighting.LightID]bool, len(c.held))
	}
	scene.SunLights(func(light *lighting.DirectionalLight, b *Binding) bool {
		if seen != nil {
			seen[light.ID] = true
		}
		active := in.AllPressed(b.Keys)
		c.trackGesture(light, active)

		var ok bool
		light.Rotation, ok = Rotate(light.Rotation, active, delta, c.sensitivity, dt)
		if ok {
			rotated = true
		}
		return true
	})

	// Lights unbound mid-gesture never see a release.
	for id := range c.held {
		if seen != nil && !seen[id] {
			delete(c.held, id)
			c.log.Debug("gesture dropped", zap.Stringer("id", id))
		}
	}
	return rotated
}

func (c *Controller) trackGesture(light *lighting.DirectionalLight, active bool) {
	was := c.held[light.ID]
	switch {
	case active && !was:
		c.held[light.ID] = true
		c.log.Debug("gesture started", zap.String("light", light.Name), zap.Stringer("id", light.ID))
	case !active && was:
		delete(c.held, light.ID)
		lon, lat := lighting.SunAngles(light.Direction())
		c.log.Debug("gesture ended",
			zap.String("light", light.Name),
			zap.Float32("longitude", lon),
			zap.Float32("latitude", lat),
		)
	}
}
