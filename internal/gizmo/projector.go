package gizmo

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sungizmo/pkg/math"
)

// ComputeAnchor returns the world point where the gizmo is centered: the ray through
// anchor*viewport, at distance 1/size from its origin. A larger size therefore places the
// gizmo closer to the camera. ok is false when the viewer has no viewport, the
// unprojection is undefined, or size is not positive.
func ComputeAnchor(v Viewer, anchor math.Vec2, size float32) (math.Vec3, bool) {
	if v == nil || size <= 0 {
		return math.Vec3{}, false
	}
	viewport, ok := v.LogicalViewport()
	if !ok {
		return math.Vec3{}, false
	}
	ray, ok := v.ViewportToWorld(viewport.Mul(anchor))
	if !ok {
		return math.Vec3{}, false
	}
	return ray.PointAt(1 / size), true
}

// hiddenSentinel is the idle timer value before the first activation.
const hiddenSentinel = -1

// IdleTimer counts down from the persist time after each activation.
// The gizmo is visible while the remaining time is not negative.
type IdleTimer struct {
	persist   float32
	remaining float32
}

// NewIdleTimer creates a hidden timer.
func NewIdleTimer(persist float32) IdleTimer {
	return IdleTimer{persist: persist, remaining: hiddenSentinel}
}

// Reset makes the timer visible with the full persist time.
func (t *IdleTimer) Reset() {
	t.remaining = t.persist
}

// Tick advances the timer by dt. It reports whether the gizmo should be drawn this frame,
// which is the visibility before the countdown.
func (t *IdleTimer) Tick(dt float32) bool {
	if t.remaining < 0 {
		return false
	}
	t.remaining -= dt
	return true
}

// Visible reports whether the next Tick will draw.
func (t IdleTimer) Visible() bool {
	return t.remaining >= 0
}

// Remaining returns the remaining visible time; negative means hidden.
func (t IdleTimer) Remaining() float32 {
	return t.remaining
}

// Projector places the gizmo on screen and draws it while the idle timer runs.
type Projector struct {
	cfg   Config
	timer IdleTimer
	log   *zap.Logger

	shown    bool
	lastSkip string
}

// NewProjector creates a hidden projector.
func NewProjector(cfg Config, log *zap.Logger) *Projector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projector{
		cfg:   cfg,
		timer: NewIdleTimer(cfg.PersistTime),
		log:   log,
	}
}

// Timer exposes the idle timer state.
func (p *Projector) Timer() IdleTimer {
	return p.timer
}

// Frame consumes this frame's dirty flag, advances the idle timer and, while visible,
// draws the gizmo for every light in scene. It returns the anchor and whether anything was drawn.
func (p *Projector) Frame(scene Scene, dirty bool, dt float32, painter Painter) (math.Vec3, bool) {
	if dirty {
		p.timer.Reset()
	}
	if !p.timer.Tick(dt) {
		if p.shown {
			p.shown = false
			p.log.Debug("gizmo hidden")
		}
		return math.Vec3{}, false
	}
	if !p.shown {
		p.shown = true
		p.log.Debug("gizmo shown", zap.Float32("persist", p.cfg.PersistTime))
	}

	cam, ok := scene.GizmoCamera()
	if !ok {
		p.skip("no gizmo camera")
		return math.Vec3{}, false
	}
	if _, ok := cam.LogicalViewport(); !ok {
		p.skip("camera has no viewport")
		return math.Vec3{}, false
	}
	anchor, ok := ComputeAnchor(cam, p.cfg.Anchor, p.cfg.Size)
	if !ok {
		p.skip("anchor unprojection failed")
		return math.Vec3{}, false
	}
	p.lastSkip = ""

	Draw(painter, anchor, p.cfg.UnitScale, scene)
	return anchor, true
}

// skip logs the reason a visible frame was not drawn, once per distinct reason.
func (p *Projector) skip(reason string) {
	if reason == p.lastSkip {
		return
	}
	p.lastSkip = reason
	p.log.Debug("gizmo not drawn", zap.String("reason", reason))
}
