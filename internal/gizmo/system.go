package gizmo

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// FrameResult summarizes one System.Frame call.
type FrameResult struct {
	Rotated bool
	Drawn   bool
	Anchor  math.Vec3
}

// System runs the controller and projector in the required order.
type System struct {
	cfg        Config
	controller *Controller
	projector  *Projector
}

// NewSystem creates a gizmo system. log may be nil.
func NewSystem(cfg Config, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	return &System{
		cfg:        cfg,
		controller: NewController(cfg, log.Named("controller")),
		projector:  NewProjector(cfg, log.Named("projector")),
	}
}

// Config returns the configuration the system was built with.
func (s *System) Config() Config {
	return s.cfg
}

// Projector returns the system's projector.
func (s *System) Projector() *Projector {
	return s.projector
}

// Update runs the rotation phase and returns the dirty flag for Draw.
func (s *System) Update(scene Scene, in *input.State) bool {
	return s.controller.Update(scene, in)
}

// Draw runs the draw phase for the dirty flag produced by Update in the same frame.
func (s *System) Draw(scene Scene, dirty bool, dt float32, painter Painter) (math.Vec3, bool) {
	return s.projector.Frame(scene, dirty, dt, painter)
}

// Frame runs Update then Draw.
func (s *System) Frame(scene Scene, in *input.State, painter Painter) FrameResult {
	dirty := s.Update(scene, in)
	anchor, drawn := s.Draw(scene, dirty, in.Dt(), painter)
	return FrameResult{Rotated: dirty, Drawn: drawn, Anchor: anchor}
}
