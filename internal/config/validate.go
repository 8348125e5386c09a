package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/logger"
)

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width < 0 || c.Graphics.Height < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: fps_limit = %d: must not be negative", c.Graphics.FPSLimit))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	g := c.Gizmo
	for i, v := range g.Anchor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("gizmo anchor[%d] = %v: must be in [0,1]", i, v))
		}
	}
	if g.Size <= 0 {
		errs = append(errs, fmt.Errorf("gizmo size = %v: must be positive", g.Size))
	}
	if g.PersistTime < 0 {
		errs = append(errs, fmt.Errorf("gizmo persist_time = %v: must not be negative", g.PersistTime))
	}
	if g.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("gizmo line_width = %v: must be positive", g.LineWidth))
	}
	if g.UnitScale <= 0 {
		errs = append(errs, fmt.Errorf("gizmo unit_scale = %v: must be positive", g.UnitScale))
	}
	if _, err := input.ParseKeys(g.KeyBindings); err != nil {
		errs = append(errs, fmt.Errorf("gizmo key_bindings: %w", err))
	}

	for _, l := range c.Lights {
		if _, err := l.Binding(nil); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
