// Package config handles configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
	Gizmo    GizmoConfig    `yaml:"gizmo"`
	Lights   []LightConfig  `yaml:"lights"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// FrameBudget returns the minimum frame duration for FPSLimit, or zero when uncapped.
func (g GraphicsConfig) FrameBudget() time.Duration {
	if g.FPSLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(g.FPSLimit)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// GizmoConfig holds the sun gizmo settings.
type GizmoConfig struct {
	Anchor      [2]float32 `yaml:"anchor"`       // normalized screen position, (0,0) is top-left
	Size        float32    `yaml:"size"`         // gizmo is drawn 1/size units from the camera
	PersistTime float32    `yaml:"persist_time"` // seconds visible after the last rotation
	Sensitivity float32    `yaml:"sensitivity"`
	LineWidth   float32    `yaml:"line_width"`
	UnitScale   float32    `yaml:"unit_scale"`
	DepthBias   float32    `yaml:"depth_bias"`
	KeyBindings []string   `yaml:"key_bindings"`
}

// LightConfig describes one directional light controlled by the gizmo.
type LightConfig struct {
	Name string `yaml:"name"`
	// Color is [r,g,b] or [r,g,b,a]. Empty means yellow.
	Color []float32 `yaml:"color,omitempty"`
	// KeyBindings overrides the gizmo key bindings for this light.
	KeyBindings []string `yaml:"key_bindings,omitempty"`
	Longitude   float32  `yaml:"longitude"` // degrees around +Y, 0 is +Z
	Latitude    float32  `yaml:"latitude"`  // degrees above the horizon
	Illuminance float32  `yaml:"illuminance"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Gizmo: GizmoConfig{
			Anchor:      [2]float32{0.7, 0.7},
			Size:        0.1,
			PersistTime: 5.0,
			Sensitivity: 0.5,
			LineWidth:   4.0,
			UnitScale:   1.0,
			DepthBias:   -1.0,
			KeyBindings: []string{"RightCtrl", "L"},
		},
		Lights: []LightConfig{
			{Name: "sun", Longitude: 0, Latitude: 45, Illuminance: 10000},
		},
	}
}
