package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagGizmoSize   = flag.Float64("gizmo-size", 0, "Gizmo on-screen size (larger is closer to the camera)")
	flagPersist     = flag.Float64("gizmo-persist", -1, "Seconds the gizmo stays visible after a rotation")
	flagSensitivity = flag.Float64("sensitivity", 0, "Mouse sensitivity for light rotation")
	flagPreset      = flag.String("preset", "", "Light preset replacing the configured lights (sun, sun-moon)")
	flagFPSLimit    = flag.Int("fps-limit", -1, "Frame rate cap, 0 for uncapped")
	flagSaveConfig  = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFPSLimit >= 0 {
		cfg.Graphics.FPSLimit = *flagFPSLimit
	}
	if *flagGizmoSize > 0 {
		cfg.Gizmo.Size = float32(*flagGizmoSize)
	}
	if *flagPersist >= 0 {
		cfg.Gizmo.PersistTime = float32(*flagPersist)
	}
	if *flagSensitivity > 0 {
		cfg.Gizmo.Sensitivity = float32(*flagSensitivity)
	}
	if *flagPreset != "" {
		lights, err := PresetLights(*flagPreset)
		if err != nil {
			return err
		}
		cfg.Lights = lights
	}
	return nil
}
