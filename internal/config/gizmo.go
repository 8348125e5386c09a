package config

import (
	"fmt"

	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/internal/gizmo"
	"github.com/Faultbox/sungizmo/pkg/math"
)

// Build converts the YAML settings into the gizmo configuration.
func (g GizmoConfig) Build() (gizmo.Config, error) {
	keys, err := input.ParseKeys(g.KeyBindings)
	if err != nil {
		return gizmo.Config{}, fmt.Errorf("gizmo key_bindings: %w", err)
	}
	return gizmo.Config{
		Anchor:      math.Vec2{X: g.Anchor[0], Y: g.Anchor[1]},
		Size:        g.Size,
		PersistTime: g.PersistTime,
		Sensitivity: g.Sensitivity,
		LineWidth:   g.LineWidth,
		UnitScale:   g.UnitScale,
		DepthBias:   g.DepthBias,
		KeyBindings: keys,
	}, nil
}

// Binding returns the gizmo binding for the light. Lights without key bindings use
// global, and lights without a color are yellow.
func (l LightConfig) Binding(global []input.Key) (gizmo.Binding, error) {
	keys := global
	if len(l.KeyBindings) > 0 {
		var err error
		keys, err = input.ParseKeys(l.KeyBindings)
		if err != nil {
			return gizmo.Binding{}, fmt.Errorf("light %q key_bindings: %w", l.Name, err)
		}
	}

	color := gizmo.DefaultLightColor
	switch len(l.Color) {
	case 0:
	case 3:
		color = debug.Color{l.Color[0], l.Color[1], l.Color[2], 1}
	case 4:
		color = debug.Color{l.Color[0], l.Color[1], l.Color[2], l.Color[3]}
	default:
		return gizmo.Binding{}, fmt.Errorf("light %q color: want 3 or 4 components, got %d", l.Name, len(l.Color))
	}

	return gizmo.Binding{Color: color, Keys: keys}, nil
}

// NewLight creates the directional light described by l.
func (l LightConfig) NewLight() *lighting.DirectionalLight {
	light := lighting.NewDirectional(l.Name).FromAngles(l.Longitude, l.Latitude)
	if l.Illuminance > 0 {
		light.Illuminance = l.Illuminance
	}
	if len(l.Color) >= 3 {
		light.Color = [3]float32{l.Color[0], l.Color[1], l.Color[2]}
	}
	return light
}

// BindLights creates every configured light and binds it in w.
func (c *Config) BindLights(w *gizmo.World, global []input.Key) ([]*lighting.DirectionalLight, error) {
	lights := make([]*lighting.DirectionalLight, 0, len(c.Lights))
	for _, lc := range c.Lights {
		b, err := lc.Binding(global)
		if err != nil {
			return nil, err
		}
		light := lc.NewLight()
		w.Bind(light, b)
		lights = append(lights, light)
	}
	return lights, nil
}

// Presets are built-in light setups selectable with --preset.
var presets = map[string][]LightConfig{
	"sun": {
		{Name: "sun", Longitude: 0, Latitude: 45, Illuminance: 10000},
	},
	"sun-moon": {
		{Name: "sun", KeyBindings: []string{"LeftAlt", "1"}, Longitude: 0, Latitude: 45, Illuminance: 10000},
		{Name: "moon", Color: []float32{0.56, 0.75, 1}, KeyBindings: []string{"LeftAlt", "2"}, Longitude: 0, Latitude: -45, Illuminance: 400},
	},
}

// PresetLights returns a copy of the named light preset.
func PresetLights(name string) ([]LightConfig, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return append([]LightConfig(nil), p...), nil
}
