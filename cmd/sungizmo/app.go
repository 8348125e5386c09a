package main

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/sungizmo/internal/config"
	"github.com/Faultbox/sungizmo/internal/engine/camera"
	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/input"
	"github.com/Faultbox/sungizmo/internal/engine/lighting"
	"github.com/Faultbox/sungizmo/internal/engine/renderer"
	"github.com/Faultbox/sungizmo/internal/engine/window"
	"github.com/Faultbox/sungizmo/internal/gizmo"
	"github.com/Faultbox/sungizmo/internal/logger"
)

const (
	windowTitle = "Sun Gizmo"

	gridCells    = 20
	gridCellSize = 1.0

	// Frame times above this are treated as a stall, not as elapsed time.
	maxFrameTime = 0.25
)

var gridColor = debug.Gray.WithAlpha(0.6)

type app struct {
	cfg *config.Config
	log *zap.Logger

	win    *window.Window
	render *renderer.Renderer
	lines  *renderer.LineRenderer

	cam    *camera.Camera
	orbit  *camera.OrbitCamera
	world  *gizmo.World
	lights []*lighting.DirectionalLight
	system *gizmo.System

	in       *input.State
	scene    *debug.DrawList
	overlay  *debug.DrawList
	vertices []float32
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:     cfg,
		log:     logger.Named("app"),
		in:      input.New(),
		scene:   debug.NewDrawList(),
		overlay: debug.NewDrawList(),
	}

	gizmoCfg, err := cfg.Gizmo.Build()
	if err != nil {
		return nil, err
	}

	a.win, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	dw, dh := a.win.GetDrawableSize()
	a.render, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	a.lines, err = renderer.NewLineRenderer()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("line renderer: %w", err)
	}

	a.orbit = camera.NewOrbitCamera()
	a.cam = camera.New(a.orbit.Position(), a.orbit.Center())
	a.updateViewport()

	a.world = gizmo.NewWorld()
	a.world.BindCamera(a.cam)
	a.lights, err = cfg.BindLights(a.world, gizmoCfg.KeyBindings)
	if err != nil {
		a.Close()
		return nil, err
	}
	for _, l := range a.lights {
		lon, lat := lighting.SunAngles(l.Direction())
		a.log.Info("light bound",
			zap.String("name", l.Name),
			zap.Stringer("id", l.ID),
			zap.Float32("longitude", lon),
			zap.Float32("latitude", lat),
			zap.Float32s("color", l.Color[:]),
			zap.Float32("illuminance", l.Illuminance),
		)
	}
	a.updateTitle()

	a.system = gizmo.NewSystem(gizmoCfg, logger.Named("gizmo"))
	a.log.Info("hold the key chord and move the mouse to rotate a light",
		zap.String("default_keys", strings.Join(cfg.Gizmo.KeyBindings, "+")),
	)
	return a, nil
}

// Run drives the frame loop until the window is closed or Escape is pressed.
// Frames are capped to the configured fps limit.
func (a *app) Run() {
	budget := a.cfg.Graphics.FrameBudget()
	last := time.Now()
	for {
		if budget > 0 {
			if spent := time.Since(last); spent < budget {
				time.Sleep(budget - spent)
			}
		}
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		a.in.BeginFrame(dt)
		if a.win.PollEvents(a.in) {
			a.updateViewport()
		}
		if a.in.QuitRequested() || a.in.Pressed(input.KeyEscape) {
			return
		}

		a.frame()
		a.win.SwapBuffers()
	}
}

func (a *app) frame() {
	if a.in.ButtonPressed(input.MouseRight) {
		delta := a.in.MouseDelta()
		a.orbit.HandleDrag(delta.X, delta.Y)
	}
	if wheel := a.in.WheelDelta(); wheel != 0 {
		a.orbit.HandleZoom(wheel)
	}
	a.orbit.Apply(a.cam)

	a.overlay.Reset()
	res := a.system.Frame(a.world, a.in, a.overlay)
	if res.Rotated {
		for _, l := range a.lights {
			lon, lat := lighting.SunAngles(l.Direction())
			a.log.Debug("light orientation",
				zap.String("name", l.Name),
				zap.Float32("longitude", lon),
				zap.Float32("latitude", lat),
			)
		}
		a.updateTitle()
	}

	viewProj := a.cam.ViewProjection()
	a.render.Begin()

	a.scene.Reset()
	debug.GroundGrid(a.scene, gridCells, gridCellSize, 0, gridColor)
	a.vertices = a.scene.Tessellate(a.vertices[:0])
	a.lines.Draw(a.vertices, viewProj, renderer.LineStyle{Width: 1})

	if res.Drawn {
		gc := a.system.Config()
		a.vertices = a.overlay.Tessellate(a.vertices[:0])
		a.lines.Draw(a.vertices, viewProj, renderer.LineStyle{Width: gc.LineWidth, DepthBias: gc.DepthBias})
	}
}

// updateTitle shows every light's longitude and latitude in the window title.
func (a *app) updateTitle() {
	parts := make([]string, 0, len(a.lights)+1)
	parts = append(parts, windowTitle)
	for _, l := range a.lights {
		lon, lat := lighting.SunAngles(l.Direction())
		parts = append(parts, fmt.Sprintf("%s %.0f°/%.0f°", l.Name, lon, lat))
	}
	a.win.SetTitle(strings.Join(parts, " | "))
}

func (a *app) updateViewport() {
	w, h := a.win.GetSize()
	a.cam.SetViewport(float32(w), float32(h))
	dw, dh := a.win.GetDrawableSize()
	a.render.Resize(dw, dh)
}

func (a *app) Close() {
	if a.lines != nil {
		a.lines.Close()
	}
	if a.render != nil {
		a.render.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
