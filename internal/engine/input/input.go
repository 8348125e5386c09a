// Package input holds the per-frame input snapshot consumed by engine systems.
package input

import "github.com/Faultbox/sungizmo/pkg/math"

// Mouse buttons.
const (
	MouseLeft uint8 = iota + 1
	MouseMiddle
	MouseRight
)

// State is the input snapshot for one frame: held keys, accumulated mouse motion and frame time.
// The window layer feeds it events; systems only read it.
type State struct {
	held    map[Key]bool
	buttons map[uint8]bool

	mouseDelta math.Vec2
	wheel      float32
	dt         float32
	quit       bool
}

// New creates an empty input state.
func New() *State {
	return &State{
		held:    make(map[Key]bool),
		buttons: make(map[uint8]bool),
	}
}

// BeginFrame clears per-frame accumulators and records the frame time in seconds.
// Held keys persist across frames.
func (s *State) BeginFrame(dt float32) {
	s.mouseDelta = math.Vec2{}
	s.wheel = 0
	s.dt = dt
}

// KeyDown marks k as held.
func (s *State) KeyDown(k Key) { s.held[k] = true }

// KeyUp releases k.
func (s *State) KeyUp(k Key) { delete(s.held, k) }

// ButtonDown marks a mouse button as held.
func (s *State) ButtonDown(b uint8) { s.buttons[b] = true }

// ButtonUp releases a mouse button.
func (s *State) ButtonUp(b uint8) { delete(s.buttons, b) }

// MouseMotion accumulates a relative mouse movement in pixels.
func (s *State) MouseMotion(dx, dy float32) {
	s.mouseDelta = s.mouseDelta.Add(math.Vec2{X: dx, Y: dy})
}

// Wheel accumulates scroll wheel movement.
func (s *State) Wheel(dy float32) { s.wheel += dy }

// RequestQuit records that the user asked to close the application.
func (s *State) RequestQuit() { s.quit = true }

// Pressed reports whether k is currently held.
func (s *State) Pressed(k Key) bool { return s.held[k] }

// ButtonPressed reports whether a mouse button is currently held.
func (s *State) ButtonPressed(b uint8) bool { return s.buttons[b] }

// AllPressed reports whether every key in keys is held. An empty set is never pressed.
func (s *State) AllPressed(keys []Key) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !s.held[k] {
			return false
		}
	}
	return true
}

// MouseDelta returns the mouse motion accumulated since BeginFrame.
func (s *State) MouseDelta() math.Vec2 { return s.mouseDelta }

// WheelDelta returns the wheel motion accumulated since BeginFrame.
func (s *State) WheelDelta() float32 { return s.wheel }

// Dt returns the frame time in seconds.
func (s *State) Dt() float32 { return s.dt }

// QuitRequested reports whether a quit was requested.
func (s *State) QuitRequested() bool { return s.quit }
