// Package gizmo implements the sun gizmo: a mouse-driven controller that rotates
// directional lights while a key gesture is held, and a screen-anchored overlay that
// visualizes where every tracked light comes from.
//
// Each frame the host calls System.Frame (or Update then Draw, in that order):
//
//	input snapshot -> Controller.Update -> dirty -> Projector.Frame -> Painter
//
// The controller must run before the projector in the same frame: the projector resets
// its idle timer from the controller's dirty flag and reads the freshly written rotations.
// Nothing here returns errors; a missing camera, viewport or degenerate projection
// just means nothing is drawn that frame.
package gizmo
