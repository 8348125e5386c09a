package debug

import "github.com/Faultbox/sungizmo/pkg/math"

// LinePainter is anything that accepts world-space line segments.
type LinePainter interface {
	Line(from, to math.Vec3, color Color)
}

// GroundGrid draws a square grid on the Y=height plane centered on the origin.
// cells is the number of cells per side; cellSize is the world size of a cell.
func GroundGrid(p LinePainter, cells int, cellSize, height float32, color Color) {
	if cells <= 0 || cellSize <= 0 {
		return
	}
	half := float32(cells) * cellSize / 2

	for i := 0; i <= cells; i++ {
		offset := -half + float32(i)*cellSize
		// Lines along Z
		p.Line(math.Vec3{X: offset, Y: height, Z: -half}, math.Vec3{X: offset, Y: height, Z: half}, color)
		// Lines along X
		p.Line(math.Vec3{X: -half, Y: height, Z: offset}, math.Vec3{X: half, Y: height, Z: offset}, color)
	}
}
