package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/internal/engine/shader"
	"github.com/Faultbox/sungizmo/internal/logger"
	"github.com/Faultbox/sungizmo/pkg/math"
)

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;
uniform float uDepthBias;

out vec4 vColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	// Negative bias pulls towards the near plane, positive pushes towards the far plane.
	float target = sign(uDepthBias) * gl_Position.w;
	gl_Position.z = mix(gl_Position.z, target, clamp(abs(uDepthBias), 0.0, 1.0));
	vColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// LineStyle controls how a batch of lines is rasterized.
type LineStyle struct {
	Width float32
	// DepthBias in [-1, 1] moves lines towards the near (-1) or far (+1) plane.
	// -1 draws on top of everything.
	DepthBias float32
}

// clamp limits the style to what the driver supports.
func (s LineStyle) clamp(widthRange [2]float32) LineStyle {
	if s.Width < widthRange[0] {
		s.Width = widthRange[0]
	}
	if s.Width > widthRange[1] {
		s.Width = widthRange[1]
	}
	if s.DepthBias < -1 {
		s.DepthBias = -1
	}
	if s.DepthBias > 1 {
		s.DepthBias = 1
	}
	return s
}

// vertexCount returns the number of whole vertices in a tessellated buffer.
func vertexCount(vertices []float32) int32 {
	return int32(len(vertices) / debug.FloatsPerVertex)
}

// LineRenderer draws tessellated debug.DrawList vertices as GL_LINES.
type LineRenderer struct {
	program    uint32
	vao, vbo   uint32
	uViewProj  int32
	uDepthBias int32

	capacity   int // vbo size in floats
	widthRange [2]float32
	log        *zap.Logger
	warned     bool
}

// NewLineRenderer compiles the line program and allocates its buffers.
func NewLineRenderer() (*LineRenderer, error) {
	r := &LineRenderer{log: logger.Named("lines")}

	var err error
	r.program, err = shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	if r.uViewProj, err = shader.Uniform(r.program, "uViewProj"); err != nil {
		r.Close()
		return nil, err
	}
	if r.uDepthBias, err = shader.Uniform(r.program, "uDepthBias"); err != nil {
		r.Close()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(debug.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &r.widthRange[0])
	r.log.Debug("line renderer created",
		zap.Uint32("program", r.program),
		zap.Float32("min_width", r.widthRange[0]),
		zap.Float32("max_width", r.widthRange[1]),
	)
	return r, nil
}

// Draw uploads vertices (debug.FloatsPerVertex floats each) and draws them as line pairs.
func (r *LineRenderer) Draw(vertices []float32, viewProj math.Mat4, style LineStyle) {
	count := vertexCount(vertices)
	if count < 2 {
		return
	}

	clamped := style.clamp(r.widthRange)
	if clamped.Width != style.Width && !r.warned {
		r.warned = true
		r.log.Warn("line width not supported, clamping",
			zap.Float32("requested", style.Width),
			zap.Float32("used", clamped.Width),
		)
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1f(r.uDepthBias, clamped.DepthBias)
	gl.LineWidth(clamped.Width)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	n := int(count) * debug.FloatsPerVertex
	if n > r.capacity {
		r.capacity = n
		gl.BufferData(gl.ARRAY_BUFFER, n*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(vertices))
	}
	gl.DrawArrays(gl.LINES, 0, count)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (r *LineRenderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
