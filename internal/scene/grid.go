// Package scene draws the demo's reference geometry: a ground grid with
// colored world axes, so camera moves driven by the cube are visible.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/navcube/internal/shader"
	"github.com/Faultbox/navcube/pkg/math"
)

const gridVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const gridFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// Grid renders ground grid lines plus the three world axes.
type Grid struct {
	program   uint32
	vao       uint32
	vbo       uint32
	lineCount int32
	locMVP    int32
}

// NewGrid builds the grid geometry. extent is the half-size of the grid and
// step the line spacing, both in world units.
func NewGrid(extent, step float32) (*Grid, error) {
	g := &Grid{}

	program, err := shader.CompileProgram(gridVertexShader, gridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}
	g.program = program
	g.locMVP = shader.GetUniform(program, "uMVP")

	var vertices []float32
	line := func(a, b math.Vec3, r, gr, bl float32) {
		vertices = append(vertices,
			a.X, a.Y, a.Z, r, gr, bl,
			b.X, b.Y, b.Z, r, gr, bl,
		)
	}

	for x := -extent; x <= extent; x += step {
		if x == 0 {
			continue // axes drawn separately
		}
		line(math.Vec3{X: x, Z: -extent}, math.Vec3{X: x, Z: extent}, 0.3, 0.3, 0.35)
	}
	for z := -extent; z <= extent; z += step {
		if z == 0 {
			continue
		}
		line(math.Vec3{X: -extent, Z: z}, math.Vec3{X: extent, Z: z}, 0.3, 0.3, 0.35)
	}

	// World axes: X red, Y green, Z blue.
	line(math.Vec3{X: -extent}, math.Vec3{X: extent}, 0.8, 0.2, 0.2)
	line(math.Vec3{}, math.Vec3{Y: extent}, 0.2, 0.8, 0.2)
	line(math.Vec3{Z: -extent}, math.Vec3{Z: extent}, 0.2, 0.4, 0.9)

	g.lineCount = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return g, nil
}

// Draw renders the grid with the given combined view-projection matrix.
func (g *Grid) Draw(viewProj math.Mat4) {
	gl.UseProgram(g.program)
	gl.UniformMatrix4fv(g.locMVP, 1, false, viewProj.Ptr())
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.LINES, 0, g.lineCount)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (g *Grid) Close() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.program != 0 {
		gl.DeleteProgram(g.program)
	}
}
