// Package overlay renders the navigation cube widget into its corner
// viewport on top of the scene.
package overlay

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/navcube/internal/cube"
	"github.com/Faultbox/navcube/internal/regions"
	"github.com/Faultbox/navcube/internal/shader"
)

// The outline cube is scaled slightly past the faces to avoid z-fighting.
const outlineScale = 1.002

// Renderer draws the cube widget. It owns the mesh, the six labeled face
// textures, and the shader program.
// IMPORTANT: Must be created AFTER the OpenGL context exists!
type Renderer struct {
	program uint32

	vao uint32
	vbo uint32
	ebo uint32

	faceTextures [6]uint32
	whiteTex     uint32

	locMVP     int32
	locTexture int32
	locTint    int32
}

// New creates the overlay renderer for the given widget options.
func New(opts cube.Options) (*Renderer, error) {
	r := &Renderer{}

	program, err := shader.CompileProgram(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}
	r.program = program

	r.locMVP = shader.GetUniform(program, "uMVP")
	r.locTexture = shader.GetUniform(program, "uTexture")
	r.locTint = shader.GetUniform(program, "uTint")

	r.buildMesh(opts.EdgeLength)

	labels := cube.FaceLabels(opts.Labels, opts.TextColor, opts.FaceColor, opts.LabelScale)
	for i, img := range labels {
		r.faceTextures[i] = uploadTexture(img)
	}
	r.whiteTex = whiteTexture()

	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	for _, tex := range r.faceTextures {
		if tex != 0 {
			gl.DeleteTextures(1, &tex)
		}
	}
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Draw renders the widget into its viewport. The scene must already be
// drawn; the overlay clears only its own depth region.
func (r *Renderer) Draw(w *cube.Widget, winW, winH int) {
	x, y, vw, vh := w.ViewportRect()
	if vw <= 0 || vh <= 0 {
		return
	}

	// Window coordinates are top-left origin, GL viewports bottom-left.
	glY := winH - y - vh
	gl.Viewport(int32(x), int32(glY), int32(vw), int32(vh))

	// The cube always draws on top of the scene.
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x), int32(glY), int32(vw), int32(vh))
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)

	view, proj := w.Camera()
	model := w.DisplayRotation().ToMat4()
	mvp := proj.Mul(view).Mul(model)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.Uniform1i(r.locTexture, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.vao)

	hovered := make(map[regions.ID]bool)
	for _, f := range regions.AdjacentFaces(w.Hover()) {
		hovered[f] = true
	}

	opts := w.Options()
	for f := 0; f < 6; f++ {
		tint := cube.RGB(255, 255, 255)
		if hovered[regions.Front+regions.ID(f)] {
			tint = opts.HoverColor
		}
		gl.Uniform4f(r.locTint, tint.R, tint.G, tint.B, tint.A)
		gl.BindTexture(gl.TEXTURE_2D, r.faceTextures[f])
		gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(f*6*4)))
	}

	// Edge outline on top of the faces.
	outline := opts.OutlineColor
	gl.Uniform4f(r.locTint, outline.R, outline.G, outline.B, outline.A)
	gl.BindTexture(gl.TEXTURE_2D, r.whiteTex)
	gl.DrawElements(gl.LINES, 24, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(36*4)))

	gl.BindVertexArray(0)
	gl.Viewport(0, 0, int32(winW), int32(winH))
}

// buildMesh uploads the cube geometry: 24 face vertices with label UVs,
// 8 outline corners, and one index buffer holding both triangle and line
// indices.
func (r *Renderer) buildMesh(edgeLength float32) {
	h := edgeLength / 2

	// Face order matches regions.Front..Bottom in the cube's own frame:
	// front +Z, back -Z, left -X, right +X, top +Y, bottom -Y. UVs keep the
	// labels upright when each face is viewed head on.
	vertices := []float32{
		// front
		-h, -h, h, 0, 1,
		h, -h, h, 1, 1,
		h, h, h, 1, 0,
		-h, h, h, 0, 0,
		// back
		h, -h, -h, 0, 1,
		-h, -h, -h, 1, 1,
		-h, h, -h, 1, 0,
		h, h, -h, 0, 0,
		// left
		-h, -h, -h, 0, 1,
		-h, -h, h, 1, 1,
		-h, h, h, 1, 0,
		-h, h, -h, 0, 0,
		// right
		h, -h, h, 0, 1,
		h, -h, -h, 1, 1,
		h, h, -h, 1, 0,
		h, h, h, 0, 0,
		// top
		-h, h, h, 0, 1,
		h, h, h, 1, 1,
		h, h, -h, 1, 0,
		-h, h, -h, 0, 0,
		// bottom
		-h, -h, -h, 0, 1,
		h, -h, -h, 1, 1,
		h, -h, h, 1, 0,
		-h, -h, h, 0, 0,
	}

	// Outline corners, pushed out slightly.
	o := h * outlineScale
	corners := [][3]float32{
		{-o, -o, -o}, {o, -o, -o}, {o, o, -o}, {-o, o, -o},
		{-o, -o, o}, {o, -o, o}, {o, o, o}, {-o, o, o},
	}
	for _, c := range corners {
		vertices = append(vertices, c[0], c[1], c[2], 0, 0)
	}

	indices := make([]uint32, 0, 36+24)
	for f := uint32(0); f < 6; f++ {
		base := f * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	// 12 edges between the 8 outline corners.
	lineBase := uint32(24)
	edges := [][2]uint32{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		indices = append(indices, lineBase+e[0], lineBase+e[1])
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(0)

	// UV attribute (location = 1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// uploadTexture creates a GL texture from a label image.
func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// whiteTexture creates the 1x1 texture used by untextured draws.
func whiteTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	px := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
