package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/atlaslab/globeview/internal/engine/scene/shaders"
	"github.com/atlaslab/globeview/internal/engine/shader"
	"github.com/atlaslab/globeview/internal/mesh"
	"github.com/atlaslab/globeview/pkg/math"
)

const markerStride = int32(unsafe.Sizeof(mesh.MarkerVertex{}))

// MarkerRenderer draws unlit marker quads. Markers do not morph; they are
// offset by a 2D pan vector before projection and pass their color through.
type MarkerRenderer struct {
	program *shader.Program

	locViewProj int32
	locOffset   int32

	vao uint32
	vbo uint32

	vertexCount int32
}

// NewMarkerRenderer compiles the marker program.
func NewMarkerRenderer() (*MarkerRenderer, error) {
	program, err := shader.Compile(shaders.MarkerVertexShader, shaders.MarkerFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("marker shader: %w", err)
	}

	return &MarkerRenderer{
		program:     program,
		locViewProj: program.MustUniform("uViewProj"),
		locOffset:   program.MustUniform("uOffset"),
	}, nil
}

// Upload uploads the marker vertices.
func (mr *MarkerRenderer) Upload(vertices []mesh.MarkerVertex) {
	if len(vertices) == 0 {
		mr.vertexCount = 0
		return
	}

	if mr.vao == 0 {
		gl.GenVertexArrays(1, &mr.vao)
		gl.GenBuffers(1, &mr.vbo)
	}

	gl.BindVertexArray(mr.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, mr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(markerStride),
		unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// aPos, aColor
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, markerStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, markerStride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	mr.vertexCount = int32(len(vertices))
}

// Render draws the markers panned by offset.
func (mr *MarkerRenderer) Render(viewProj math.Mat4, offset math.Vec2) {
	if mr.vao == 0 || mr.vertexCount == 0 {
		return
	}

	mr.program.Use()
	gl.UniformMatrix4fv(mr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform2f(mr.locOffset, offset.X, offset.Y)

	// Markers are thin quads visible from both sides.
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(mr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, mr.vertexCount)
	gl.BindVertexArray(0)
	gl.Enable(gl.CULL_FACE)
}

// Destroy releases GL resources.
func (mr *MarkerRenderer) Destroy() {
	if mr.vao != 0 {
		gl.DeleteVertexArrays(1, &mr.vao)
		gl.DeleteBuffers(1, &mr.vbo)
		mr.vao, mr.vbo = 0, 0
	}
	mr.program.Delete()
}
