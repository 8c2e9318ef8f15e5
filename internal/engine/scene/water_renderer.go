package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/atlaslab/globeview/internal/engine/scene/shaders"
	"github.com/atlaslab/globeview/internal/engine/shader"
	"github.com/atlaslab/globeview/internal/mesh"
	"github.com/atlaslab/globeview/internal/morph"
	"github.com/atlaslab/globeview/pkg/math"
)

const waterStride = int32(unsafe.Sizeof(mesh.WaterVertex{}))

// WaterRenderer draws the translucent water sphere.
//
// Vertex layout: globe position, then flat (u, v, height). Water
// reconstructs its flat target from UV the same way terrain does.
// No normals: water shading is a constant color.
type WaterRenderer struct {
	program *shader.Program

	locViewProj int32
	locMorph    int32

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
}

// NewWaterRenderer compiles the water program.
func NewWaterRenderer() (*WaterRenderer, error) {
	program, err := shader.Compile(shaders.WaterVertexShader, shaders.WaterFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}

	return &WaterRenderer{
		program:     program,
		locViewProj: program.MustUniform("uViewProj"),
		locMorph:    program.MustUniform("uMorph"),
	}, nil
}

// Upload uploads the water mesh.
func (wr *WaterRenderer) Upload(m *mesh.Water) {
	if wr.vao == 0 {
		gl.GenVertexArrays(1, &wr.vao)
		gl.GenBuffers(1, &wr.vbo)
		gl.GenBuffers(1, &wr.ebo)
	}

	gl.BindVertexArray(wr.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(waterStride),
		unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// aGlobePos, aFlat
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, waterStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, waterStride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	wr.indexCount = int32(len(m.Indices))
}

// Render draws the water. Call after the opaque terrain: water blends over
// it and does not write depth.
func (wr *WaterRenderer) Render(viewProj math.Mat4, st morph.State) {
	if wr.vao == 0 {
		return
	}

	wr.program.Use()
	gl.UniformMatrix4fv(wr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform4f(wr.locMorph, morph.Clamp01(st.T), st.Rotation, st.MapWidth, st.MapHeight)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BindVertexArray(wr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Destroy releases GL resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		gl.DeleteBuffers(1, &wr.vbo)
		gl.DeleteBuffers(1, &wr.ebo)
		wr.vao, wr.vbo, wr.ebo = 0, 0, 0
	}
	wr.program.Delete()
}
