// Package scene renders the globe viewer's layers: terrain, water and
// markers. Each renderer owns its program and buffers; draw order and the
// shared morph state live in Scene.
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

const terrainStride = int32(unsafe.Sizeof(mesh.TerrainVertex{}))

// TerrainRenderer draws the morphing terrain globe.
//
// Vertex layout: globe position, globe normal, color, then flat
// (u, v, height).
type TerrainRenderer struct {
	program *shader.Program

	locViewProj int32
	locMorph    int32

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
}

// NewTerrainRenderer compiles the terrain program.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	program, err := shader.Compile(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	return &TerrainRenderer{
		program:     program,
		locViewProj: program.MustUniform("uViewProj"),
		locMorph:    program.MustUniform("uMorph"),
	}, nil
}

// Upload (re)uploads the terrain mesh. Safe to call again after the height
// field is randomized.
func (tr *TerrainRenderer) Upload(m *mesh.Terrain) {
	if tr.vao == 0 {
		gl.GenVertexArrays(1, &tr.vao)
		gl.GenBuffers(1, &tr.vbo)
		gl.GenBuffers(1, &tr.ebo)
	}

	gl.BindVertexArray(tr.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(terrainStride),
		unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// aGlobePos, aGlobeNormal, aColor, aFlat
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, terrainStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, terrainStride, 12)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, terrainStride, 24)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, terrainStride, 36)
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)
	tr.indexCount = int32(len(m.Indices))
}

// Render draws the terrain with the given view-projection and morph state.
func (tr *TerrainRenderer) Render(viewProj math.Mat4, st morph.State) {
	if tr.vao == 0 {
		return
	}

	tr.program.Use()
	gl.UniformMatrix4fv(tr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform4f(tr.locMorph, morph.Clamp01(st.T), st.Rotation, st.MapWidth, st.MapHeight)

	gl.BindVertexArray(tr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (tr *TerrainRenderer) Destroy() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		gl.DeleteBuffers(1, &tr.vbo)
		gl.DeleteBuffers(1, &tr.ebo)
		tr.vao, tr.vbo, tr.ebo = 0, 0, 0
	}
	tr.program.Delete()
}
