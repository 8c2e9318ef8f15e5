package morph

import (
	"encoding/binary"
	stdmath "math"

	"github.com/atlaslab/globeview/pkg/math"
)

// GlobalsSize is the byte size of the uniform block shared with the GPU
// programs: a mat4 view-projection followed by a vec4 of morph parameters.
const GlobalsSize = 80

// Globals is the per-batch uniform block. Morph packs
// (t, rotation, mapWidth, mapHeight) into one vec4, matching the std140
// layout the shaders declare.
type Globals struct {
	ViewProj [16]float32
	Morph    [4]float32
}

// NewGlobals builds the uniform block for one frame. The morph factor is
// clamped host-side; upstream easing may overshoot slightly.
func NewGlobals(viewProj math.Mat4, st State) Globals {
	return Globals{
		ViewProj: [16]float32(viewProj),
		Morph:    [4]float32{Clamp01(st.T), st.Rotation, st.MapWidth, st.MapHeight},
	}
}

// Pack serializes the block little-endian for GPU upload.
func (g *Globals) Pack() []byte {
	buf := make([]byte, GlobalsSize)
	for i, f := range g.ViewProj {
		binary.LittleEndian.PutUint32(buf[i*4:], stdmath.Float32bits(f))
	}
	for i, f := range g.Morph {
		binary.LittleEndian.PutUint32(buf[64+i*4:], stdmath.Float32bits(f))
	}
	return buf
}
