// Package shade holds the fragment shading used by the viewer's layers.
// Shading runs strictly downstream of the morph transform and never feeds
// back into it.
package shade

import "github.com/atlaslab/globeview/pkg/math"

// RGBA is a color with components in [0,1].
type RGBA struct {
	R, G, B, A float32
}

// LightDir is the single fixed directional light, unit length.
var LightDir = math.Vec3{X: 0.4, Y: 0.9, Z: 0.2}.Normalize()

// Ambient and Diffuse split the terrain lighting: the ambient floor plus up
// to Diffuse from the light term always sums to at most 1.
const (
	Ambient = 0.45
	Diffuse = 0.55
)

// WaterColor is the constant translucent water fragment color, independent
// of lighting and morph state.
var WaterColor = RGBA{R: 0.08, G: 0.32, B: 0.5, A: 0.55}

// TerrainLit shades a vertex color with the fixed directional light.
func TerrainLit(normal, color math.Vec3) RGBA {
	ndl := clamp01(normal.Normalize().Dot(LightDir))
	s := Ambient + Diffuse*ndl
	return RGBA{R: color.X * s, G: color.Y * s, B: color.Z * s, A: 1}
}

// TerrainUnlit passes the vertex color through, opaque.
func TerrainUnlit(color math.Vec3) RGBA {
	return RGBA{R: color.X, G: color.Y, B: color.Z, A: 1}
}

// Marker passes the marker color through. Markers are unlit; their offset is
// applied to the position before projection, not here.
func Marker(color math.Vec3) RGBA {
	return TerrainUnlit(color)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
