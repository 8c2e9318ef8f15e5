// Package morph implements the globe-to-flat-map morph transform shared by
// the terrain and water layers.
//
// Every vertex carries two representations of the same surface point: a
// position on a rotating sphere and a coordinate on a flat equirectangular
// map. The transform blends between them with a single factor t (0 = globe,
// 1 = flat map) and keeps the map's horizontal wrap in step with the globe's
// spin so features do not slide sideways during the transition.
package morph

import (
	"github.com/chewxy/math32"

	"github.com/atlaslab/globeview/pkg/math"
)

// invTau converts radians of globe spin into map-width fractions:
// one full turn scrolls the map by exactly one width.
const invTau = 1.0 / (2.0 * math32.Pi)

// FlatUp is the surface normal in full map mode. The flat surface is
// treated as planar for lighting, regardless of elevation.
var FlatUp = math.Vec3{X: 0, Y: 1, Z: 0}

// State holds the per-frame morph parameters. The zero value is a
// non-rotating globe.
type State struct {
	T         float32 // 0 = globe, 1 = flat map; clamped at use
	Rotation  float32 // globe spin around Y, radians
	MapWidth  float32 // world-space width of the flat map
	MapHeight float32 // world-space height of the flat map
}

// Variant selects which stages of the transform run. The terrain and water
// layers share one code path instead of near-duplicate shaders.
type Variant struct {
	// HasNormals enables the normal blend (lit terrain).
	HasNormals bool
	// ReconstructsFlatFromUV derives the map-mode target from the vertex's
	// (u, v, height) triple. When false the vertex supplies a precomputed
	// world-space flat position instead.
	ReconstructsFlatFromUV bool
	// Rotates applies the morph-scaled globe spin.
	Rotates bool
}

// The shipped layer configurations.
var (
	// Terrain morphs, rotates and lights its vertex colors.
	Terrain = Variant{HasNormals: true, ReconstructsFlatFromUV: true, Rotates: true}
	// Water morphs and rotates but carries no normals.
	Water = Variant{ReconstructsFlatFromUV: true, Rotates: true}
	// WaterPrebaked is the earlier water layout: the flat target arrives as
	// a finished world-space position and the globe does not spin.
	WaterPrebaked = Variant{}
)

// Vertex is a dual-parameterized surface point. GlobePos and GlobeNormal are
// sphere-space, pre-rotation. Flat holds (u, v, height) when the variant
// reconstructs the map target from UV, or a world-space position otherwise.
type Vertex struct {
	GlobePos    math.Vec3
	GlobeNormal math.Vec3
	Color       math.Vec3
	Flat        math.Vec3
}

// Result is the blended world-space output. Normal is only meaningful for
// variants with HasNormals set.
type Result struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Clamp01 clamps x to [0, 1].
func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Frac returns x - floor(x), always in [0, 1), including for negative x.
func Frac(x float32) float32 {
	return x - math32.Floor(x)
}

// WrapLongitude shifts a raw longitude fraction by the globe's rotation and
// wraps it back into [0, 1). A full turn (2*pi) maps to exactly one
// horizontal wrap, which keeps the flat map's scroll synchronized with the
// globe's spin during the morph.
func WrapLongitude(uRaw, rotation float32) float32 {
	return Frac(uRaw + rotation*invTau)
}

// RotateY rotates p around the Y axis by angle radians. Pure rotation:
// lengths are preserved, angle 0 is the identity.
func RotateY(p math.Vec3, angle float32) math.Vec3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return math.Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// FlatPosition converts wrapped map coordinates into a world-space position,
// centered on the origin. v is clamped rather than wrapped: the map is
// cylindrical horizontally but not vertically. The v sign flip maps the
// map's top-to-bottom rows onto the world's -Z axis.
func FlatPosition(u, v, height, mapWidth, mapHeight float32) math.Vec3 {
	v = Clamp01(v)
	return math.Vec3{
		X: (u - 0.5) * mapWidth,
		Y: height,
		Z: (0.5 - v) * mapHeight,
	}
}

// Transform blends a vertex between its globe and flat-map representations.
//
// The globe's spin is scaled by t, so it unwinds over the course of the
// transition: at t=0 the rotation stage is the identity, at t=1 the globe
// contributes nothing to the output. The flat target's longitude is wrapped
// by the full rotation angle so the two representations stay aligned at
// every point in between.
func Transform(vtx Vertex, st State, variant Variant) Result {
	t := Clamp01(st.T)

	globe := vtx.GlobePos
	normal := vtx.GlobeNormal
	if variant.Rotates {
		blend := st.Rotation * t
		globe = RotateY(globe, blend)
		if variant.HasNormals {
			normal = RotateY(normal, blend)
		}
	}

	flat := vtx.Flat
	if variant.ReconstructsFlatFromUV {
		var rot float32
		if variant.Rotates {
			rot = st.Rotation
		}
		u := WrapLongitude(vtx.Flat.X, rot)
		flat = FlatPosition(u, vtx.Flat.Y, vtx.Flat.Z, st.MapWidth, st.MapHeight)
	}

	out := Result{Position: globe.Lerp(flat, t)}
	if variant.HasNormals {
		// Lerping two unit vectors does not stay unit-length except at the
		// endpoints, so renormalize.
		out.Normal = normal.Lerp(FlatUp, t).Normalize()
	}
	return out
}
