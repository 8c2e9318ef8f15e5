// Package mesh generates the dual-parameterized geometry for the globe
// viewer. Every vertex carries both its sphere-space position and the flat
// equirectangular coordinate of the same logical surface point, so the
// morph transform can blend between the two.
package mesh

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// World dimensions. The flat map unrolls the sphere, so its width is the
// equator's circumference and its height a meridian's half-circumference.
const (
	WorldRadius     = 10.0
	MapWidth        = WorldRadius * 2 * math32.Pi
	MapHeight       = WorldRadius * math32.Pi
	HeightAmplitude = 1.6
	WaterLevel      = 0.8
)

// Water sits slightly below the terrain surface in each mode so shorelines
// read correctly during the morph.
const (
	flatWaterOffset  = 1.2
	globeWaterOffset = 0.6
)

// Grid resolution. Longitude has one extra column duplicating the seam so
// texture-style wrapping closes the sphere.
const (
	gridRes = 128
	gridLon = gridRes + 1
)

// TerrainVertex matches the terrain shader's attribute layout.
type TerrainVertex struct {
	Pos    [3]float32 // sphere-space, pre-rotation
	Normal [3]float32 // unit length at rest
	Color  [3]float32
	Flat   [3]float32 // (u, v, height)
}

// WaterVertex matches the water shader's attribute layout.
type WaterVertex struct {
	Pos  [3]float32
	Flat [3]float32 // (u, v, height)
}

// Terrain holds the generated terrain geometry.
type Terrain struct {
	Vertices []TerrainVertex
	Indices  []uint32
}

// Water holds the generated water geometry.
type Water struct {
	Vertices []WaterVertex
	Indices  []uint32
}

// GenerateTerrain builds the terrain globe: a lat/lon grid displaced by a
// random height field, colored by elevation.
func GenerateTerrain(rng *rand.Rand) *Terrain {
	vertices := make([]TerrainVertex, 0, gridRes*gridLon)
	for z := 0; z < gridRes; z++ {
		v := float32(z) / float32(gridRes-1)
		lat := v * math32.Pi
		sinLat := math32.Sin(lat)
		cosLat := math32.Cos(lat)
		for x := 0; x < gridLon; x++ {
			u := float32(x) / float32(gridLon-1)
			lon := u * 2 * math32.Pi
			dir := [3]float32{
				math32.Cos(lon) * sinLat,
				cosLat,
				math32.Sin(lon) * sinLat,
			}

			height := (rng.Float32()*2-1)*HeightAmplitude*0.5 +
				(rng.Float32()-0.5)*HeightAmplitude*0.25

			// Lower = darker, higher = brighter/greener.
			t := clamp01(height/HeightAmplitude + 0.5)
			color := [3]float32{
				0.1 + 0.1*t,
				0.4 + 0.4*t,
				0.2 + 0.2*t,
			}

			r := WorldRadius + height
			vertices = append(vertices, TerrainVertex{
				Pos:    [3]float32{dir[0] * r, dir[1] * r, dir[2] * r},
				Normal: dir,
				Color:  color,
				Flat:   [3]float32{u, v, height},
			})
		}
	}

	return &Terrain{
		Vertices: vertices,
		Indices:  gridIndices(),
	}
}

// GenerateWater builds the water sphere just below the terrain surface.
func GenerateWater() *Water {
	radius := float32(WorldRadius + WaterLevel - globeWaterOffset)
	flatHeight := float32(WaterLevel - flatWaterOffset)

	vertices := make([]WaterVertex, 0, gridRes*gridLon)
	for z := 0; z < gridRes; z++ {
		v := float32(z) / float32(gridRes-1)
		lat := v * math32.Pi
		sinLat := math32.Sin(lat)
		cosLat := math32.Cos(lat)
		for x := 0; x < gridLon; x++ {
			u := float32(x) / float32(gridLon-1)
			lon := u * 2 * math32.Pi
			dir := [3]float32{
				math32.Cos(lon) * sinLat,
				cosLat,
				math32.Sin(lon) * sinLat,
			}
			vertices = append(vertices, WaterVertex{
				Pos:  [3]float32{dir[0] * radius, dir[1] * radius, dir[2] * radius},
				Flat: [3]float32{u, v, flatHeight},
			})
		}
	}

	return &Water{
		Vertices: vertices,
		Indices:  gridIndices(),
	}
}

// gridIndices triangulates the lat/lon grid, two CCW triangles per quad.
func gridIndices() []uint32 {
	indices := make([]uint32, 0, (gridRes-1)*(gridLon-1)*6)
	for z := 0; z < gridRes-1; z++ {
		for x := 0; x < gridLon-1; x++ {
			i0 := uint32(z*gridLon + x)
			i1 := i0 + 1
			i2 := i0 + gridLon
			i3 := i2 + 1
			indices = append(indices, i0, i1, i2, i1, i3, i2)
		}
	}
	return indices
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
