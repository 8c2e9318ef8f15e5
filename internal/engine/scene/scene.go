package scene

import (
	"fmt"

	"github.com/atlaslab/globeview/internal/mesh"
	"github.com/atlaslab/globeview/internal/morph"
	"github.com/atlaslab/globeview/pkg/math"
)

// Scene owns the viewer's render layers and their draw order.
type Scene struct {
	Terrain *TerrainRenderer
	Water   *WaterRenderer
	Marker  *MarkerRenderer
}

// New creates all layer renderers. Requires a current GL context.
func New() (*Scene, error) {
	terrain, err := NewTerrainRenderer()
	if err != nil {
		return nil, err
	}

	water, err := NewWaterRenderer()
	if err != nil {
		terrain.Destroy()
		return nil, fmt.Errorf("water renderer: %w", err)
	}

	marker, err := NewMarkerRenderer()
	if err != nil {
		terrain.Destroy()
		water.Destroy()
		return nil, fmt.Errorf("marker renderer: %w", err)
	}

	return &Scene{Terrain: terrain, Water: water, Marker: marker}, nil
}

// Upload uploads all layer geometry.
func (s *Scene) Upload(terrain *mesh.Terrain, water *mesh.Water, markers []mesh.MarkerVertex) {
	s.Terrain.Upload(terrain)
	s.Water.Upload(water)
	s.Marker.Upload(markers)
}

// Render draws one frame: opaque terrain first, then blended water, then
// markers on top.
func (s *Scene) Render(viewProj math.Mat4, st morph.State, markerOffset math.Vec2) {
	s.Terrain.Render(viewProj, st)
	s.Water.Render(viewProj, st)
	s.Marker.Render(viewProj, markerOffset)
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	s.Terrain.Destroy()
	s.Water.Destroy()
	s.Marker.Destroy()
}
