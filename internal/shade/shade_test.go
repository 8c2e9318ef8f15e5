package shade

import (
	"testing"

	"github.com/atlaslab/globeview/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-5
}

func TestLightDirUnit(t *testing.T) {
	if l := LightDir.Length(); !near(l, 1) {
		t.Errorf("LightDir length = %v, want 1", l)
	}
}

func TestTerrainLitFacingLight(t *testing.T) {
	// A normal pointing straight at the light gets the full ambient+diffuse.
	c := TerrainLit(LightDir, math.Vec3{X: 1, Y: 1, Z: 1})
	if !near(c.R, Ambient+Diffuse) || !near(c.G, Ambient+Diffuse) || !near(c.B, Ambient+Diffuse) {
		t.Errorf("facing light: got %+v, want all %v", c, Ambient+Diffuse)
	}
	if c.A != 1 {
		t.Errorf("terrain should be opaque, alpha = %v", c.A)
	}
}

func TestTerrainLitFacingAway(t *testing.T) {
	// A normal facing away only gets the ambient floor; the diffuse term
	// clamps at zero rather than going negative.
	away := LightDir.Scale(-1)
	c := TerrainLit(away, math.Vec3{X: 1, Y: 0.5, Z: 0.25})
	if !near(c.R, Ambient) || !near(c.G, 0.5*Ambient) || !near(c.B, 0.25*Ambient) {
		t.Errorf("facing away: got %+v, want ambient-only", c)
	}
}

func TestTerrainLitNormalizesInput(t *testing.T) {
	n := LightDir.Scale(7) // same direction, wrong length
	a := TerrainLit(n, math.Vec3{X: 1, Y: 1, Z: 1})
	b := TerrainLit(LightDir, math.Vec3{X: 1, Y: 1, Z: 1})
	if !near(a.R, b.R) {
		t.Errorf("shading should not depend on normal length: %v vs %v", a.R, b.R)
	}
}

func TestTerrainUnlit(t *testing.T) {
	c := TerrainUnlit(math.Vec3{X: 0.2, Y: 0.4, Z: 0.6})
	want := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	if c != want {
		t.Errorf("unlit terrain = %+v, want %+v", c, want)
	}
}

func TestMarkerPassThrough(t *testing.T) {
	c := Marker(math.Vec3{X: 0.9, Y: 0.25, Z: 0.2})
	want := RGBA{R: 0.9, G: 0.25, B: 0.2, A: 1}
	if c != want {
		t.Errorf("marker color = %+v, want %+v", c, want)
	}
}

func TestWaterColorConstant(t *testing.T) {
	want := RGBA{R: 0.08, G: 0.32, B: 0.5, A: 0.55}
	if WaterColor != want {
		t.Errorf("water color = %+v, want %+v", WaterColor, want)
	}
}
