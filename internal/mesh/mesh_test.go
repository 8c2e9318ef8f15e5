package mesh

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestGenerateTerrainShape(t *testing.T) {
	m := GenerateTerrain(rand.New(rand.NewSource(1)))

	if got, want := len(m.Vertices), gridRes*gridLon; got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}
	if got, want := len(m.Indices), (gridRes-1)*(gridLon-1)*6; got != want {
		t.Fatalf("index count = %d, want %d", got, want)
	}

	max := uint32(len(m.Vertices))
	for _, i := range m.Indices {
		if i >= max {
			t.Fatalf("index %d out of range (%d vertices)", i, max)
		}
	}
}

func TestTerrainVertexInvariants(t *testing.T) {
	m := GenerateTerrain(rand.New(rand.NewSource(7)))

	for i, v := range m.Vertices {
		// Flat u/v stay in the map's parameter range.
		if v.Flat[0] < 0 || v.Flat[0] > 1 {
			t.Fatalf("vertex %d: u = %v outside [0,1]", i, v.Flat[0])
		}
		if v.Flat[1] < 0 || v.Flat[1] > 1 {
			t.Fatalf("vertex %d: v = %v outside [0,1]", i, v.Flat[1])
		}

		// Normals are unit length.
		n := v.Normal
		l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if l < 0.9999 || l > 1.0001 {
			t.Fatalf("vertex %d: normal length %v", i, l)
		}

		// The position sits on the normal ray at radius R+height: globe and
		// flat representations encode the same logical surface point.
		r := WorldRadius + v.Flat[2]
		for c := 0; c < 3; c++ {
			want := n[c] * r
			d := v.Pos[c] - want
			if d < -1e-4 || d > 1e-4 {
				t.Fatalf("vertex %d: pos[%d] = %v, want %v", i, c, v.Pos[c], want)
			}
		}

		// Colors stay in [0,1].
		for c := 0; c < 3; c++ {
			if v.Color[c] < 0 || v.Color[c] > 1 {
				t.Fatalf("vertex %d: color[%d] = %v outside [0,1]", i, c, v.Color[c])
			}
		}
	}
}

func TestTerrainSeamDuplicated(t *testing.T) {
	m := GenerateTerrain(rand.New(rand.NewSource(3)))

	// First and last column of each row share the longitude seam: u=0 and
	// u=1 describe the same meridian.
	first := m.Vertices[0]
	last := m.Vertices[gridLon-1]
	if first.Flat[0] != 0 || last.Flat[0] != 1 {
		t.Fatalf("seam u values = %v, %v; want 0 and 1", first.Flat[0], last.Flat[0])
	}
}

func TestGenerateWaterShape(t *testing.T) {
	m := GenerateWater()

	if got, want := len(m.Vertices), gridRes*gridLon; got != want {
		t.Fatalf("vertex count = %d, want %d", got, want)
	}

	// All vertices sit on the water sphere.
	radius := float32(WorldRadius + WaterLevel - globeWaterOffset)
	for i, v := range m.Vertices {
		l := math32.Sqrt(v.Pos[0]*v.Pos[0] + v.Pos[1]*v.Pos[1] + v.Pos[2]*v.Pos[2])
		if d := l - radius; d < -1e-3 || d > 1e-3 {
			t.Fatalf("vertex %d: radius %v, want %v", i, l, radius)
		}
		if h := v.Flat[2]; h != WaterLevel-flatWaterOffset {
			t.Fatalf("vertex %d: flat height %v, want %v", i, h, WaterLevel-flatWaterOffset)
		}
	}
}

func TestMapDimensionsUnrollSphere(t *testing.T) {
	if d := MapWidth - WorldRadius*2*math32.Pi; d != 0 {
		t.Errorf("map width should be the equator circumference, off by %v", d)
	}
	if d := MapHeight - WorldRadius*math32.Pi; d != 0 {
		t.Errorf("map height should be half the circumference, off by %v", d)
	}
}
