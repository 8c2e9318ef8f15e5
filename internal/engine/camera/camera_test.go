package camera

import (
	"testing"

	"github.com/atlaslab/globeview/pkg/math"
)

func TestEyeDistance(t *testing.T) {
	c := New(10)
	eye := c.Eye()
	d := eye.Distance(c.Center)
	if d < c.Distance-1e-3 || d > c.Distance+1e-3 {
		t.Errorf("eye distance = %v, want %v", d, c.Distance)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := New(10)
	c.Drag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MaxPitch)
	}
	c.Drag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New(10)
	for i := 0; i < 100; i++ {
		c.Zoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	for i := 0; i < 100; i++ {
		c.Zoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestViewProjCenterVisible(t *testing.T) {
	c := New(10)
	vp := c.ViewProj(16.0 / 9.0)

	// The orbit center projects inside the clip volume.
	clip := vp.MulVec4(math.Vec4{c.Center.X, c.Center.Y, c.Center.Z, 1})
	if clip[3] <= 0 {
		t.Fatalf("center behind camera, w = %v", clip[3])
	}
	for i := 0; i < 3; i++ {
		ndc := clip[i] / clip[3]
		if ndc < -1 || ndc > 1 {
			t.Errorf("center NDC[%d] = %v, outside [-1,1]", i, ndc)
		}
	}
}
