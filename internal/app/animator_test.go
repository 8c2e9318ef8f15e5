package app

import (
	"testing"

	"github.com/atlaslab/globeview/internal/config"
	"github.com/atlaslab/globeview/internal/mesh"
)

func TestAnimatorStartsOnTarget(t *testing.T) {
	a := NewAnimator(config.MorphConfig{Duration: 1, SpinSpeed: 0})
	if st := a.State(); st.T != 0 {
		t.Errorf("globe start: T = %v, want 0", st.T)
	}

	a = NewAnimator(config.MorphConfig{Duration: 1, SpinSpeed: 0, StartFlat: true})
	if st := a.State(); st.T != 1 {
		t.Errorf("flat start: T = %v, want 1", st.T)
	}
}

func TestAnimatorTransition(t *testing.T) {
	a := NewAnimator(config.MorphConfig{Duration: 2, SpinSpeed: 0})
	a.Toggle()

	a.Update(1)
	if st := a.State(); st.T < 0.49 || st.T > 0.51 {
		t.Errorf("halfway: T = %v, want ~0.5", st.T)
	}

	// Overshooting the duration settles exactly on the target.
	a.Update(5)
	if st := a.State(); st.T != 1 {
		t.Errorf("settled: T = %v, want exactly 1", st.T)
	}

	a.Toggle()
	a.Update(5)
	if st := a.State(); st.T != 0 {
		t.Errorf("back to globe: T = %v, want exactly 0", st.T)
	}
}

func TestAnimatorSpinWraps(t *testing.T) {
	a := NewAnimator(config.MorphConfig{Duration: 1, SpinSpeed: 1})
	for i := 0; i < 100; i++ {
		a.Update(1)
	}
	st := a.State()
	if st.Rotation < 0 || st.Rotation >= 2*3.14159266 {
		t.Errorf("rotation = %v, want wrapped into [0, 2pi)", st.Rotation)
	}
}

func TestAnimatorStateCarriesMapDimensions(t *testing.T) {
	a := NewAnimator(config.MorphConfig{Duration: 1})
	st := a.State()
	if st.MapWidth != mesh.MapWidth || st.MapHeight != mesh.MapHeight {
		t.Errorf("map dims = (%v, %v), want (%v, %v)",
			st.MapWidth, st.MapHeight, mesh.MapWidth, mesh.MapHeight)
	}
}
