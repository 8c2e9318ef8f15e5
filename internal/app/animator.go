package app

import (
	"github.com/chewxy/math32"

	"github.com/atlaslab/globeview/internal/config"
	"github.com/atlaslab/globeview/internal/mesh"
	"github.com/atlaslab/globeview/internal/morph"
)

// Animator advances the per-frame morph state: the globe's continuous spin
// and the eased globe-to-map transition.
type Animator struct {
	duration  float32
	spinSpeed float32

	t        float32
	target   float32
	rotation float32
}

// NewAnimator creates an animator from the morph configuration.
func NewAnimator(cfg config.MorphConfig) *Animator {
	a := &Animator{
		duration:  cfg.Duration,
		spinSpeed: cfg.SpinSpeed,
	}
	if a.duration <= 0 {
		a.duration = 1
	}
	if cfg.StartFlat {
		a.t = 1
		a.target = 1
	}
	return a
}

// Toggle flips the transition target between globe and flat map.
func (a *Animator) Toggle() {
	if a.target == 0 {
		a.target = 1
	} else {
		a.target = 0
	}
}

// Flat reports whether the current target is the flat map.
func (a *Animator) Flat() bool {
	return a.target == 1
}

// Update advances spin and transition by dt seconds.
func (a *Animator) Update(dt float32) {
	// The spin never stops; in map mode it shows up as horizontal scroll.
	a.rotation = math32.Mod(a.rotation+a.spinSpeed*dt, 2*math32.Pi)

	step := dt / a.duration
	if a.t < a.target {
		a.t += step
		if a.t > a.target {
			a.t = a.target
		}
	} else if a.t > a.target {
		a.t -= step
		if a.t < a.target {
			a.t = a.target
		}
	}
}

// State returns the morph state for the current frame.
func (a *Animator) State() morph.State {
	return morph.State{
		T:         a.t,
		Rotation:  a.rotation,
		MapWidth:  mesh.MapWidth,
		MapHeight: mesh.MapHeight,
	}
}
