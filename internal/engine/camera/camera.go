// Package camera provides the viewer's orbit camera.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/atlaslab/globeview/pkg/math"
)

// Orbit orbits around a center point and produces the per-frame
// view-projection matrix consumed by the shaders.
type Orbit struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // distance from center
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Projection
	FovY float32 // radians
	Near float32
	Far  float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// New creates an orbit camera framing a globe of the given radius.
func New(worldRadius float32) *Orbit {
	return &Orbit{
		Distance:        worldRadius * 3,
		Pitch:           0.5,
		FovY:            50 * math32.Pi / 180,
		Near:            0.1,
		Far:             worldRadius * 20,
		MinDistance:     worldRadius * 1.2,
		MaxDistance:     worldRadius * 12,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Eye returns the camera position in world space.
func (c *Orbit) Eye() math.Vec3 {
	cosPitch := math32.Cos(c.Pitch)
	return math.Vec3{
		X: c.Center.X + c.Distance*cosPitch*math32.Sin(c.Yaw),
		Y: c.Center.Y + c.Distance*math32.Sin(c.Pitch),
		Z: c.Center.Z + c.Distance*cosPitch*math32.Cos(c.Yaw),
	}
}

// ViewProj returns the combined view-projection matrix for the given aspect
// ratio (width/height).
func (c *Orbit) ViewProj(aspect float32) math.Mat4 {
	view := math.LookAt(c.Eye(), c.Center, math.Vec3{Y: 1})
	proj := math.Perspective(c.FovY, aspect, c.Near, c.Far)
	return proj.Mul(view)
}

// Drag updates yaw and pitch from a mouse drag delta.
func (c *Orbit) Drag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Zoom updates distance from a scroll wheel delta. Zoom speed scales with
// distance so it feels uniform near and far.
func (c *Orbit) Zoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
