// Package app implements the viewer's main loop.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/atlaslab/globeview/internal/config"
	"github.com/atlaslab/globeview/internal/engine/camera"
	"github.com/atlaslab/globeview/internal/engine/input"
	"github.com/atlaslab/globeview/internal/engine/scene"
	"github.com/atlaslab/globeview/internal/engine/window"
	"github.com/atlaslab/globeview/internal/logger"
	"github.com/atlaslab/globeview/internal/mesh"
	"github.com/atlaslab/globeview/pkg/math"
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	cam    *camera.Orbit
	scene  *scene.Scene
	anim   *Animator

	rng          *rand.Rand
	markerOffset math.Vec2

	width  int
	height int
}

// New creates the viewer: window, GL resources and initial geometry.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "globeview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Scene needs the GL context the window just created.
	a.scene, err = scene.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.input = input.New()
	a.cam = camera.New(mesh.WorldRadius)
	a.anim = NewAnimator(cfg.Morph)

	a.uploadGeometry()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.05, 0.08, 0.1, 1.0)

	logger.Info("viewer initialized")
	return a, nil
}

func (a *App) uploadGeometry() {
	terrain := mesh.GenerateTerrain(a.rng)
	water := mesh.GenerateWater()
	markers := mesh.MarkerQuad(
		[3]float32{0, mesh.WorldRadius + 2, 0},
		a.cfg.Marker.Size,
		[3]float32{0.9, 0.25, 0.2},
	)
	a.scene.Upload(terrain, water, markers)
}

// Run starts the main loop and blocks until the viewer quits.
func (a *App) Run() error {
	a.running = true
	lastTime := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.update(dt)
		a.render()
		a.window.Swap()
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.width = event.Width
			a.height = event.Height
			gl.Viewport(0, 0, int32(event.Width), int32(event.Height))

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_M:
				a.anim.Toggle()
				logger.Debug("morph target toggled", zap.Bool("flat", a.anim.Flat()))
			case sdl.SCANCODE_R:
				terrain := mesh.GenerateTerrain(a.rng)
				a.scene.Terrain.Upload(terrain)
				logger.Debug("terrain randomized")
			}

		case input.EventMouseMove:
			if event.Left {
				a.cam.Drag(float32(event.DeltaX), float32(event.DeltaY))
			}

		case input.EventMouseWheel:
			a.cam.Zoom(float32(event.Wheel))
		}
	}
}

func (a *App) update(dt float32) {
	a.anim.Update(dt)

	// WASD pans the marker overlay across the map.
	dx, dy := a.input.PanAxes()
	if dx != 0 || dy != 0 {
		dir := math.Vec2{X: dx, Y: -dy}.Normalize()
		a.markerOffset = a.markerOffset.Add(dir.Scale(a.cfg.Marker.PanSpeed * dt * mesh.WorldRadius * 0.12))
	}
}

func (a *App) render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(a.width) / float32(max(a.height, 1))
	viewProj := a.cam.ViewProj(aspect)
	a.scene.Render(viewProj, a.anim.State(), a.markerOffset)
}

// Close releases all resources.
func (a *App) Close() {
	if a.scene != nil {
		a.scene.Destroy()
		a.scene = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
