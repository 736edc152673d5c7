// Package app implements the viewer main loop: window, input, camera, light
// animation, and mesh rebuild plumbing.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripplegl/internal/config"
	"github.com/Faultbox/ripplegl/internal/engine/camera"
	"github.com/Faultbox/ripplegl/internal/engine/debug"
	"github.com/Faultbox/ripplegl/internal/engine/input"
	"github.com/Faultbox/ripplegl/internal/engine/lighting"
	"github.com/Faultbox/ripplegl/internal/engine/renderer"
	"github.com/Faultbox/ripplegl/internal/engine/scene"
	"github.com/Faultbox/ripplegl/internal/engine/surface"
	"github.com/Faultbox/ripplegl/internal/engine/texture"
	"github.com/Faultbox/ripplegl/internal/engine/window"
	"github.com/Faultbox/ripplegl/internal/logger"
	"github.com/Faultbox/ripplegl/pkg/math"
)

// App is the viewer application.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	renderer *renderer.Renderer
	surfRend *scene.SurfaceRenderer
	camera   *camera.OrbitCamera
	capture  *debug.ScreenshotCapture

	params surface.Params
	res    surface.Resolution

	light lighting.PointLight
	orbit lighting.Orbit

	dragging  bool
	startTime time.Time
}

// New creates the viewer: window, GL state, texture, and the initial mesh.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		params: surface.Params{
			Amplitude: cfg.Surface.Amplitude,
			Decay:     cfg.Surface.Decay,
			Frequency: cfg.Surface.Frequency,
			Radius:    cfg.Surface.Radius,
			Phase:     cfg.Surface.Phase,
		},
		res: surface.Resolution{
			Rings:    cfg.Surface.Rings,
			Segments: cfg.Surface.Segments,
		},
		light: lighting.PointLight{
			Color:     cfg.Light.Color,
			Intensity: cfg.Light.Intensity,
		},
		orbit: lighting.Orbit{
			Radius: cfg.Light.OrbitRadius,
			Height: cfg.Light.OrbitHeight,
			Speed:  cfg.Light.OrbitSpeed,
		},
		startTime: time.Now(),
	}
	a.light.ClampColor()

	var err error
	a.window, err = window.New(window.Config{
		Title:      "RippleGL",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.surfRend, err = scene.NewSurfaceRenderer()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create surface renderer: %w", err)
	}
	a.surfRend.UVScale = cfg.Surface.UVScale

	chain, err := texture.BuildMipChain(texture.DefaultSize)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build texture: %w", err)
	}
	a.surfRend.SetTexture(texture.Upload(chain))

	a.input = input.New()
	a.camera = camera.New()
	a.camera.FitToRadius(float32(a.params.Radius))
	a.capture = debug.NewScreenshotCapture(cfg.Capture.Dir, "ripple", cfg.Capture.Format)

	if err := a.rebuild(); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// vertexLimit maps the configured rebuild cap to a builder limit. Zero and
// negative values select the library default instead of disabling the cap.
func vertexLimit(configured int) int {
	if configured <= 0 {
		return surface.DefaultMaxVertices
	}
	return configured
}

// rebuild regenerates the mesh from the current parameters and uploads it.
// On failure the previous mesh stays on the GPU untouched.
func (a *App) rebuild() error {
	start := time.Now()
	mesh, err := surface.BuildWithLimit(a.res, a.params, vertexLimit(a.cfg.Surface.MaxVertices))
	if err != nil {
		return fmt.Errorf("mesh rebuild failed: %w", err)
	}

	a.surfRend.Upload(mesh)
	logger.Debug("mesh rebuilt",
		zap.Int("rings", a.res.Rings),
		zap.Int("segments", a.res.Segments),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting viewer loop")

	for a.running {
		if a.input.Update() {
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// Animate the light along its orbit.
		t := time.Since(a.startTime).Seconds()
		a.light.Position = a.orbit.PositionAt(t)

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// aspectRatio guards against a zero-height drawable while minimized.
func aspectRatio(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (a *App) render() {
	a.renderer.Begin()

	width, height := a.window.GetSize()
	proj := math.Perspective(0.9, aspectRatio(width, height), 0.1, 500)
	viewProj := proj.Mul(a.camera.ViewMatrix())

	a.surfRend.Render(viewProj, a.camera.Position(), a.light)
}

func (a *App) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		a.renderer.Resize(e.Width, e.Height)

	case input.EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			a.dragging = true
		}

	case input.EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			a.dragging = false
		}

	case input.EventMouseMove:
		if a.dragging {
			a.camera.HandleDrag(float32(e.RelX), float32(e.RelY))
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(e.Wheel)

	case input.EventKeyDown:
		a.handleKey(e.Key)
	}
}

// handleKey adjusts surface parameters from the keyboard, standing in for
// the parameter sliders: Q/A amplitude, W/S decay, E/D frequency,
// R/F radius, T/G phase, brackets segments, -/= rings, ,/. UV scale.
func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
		return

	case sdl.SCANCODE_F12:
		a.screenshot()
		return

	case sdl.SCANCODE_Q:
		a.params.Amplitude += 0.25
	case sdl.SCANCODE_A:
		a.params.Amplitude -= 0.25
	case sdl.SCANCODE_W:
		a.params.Decay += 0.05
	case sdl.SCANCODE_S:
		a.params.Decay -= 0.05
	case sdl.SCANCODE_E:
		a.params.Frequency += 0.5
	case sdl.SCANCODE_D:
		a.params.Frequency -= 0.5
	case sdl.SCANCODE_R:
		a.params.Radius += 0.5
		a.camera.FitToRadius(float32(a.params.Radius))
	case sdl.SCANCODE_F:
		if a.params.Radius > 0.5 {
			a.params.Radius -= 0.5
			a.camera.FitToRadius(float32(a.params.Radius))
		}
	case sdl.SCANCODE_T:
		a.params.Phase += 0.1
	case sdl.SCANCODE_G:
		a.params.Phase -= 0.1

	case sdl.SCANCODE_RIGHTBRACKET:
		a.res.Segments += 8
	case sdl.SCANCODE_LEFTBRACKET:
		a.res.Segments -= 8 // Build clamps to the minimum
	case sdl.SCANCODE_EQUALS:
		a.res.Rings += 4
	case sdl.SCANCODE_MINUS:
		a.res.Rings -= 4

	case sdl.SCANCODE_PERIOD:
		a.surfRend.UVScale += 0.5
		return
	case sdl.SCANCODE_COMMA:
		if a.surfRend.UVScale > 0.5 {
			a.surfRend.UVScale -= 0.5
		}
		return

	default:
		return
	}

	if err := a.rebuild(); err != nil {
		// Keep showing the previous mesh; the parameters stay as entered so
		// the user can correct them.
		logger.Error("rebuild", zap.Error(err))
	}
}

func (a *App) screenshot() {
	width, height := a.window.GetDrawableSize()
	pixels := a.renderer.ReadPixels(width, height)

	path, err := a.capture.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up all resources.
func (a *App) Close() {
	slog.Info("closing viewer")

	if a.surfRend != nil {
		a.surfRend.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
