// Package game implements the SDL viewer loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/internal/engine/debug"
	"github.com/Faultbox/wirecube/internal/engine/input"
	"github.com/Faultbox/wirecube/internal/engine/renderer"
	"github.com/Faultbox/wirecube/internal/engine/scene"
	"github.com/Faultbox/wirecube/internal/engine/window"
	"github.com/Faultbox/wirecube/internal/game/controls"
	"github.com/Faultbox/wirecube/internal/logger"
)

// Game is the viewer instance.
type Game struct {
	config     *config.Config
	running    bool
	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	scene      *scene.Scene
	controller *controls.Controller
	screenshot *debug.ScreenshotCapture
	limiter    *frameLimiter
	log        *zap.Logger
}

// New opens the window and prepares the scene.
func New(cfg *config.Config, sc *scene.Scene) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		config:     cfg,
		scene:      sc,
		controller: controls.New(controls.SettingsFromConfig(cfg.Controls)),
		screenshot: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		limiter:    newFrameLimiter(cfg.Graphics.FPSLimit),
		log:        log,
	}

	if err := g.screenshot.SetFormat(cfg.Screenshot.Format); err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Fullscreen may not honour the requested size
	width, height := g.window.GetSize()
	sc.Camera.Resize(width, height)

	bg, lc := cfg.Render.Background, cfg.Render.LineColor
	g.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: [3]uint8{bg.R, bg.G, bg.B},
		LineColor:  [3]uint8{lc.R, lc.G, lc.B},
		LineWidth:  float32(cfg.Render.LineWidth),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	log.Info("viewer initialized, click to engage mouselook")
	return g, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting frame loop")

	for g.running {
		frameStart := time.Now()

		// 1. Input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(event.Width, event.Height)
				g.scene.Camera.Resize(event.Width, event.Height)
			}
		}

		// 2. Camera
		frame := g.input.Frame()
		if g.controller.Apply(g.scene.Camera, frame) {
			g.input.SetCaptured(g.controller.Engaged)
			g.log.Debug("engage toggled", zap.Bool("engaged", g.controller.Engaged))
		}

		// 3. Project, order and draw
		g.renderer.Begin()
		g.scene.Frame(g.renderer)
		g.renderer.End()

		if frame.Screenshot {
			g.takeScreenshot()
		}

		// 4. Present
		g.window.SwapBuffers()
		g.limiter.wait(frameStart)

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) takeScreenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	if width == 0 || height == 0 {
		g.log.Warn("screenshot skipped, window has no area")
		return
	}
	path, err := g.screenshot.CaptureFromPixels(pixels, width, height)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
