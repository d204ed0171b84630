// Package ebitenhost runs a scene inside an Ebiten window.
package ebitenhost

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/internal/engine/debug"
	"github.com/Faultbox/wirecube/internal/engine/scene"
	"github.com/Faultbox/wirecube/internal/game/controls"
	"github.com/Faultbox/wirecube/internal/logger"
)

var keyBindings = map[ebiten.Key]controls.Key{
	ebiten.KeyW:         controls.KeyForward,
	ebiten.KeyS:         controls.KeyBack,
	ebiten.KeyA:         controls.KeyLeft,
	ebiten.KeyD:         controls.KeyRight,
	ebiten.KeySpace:     controls.KeyUp,
	ebiten.KeyShiftLeft: controls.KeyDown,
}

// Run opens a window and blocks until it is closed.
func Run(cfg *config.Config, sc *scene.Scene) error {
	h := New(cfg, sc)

	ebiten.SetWindowTitle(cfg.Graphics.Title)
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Graphics.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)
	if cfg.Graphics.FPSLimit > 0 {
		ebiten.SetTPS(cfg.Graphics.FPSLimit)
	}

	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Host implements ebiten.Game around a scene.
type Host struct {
	scene      *scene.Scene
	controller *controls.Controller
	screenshot *debug.ScreenshotCapture

	background color.RGBA
	lineColor  color.RGBA
	lineWidth  float32

	mouse          mouseTracker
	wantScreenshot bool
	log            *zap.Logger
}

// New creates a host. It does not open a window.
func New(cfg *config.Config, sc *scene.Scene) *Host {
	bg, lc := cfg.Render.Background, cfg.Render.LineColor
	h := &Host{
		scene:      sc,
		controller: controls.New(controls.SettingsFromConfig(cfg.Controls)),
		screenshot: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		background: color.RGBA{bg.R, bg.G, bg.B, 255},
		lineColor:  color.RGBA{lc.R, lc.G, lc.B, 255},
		lineWidth:  float32(cfg.Render.LineWidth),
		log:        logger.Named("ebiten"),
	}
	if err := h.screenshot.SetFormat(cfg.Screenshot.Format); err != nil {
		h.log.Warn("falling back to png screenshots", zap.Error(err))
	}
	return h
}

// Update reads input and moves the camera.
func (h *Host) Update() error {
	f := h.readInput()
	if f.Quit {
		return ebiten.Termination
	}

	if h.controller.Apply(h.scene.Camera, f) {
		if h.controller.Engaged {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
		h.mouse.reset()
		h.log.Debug("engage toggled", zap.Bool("engaged", h.controller.Engaged))
	}

	if f.Screenshot {
		h.wantScreenshot = true
	}
	return nil
}

func (h *Host) readInput() controls.Frame {
	var f controls.Frame

	f.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	f.Screenshot = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	f.ToggleEngage = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	for k, key := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			f.Keys[key] = true
		}
	}

	f.MouseDX, f.MouseDY = h.mouse.delta(ebiten.CursorPosition())
	return f
}

// Draw renders one frame of the scene.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.background)
	h.scene.Frame(&surface{dst: screen, clr: h.lineColor, width: h.lineWidth})

	if h.wantScreenshot {
		h.wantScreenshot = false
		h.capture(screen)
	}
}

func (h *Host) capture(screen *ebiten.Image) {
	b := screen.Bounds()
	img := image.NewRGBA(b)
	screen.ReadPixels(img.Pix)

	path, err := h.screenshot.CaptureFromImage(img)
	if err != nil {
		h.log.Error("screenshot failed", zap.Error(err))
		return
	}
	h.log.Info("screenshot saved", zap.String("path", path))
}

// Layout keeps one logical pixel per screen pixel and follows window resizes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	cam := h.scene.Camera
	if outsideWidth != cam.Width || outsideHeight != cam.Height {
		cam.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// surface strokes polygons onto an Ebiten image.
type surface struct {
	dst   *ebiten.Image
	clr   color.Color
	width float32
}

func (s *surface) DrawPolygon(points []image.Point) {
	if len(points) < 2 {
		return
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(s.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), s.width, s.clr, false)
	}
}

// mouseTracker turns absolute cursor positions into per-frame motion.
type mouseTracker struct {
	x, y  int
	valid bool
}

func (m *mouseTracker) delta(x, y int) (float64, float64) {
	if !m.valid {
		m.x, m.y, m.valid = x, y, true
		return 0, 0
	}
	dx, dy := x-m.x, y-m.y
	m.x, m.y = x, y
	return float64(dx), float64(dy)
}

// reset drops the last position so the jump caused by a cursor mode change
// is not read as motion.
func (m *mouseTracker) reset() {
	m.valid = false
}
