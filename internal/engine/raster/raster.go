// Package raster draws mesh outlines into an off-screen gogpu/gg canvas.
package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/nfnt/resize"
)

// Config describes the canvas.
type Config struct {
	Width      int
	Height     int
	Background [3]uint8
	LineColor  [3]uint8
	LineWidth  float64
}

// Surface is a software outline sink. It satisfies mesh.Surface.
type Surface struct {
	dc    *gg.Context
	cfg   Config
	err   error
	flush func() error
}

// New creates a canvas cleared to the background colour.
func New(cfg Config) (*Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = 1
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	s := &Surface{
		dc:    dc,
		cfg:   cfg,
		flush: dc.FlushGPU,
	}
	s.Clear()
	return s, nil
}

// Clear resets the canvas to the background colour and forgets stroke errors.
func (s *Surface) Clear() {
	bg := s.cfg.Background
	s.dc.ClearWithColor(gg.RGB(unit(bg[0]), unit(bg[1]), unit(bg[2])))
	s.err = nil
}

// DrawPolygon strokes a closed outline. Coordinates are shifted to pixel
// centres so one pixel wide lines stay crisp.
func (s *Surface) DrawPolygon(points []image.Point) {
	if len(points) < 2 {
		return
	}

	lc := s.cfg.LineColor
	s.dc.SetRGB(unit(lc[0]), unit(lc[1]), unit(lc[2]))
	s.dc.SetLineWidth(s.cfg.LineWidth)

	s.dc.MoveTo(float64(points[0].X)+0.5, float64(points[0].Y)+0.5)
	for _, p := range points[1:] {
		s.dc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	s.dc.ClosePath()

	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = fmt.Errorf("stroking polygon: %w", err)
	}
}

// Err returns the first stroke or flush error since the last Clear.
func (s *Surface) Err() error {
	return s.err
}

// Image returns the current canvas contents. A failed flush of pending
// accelerated drawing is reported by Err.
func (s *Surface) Image() image.Image {
	if err := s.flush(); err != nil && s.err == nil {
		s.err = fmt.Errorf("flushing canvas: %w", err)
	}
	return s.dc.Image()
}

// Thumbnail returns the canvas scaled to the given width, keeping aspect.
func (s *Surface) Thumbnail(width int) image.Image {
	return resize.Resize(uint(width), 0, s.Image(), resize.Bilinear)
}

// SavePNG writes the canvas to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Size returns the canvas dimensions.
func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

func unit(c uint8) float64 {
	return float64(c) / 255
}
