// Package main renders mesh frames to PNG files without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/internal/engine/debug"
	"github.com/Faultbox/wirecube/internal/engine/raster"
	"github.com/Faultbox/wirecube/internal/engine/scene"
	"github.com/Faultbox/wirecube/internal/logger"
)

var (
	flagOut    = flag.String("out", "", "Output PNG path for a single frame (default: timestamped file in the screenshot dir)")
	flagFrames = flag.Int("frames", 1, "Number of frames to render while orbiting the mesh")
	flagThumb  = flag.Int("thumb", 0, "Also write a thumbnail of this width (0 = none)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("cubeshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	sc, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	bg, lc := cfg.Render.Background, cfg.Render.LineColor
	surf, err := raster.New(raster.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Background: [3]uint8{bg.R, bg.G, bg.B},
		LineColor:  [3]uint8{lc.R, lc.G, lc.B},
		LineWidth:  cfg.Render.LineWidth,
	})
	if err != nil {
		return err
	}
	defer surf.Close()

	capture := debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)
	if err := capture.SetFormat(cfg.Screenshot.Format); err != nil {
		return err
	}
	frames := max(*flagFrames, 1)
	var orb orbit
	if frames > 1 {
		if orb, err = newOrbit(sc); err != nil {
			return err
		}
	}

	for i := 0; i < frames; i++ {
		if frames > 1 {
			orb.pose(sc.Camera, i, frames)
		}

		surf.Clear()
		stats := sc.Frame(surf)
		if err := surf.Err(); err != nil {
			return err
		}

		path, err := writeFrame(surf, capture, i, frames)
		if err != nil {
			return err
		}
		logger.Info("frame written",
			zap.String("path", path),
			zap.Int("drawn", stats.Drawn),
			zap.Int("skipped", stats.Skipped),
		)

		if *flagThumb > 0 {
			thumbPath := thumbnailPath(path)
			if err := debug.WriteImage(thumbPath, surf.Thumbnail(*flagThumb)); err != nil {
				return err
			}
			logger.Debug("thumbnail written", zap.String("path", thumbPath))
		}
	}
	return nil
}

func writeFrame(surf *raster.Surface, capture *debug.ScreenshotCapture, i, frames int) (string, error) {
	if *flagOut == "" {
		return capture.CaptureFromImage(surf.Image())
	}

	path := *flagOut
	if frames > 1 {
		path = sequencePath(path, i)
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path, surf.SavePNG(path)
	}
	return path, debug.WriteImage(path, surf.Image())
}

// sequencePath turns out.png into out_007.png.
func sequencePath(out string, i int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%03d%s", out[:len(out)-len(ext)], i, ext)
}

func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_thumb" + ext
}
