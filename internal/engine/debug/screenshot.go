// Package debug provides screenshot capture for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// ScreenshotCapture writes screenshots with timestamped names.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string // file extension without the dot

	now  func() time.Time
	last string // last generated stem, used to disambiguate same-second shots
	seq  int
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    "png",
		now:       time.Now,
	}
}

// SetFormat selects png or bmp output.
func (sc *ScreenshotCapture) SetFormat(format string) error {
	switch format {
	case "png", "bmp":
		sc.format = format
		return nil
	default:
		return fmt.Errorf("unsupported screenshot format %q", format)
	}
}

// CaptureFromPixels saves raw RGBA pixel data with width*height*4 bytes.
// Rows are expected bottom first, as glReadPixels returns them, and are
// flipped while copying.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := ImageFromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves an existing image.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	if err := WriteImage(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateFilename returns the next screenshot path without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	stem := fmt.Sprintf("%s_%s", sc.prefix, sc.now().Format("2006-01-02_15-04-05"))
	if stem == sc.last {
		sc.seq++
	} else {
		sc.last = stem
		sc.seq = 0
	}

	filename := stem + "." + sc.format
	if sc.seq > 0 {
		filename = fmt.Sprintf("%s_%d.%s", stem, sc.seq, sc.format)
	}
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// ImageFromPixels converts bottom-up RGBA rows into a top-down image.
func ImageFromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// WriteImage encodes img to path, as BMP for a .bmp extension and PNG
// otherwise.
func WriteImage(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(file, img)
	} else {
		err = png.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
