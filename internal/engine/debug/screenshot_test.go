package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 12, 30, 5, 0, time.UTC)
}

func TestImageFromPixelsFlips(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (bottom-up order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := ImageFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("ImageFromPixels() error: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestImageFromPixelsSizeMismatch(t *testing.T) {
	if _, err := ImageFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "wirecube")
	sc.now = fixedClock

	first := sc.GenerateFilename()
	want := filepath.Join("shots", "wirecube_2026-10-19_12-30-05.png")
	if first != want {
		t.Errorf("GenerateFilename() = %s, want %s", first, want)
	}

	second := sc.GenerateFilename()
	if second == first || !strings.HasSuffix(second, "_1.png") {
		t.Errorf("second shot in the same second should get a suffix, got %s", second)
	}
}

func TestCaptureFromImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sc := NewScreenshotCapture(dir, "test")
	sc.now = fixedClock

	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.Set(2, 1, color.RGBA{200, 200, 200, 255})

	path, err := sc.CaptureFromImage(src)
	if err != nil {
		t.Fatalf("CaptureFromImage() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("unexpected size %v", decoded.Bounds())
	}
	r, _, _, _ := decoded.At(2, 1).RGBA()
	if r>>8 != 200 {
		t.Errorf("pixel (2,1) red = %d, want 200", r>>8)
	}
}

func TestCaptureBMP(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	sc.now = fixedClock

	if err := sc.SetFormat("gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if err := sc.SetFormat("bmp"); err != nil {
		t.Fatalf("SetFormat(bmp) error: %v", err)
	}

	path, err := sc.CaptureFromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatalf("CaptureFromImage() error: %v", err)
	}
	if !strings.HasSuffix(path, ".bmp") {
		t.Errorf("expected .bmp file, got %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := bmp.Decode(f); err != nil {
		t.Errorf("decoding BMP: %v", err)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "gl")
	sc.now = fixedClock

	if _, err := sc.CaptureFromPixels(make([]byte, 2*2*4), 2, 2); err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}
