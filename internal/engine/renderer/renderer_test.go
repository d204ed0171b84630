package renderer

import "testing"

func TestReadPixelsEmptyViewport(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"minimised", 0, 0},
		{"zero width", 0, 480},
		{"zero height", 640, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{config: Config{Width: tt.width, Height: tt.height}}

			pixels, w, h := r.ReadPixels()
			if pixels != nil || w != 0 || h != 0 {
				t.Errorf("ReadPixels() = %d bytes %dx%d, want nothing", len(pixels), w, h)
			}
		})
	}
}
