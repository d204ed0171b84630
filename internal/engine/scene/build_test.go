package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/pkg/math"
)

func TestFromConfigDefaults(t *testing.T) {
	cfg := config.Default()

	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}

	if len(s.Mesh.Vertices()) != 8 || len(s.Mesh.Faces()) != 6 {
		t.Errorf("expected the built-in cube, got %d vertices %d faces",
			len(s.Mesh.Vertices()), len(s.Mesh.Faces()))
	}
	if s.Camera.Width != 1280 || s.Camera.Height != 640 {
		t.Errorf("viewport = %dx%d, want 1280x640", s.Camera.Width, s.Camera.Height)
	}
	if s.Camera.FocalLength != 1280.0/3 {
		t.Errorf("focal length = %v, want %v", s.Camera.FocalLength, 1280.0/3)
	}
	if s.Camera.Pitch != math.QuarterTurn {
		t.Errorf("pitch = %v, want quarter turn", s.Camera.Pitch)
	}
	if s.Camera.NearClip != 10 {
		t.Errorf("near clip = %v, want 10", s.Camera.NearClip)
	}
}

func TestFromConfigMeshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.yaml")
	data := []byte(`vertices:
  - [-10, 100, -10]
  - [10, 100, -10]
  - [-10, 100, 10]
  - [10, 100, 10]
faces:
  - [0, 1, 2, 3]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing mesh: %v", err)
	}

	cfg := config.Default()
	cfg.Scene.MeshFile = path
	cfg.Render.DepthMetric = "centroid"

	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}
	if len(s.Mesh.Faces()) != 1 {
		t.Errorf("expected 1 face, got %d", len(s.Mesh.Faces()))
	}

	stats := s.Frame(&countingSurface{})
	if stats.Drawn != 1 {
		t.Errorf("expected the quad drawn, got %+v", stats)
	}
}

func TestFromConfigErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Render.DepthMetric = "zbuffer"
	if _, err := FromConfig(cfg); err == nil {
		t.Error("expected error for unknown metric")
	}

	cfg = config.Default()
	cfg.Scene.MeshFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := FromConfig(cfg); err == nil {
		t.Error("expected error for missing mesh file")
	}
}
