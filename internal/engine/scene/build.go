package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/internal/engine/camera"
	"github.com/Faultbox/wirecube/internal/engine/mesh"
	"github.com/Faultbox/wirecube/pkg/math"
)

// FromConfig builds the camera and mesh described by cfg. Without a mesh
// file the built-in cube is used.
func FromConfig(cfg *config.Config) (*Scene, error) {
	metric, ok := mesh.MetricByName(cfg.Render.DepthMetric)
	if !ok {
		return nil, fmt.Errorf("unknown depth metric %q", cfg.Render.DepthMetric)
	}

	var m *mesh.Mesh
	if path := cfg.Scene.MeshFile; path != "" {
		var err error
		m, err = mesh.LoadFile(path, mesh.WithDepthMetric(metric))
		if err != nil {
			return nil, err
		}
	} else {
		m = mesh.ReferenceCube(mesh.WithDepthMetric(metric))
	}

	cam := camera.New(
		math.Vec3{X: cfg.Camera.X, Y: cfg.Camera.Y, Z: cfg.Camera.Z},
		cfg.FocalLength(),
		cfg.Graphics.Width,
		cfg.Graphics.Height,
		camera.WithNearClip(cfg.Camera.NearClip),
		camera.WithYaw(cfg.Camera.Yaw),
		camera.WithPitch(cfg.Camera.Pitch),
		camera.WithRoll(cfg.Camera.Roll),
	)

	s := New(cam, m)
	s.log.Info("scene ready",
		zap.Int("vertices", len(m.Vertices())),
		zap.Int("faces", len(m.Faces())),
		zap.String("metric", cfg.Render.DepthMetric),
		zap.String("mesh", cfg.Scene.MeshFile),
	)
	return s, nil
}
