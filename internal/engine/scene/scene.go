// Package scene ties a camera and a mesh into one drawable frame.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/wirecube/internal/engine/camera"
	"github.com/Faultbox/wirecube/internal/engine/mesh"
	"github.com/Faultbox/wirecube/internal/logger"
)

// Stats describes one drawn frame.
type Stats struct {
	Faces   int // faces in the mesh
	Drawn   int // faces sent to the surface
	Skipped int // faces with a corner behind the near clip distance
}

// Scene is the per-run frame context: the camera that input moves and the
// mesh drawn from it.
type Scene struct {
	Camera *camera.Camera
	Mesh   *mesh.Mesh

	frames uint64
	log    *zap.Logger
}

// New creates a scene.
func New(cam *camera.Camera, m *mesh.Mesh) *Scene {
	return &Scene{
		Camera: cam,
		Mesh:   m,
		log:    logger.Named("scene"),
	}
}

// Frame projects the mesh from the current camera pose, orders its faces
// and draws them onto s, in that order.
func (s *Scene) Frame(surface mesh.Surface) Stats {
	s.Mesh.ComputeProjections(s.Camera)
	s.Mesh.OrderFaces(s.Camera)
	drawn := s.Mesh.Draw(surface)

	s.frames++
	stats := Stats{
		Faces:   len(s.Mesh.Faces()),
		Drawn:   drawn,
		Skipped: len(s.Mesh.Faces()) - drawn,
	}

	if ce := s.log.Check(zap.DebugLevel, "frame"); ce != nil {
		ce.Write(
			zap.Uint64("frame", s.frames),
			zap.Int("drawn", stats.Drawn),
			zap.Int("skipped", stats.Skipped),
			zap.Float64("x", s.Camera.Position.X),
			zap.Float64("y", s.Camera.Position.Y),
			zap.Float64("z", s.Camera.Position.Z),
		)
	}
	return stats
}

// Frames returns how many frames have been drawn.
func (s *Scene) Frames() uint64 {
	return s.frames
}
