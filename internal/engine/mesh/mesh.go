// Package mesh holds quad mesh geometry and orders its faces for
// painter's-algorithm drawing.
package mesh

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/Faultbox/wirecube/internal/engine/camera"
	"github.com/Faultbox/wirecube/pkg/math"
)

// ErrFaceIndex is returned when a face references a missing vertex.
var ErrFaceIndex = errors.New("face index out of range")

// Face is a planar quad given as four vertex indices.
type Face [4]int

// outline lists face corners in drawing order. Corners 3 and 4 are swapped
// so the outline does not cross itself.
var outline = [4]int{0, 1, 3, 2}

// Surface receives polygon outlines in drawing order.
type Surface interface {
	DrawPolygon(points []image.Point)
}

// Mesh is static quad geometry plus the per-frame projection and face
// order caches.
type Mesh struct {
	vertices []math.Vec3
	faces    []Face
	metric   DepthMetric

	// Per-frame caches
	projected []camera.ScreenPoint
	order     []int
}

// Option configures a Mesh.
type Option func(*Mesh)

// WithDepthMetric sets the metric used to rank faces by distance.
func WithDepthMetric(m DepthMetric) Option {
	return func(ms *Mesh) { ms.metric = m }
}

// New creates a mesh after checking that every face index refers to a
// vertex. The slices are copied. An empty mesh is valid and draws nothing.
func New(vertices []math.Vec3, faces []Face, opts ...Option) (*Mesh, error) {
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex %d of %d: %w", i, idx, len(vertices), ErrFaceIndex)
			}
		}
	}

	m := &Mesh{
		vertices:  append([]math.Vec3(nil), vertices...),
		faces:     append([]Face(nil), faces...),
		metric:    ManhattanSum,
		projected: make([]camera.ScreenPoint, len(vertices)),
		order:     make([]int, len(faces)),
	}
	for i := range m.order {
		m.order[i] = i
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Vertices returns the vertex positions. The slice must not be modified.
func (m *Mesh) Vertices() []math.Vec3 {
	return m.vertices
}

// Faces returns the faces. The slice must not be modified.
func (m *Mesh) Faces() []Face {
	return m.faces
}

// Projected returns the projection cache from the last ComputeProjections.
func (m *Mesh) Projected() []camera.ScreenPoint {
	return m.projected
}

// Order returns the face indices from the last OrderFaces, farthest first.
func (m *Mesh) Order() []int {
	return m.order
}

// ComputeProjections projects every vertex with cam, replacing the
// projection cache.
func (m *Mesh) ComputeProjections(cam *camera.Camera) {
	for i, v := range m.vertices {
		m.projected[i] = cam.Project(v)
	}
}

// OrderFaces ranks faces by the mesh's depth metric relative to the camera
// position and stores them farthest first. Faces at equal depth keep their
// declaration order.
func (m *Mesh) OrderFaces(cam *camera.Camera) {
	depth := make([]float64, len(m.faces))
	for i, f := range m.faces {
		depth[i] = m.metric(m.corners(f), cam.Position)
		m.order[i] = i
	}

	sort.SliceStable(m.order, func(a, b int) bool {
		return depth[m.order[a]] > depth[m.order[b]]
	})
}

// Draw sends each face outline to s in the cached order and returns the
// number of faces drawn. A face with any corner that did not project is
// skipped.
func (m *Mesh) Draw(s Surface) int {
	drawn := 0
	points := make([]image.Point, 0, len(outline))

	for _, fi := range m.order {
		f := m.faces[fi]

		points = points[:0]
		for _, corner := range outline {
			p := m.projected[f[corner]]
			if !p.Visible {
				break
			}
			points = append(points, p.Point())
		}
		if len(points) != len(outline) {
			continue
		}

		s.DrawPolygon(points)
		drawn++
	}
	return drawn
}

func (m *Mesh) corners(f Face) [4]math.Vec3 {
	return [4]math.Vec3{m.vertices[f[0]], m.vertices[f[1]], m.vertices[f[2]], m.vertices[f[3]]}
}
