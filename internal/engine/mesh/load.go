package mesh

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wirecube/pkg/math"
)

// ErrFaceArity is returned when a mesh file lists a face or vertex with the
// wrong number of components.
var ErrFaceArity = errors.New("wrong number of components")

// Definition is the on-disk form of a mesh.
//
//	vertices:
//	  - [-25, 325, -25]
//	faces:
//	  - [0, 1, 2, 3]
type Definition struct {
	Vertices [][]float64 `yaml:"vertices"`
	Faces    [][]int     `yaml:"faces"`
}

// Parse decodes a YAML mesh definition and builds the mesh.
func Parse(data []byte, opts ...Option) (*Mesh, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decoding mesh: %w", err)
	}
	return def.Build(opts...)
}

// LoadFile reads a YAML mesh definition from path.
func LoadFile(path string, opts ...Option) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Build validates the definition and creates the mesh.
func (d Definition) Build(opts ...Option) (*Mesh, error) {
	vertices := make([]math.Vec3, len(d.Vertices))
	for i, v := range d.Vertices {
		if len(v) != 3 {
			return nil, fmt.Errorf("vertex %d has %d components: %w", i, len(v), ErrFaceArity)
		}
		vertices[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}

	faces := make([]Face, len(d.Faces))
	for i, f := range d.Faces {
		if len(f) != 4 {
			return nil, fmt.Errorf("face %d has %d indices: %w", i, len(f), ErrFaceArity)
		}
		faces[i] = Face{f[0], f[1], f[2], f[3]}
	}

	return New(vertices, faces, opts...)
}

// DefinitionOf returns the definition that rebuilds m.
func DefinitionOf(m *Mesh) Definition {
	def := Definition{
		Vertices: make([][]float64, len(m.vertices)),
		Faces:    make([][]int, len(m.faces)),
	}
	for i, v := range m.vertices {
		def.Vertices[i] = []float64{v.X, v.Y, v.Z}
	}
	for i, f := range m.faces {
		def.Faces[i] = []int{f[0], f[1], f[2], f[3]}
	}
	return def
}

// Save writes m as a YAML mesh definition.
func Save(m *Mesh, path string) error {
	data, err := yaml.Marshal(DefinitionOf(m))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
