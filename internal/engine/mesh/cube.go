package mesh

import "github.com/Faultbox/wirecube/pkg/math"

// CubeFaces are the faces of a cube built by CubeVertices.
var CubeFaces = []Face{
	{0, 1, 2, 3}, // front
	{4, 5, 6, 7}, // back
	{1, 4, 3, 6}, // left
	{5, 0, 7, 2}, // right
	{5, 4, 0, 1}, // top
	{2, 3, 7, 6}, // base
}

// CubeVertices returns the eight corners of an axis-aligned cube in the
// order CubeFaces expects.
func CubeVertices(center math.Vec3, size float64) []math.Vec3 {
	h := size / 2
	c := center
	return []math.Vec3{
		{X: c.X - h, Y: c.Y + h, Z: c.Z - h},
		{X: c.X + h, Y: c.Y + h, Z: c.Z - h},
		{X: c.X - h, Y: c.Y - h, Z: c.Z - h},
		{X: c.X + h, Y: c.Y - h, Z: c.Z - h},
		{X: c.X + h, Y: c.Y + h, Z: c.Z + h},
		{X: c.X - h, Y: c.Y + h, Z: c.Z + h},
		{X: c.X + h, Y: c.Y - h, Z: c.Z + h},
		{X: c.X - h, Y: c.Y - h, Z: c.Z + h},
	}
}

// Cube builds a cube mesh.
func Cube(center math.Vec3, size float64, opts ...Option) *Mesh {
	m, err := New(CubeVertices(center, size), CubeFaces, opts...)
	if err != nil {
		// CubeFaces only references the eight generated corners.
		panic(err)
	}
	return m
}

// ReferenceCube is the 50 unit cube centred 300 units ahead of the origin.
func ReferenceCube(opts ...Option) *Mesh {
	return Cube(math.Vec3{Y: 300}, 50, opts...)
}
