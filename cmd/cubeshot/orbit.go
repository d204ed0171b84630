package main

import (
	"errors"
	stdmath "math"

	"github.com/Faultbox/wirecube/internal/engine/camera"
	"github.com/Faultbox/wirecube/internal/engine/scene"
	"github.com/Faultbox/wirecube/pkg/math"
)

// orbit circles the camera around the mesh centre at its starting
// horizontal distance, always facing the centre.
type orbit struct {
	center math.Vec3
	radius float64
	start  float64 // yaw of the first frame
	height float64
}

// errEmptyMesh is returned when there is no centre to orbit.
var errEmptyMesh = errors.New("cannot orbit a mesh without vertices")

func newOrbit(sc *scene.Scene) (orbit, error) {
	var c math.Vec3
	verts := sc.Mesh.Vertices()
	if len(verts) == 0 {
		return orbit{}, errEmptyMesh
	}
	for _, v := range verts {
		c = c.Add(v)
	}
	c = c.Scale(1 / float64(len(verts)))

	p := sc.Camera.Position
	dx, dy := c.X-p.X, c.Y-p.Y
	return orbit{
		center: c,
		radius: stdmath.Hypot(dx, dy),
		start:  stdmath.Atan2(dx, dy),
		height: p.Z,
	}, nil
}

// pose places cam for frame i of n.
func (o orbit) pose(cam *camera.Camera, i, n int) {
	yaw := o.start + math.TwoPi*float64(i)/float64(n)
	cam.Yaw = yaw
	cam.Position = math.Vec3{
		X: o.center.X - o.radius*stdmath.Sin(yaw),
		Y: o.center.Y - o.radius*stdmath.Cos(yaw),
		Z: o.height,
	}
}
