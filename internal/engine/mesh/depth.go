package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/wirecube/pkg/math"
)

// DepthMetric scores how far a face is from the eye. Larger is farther.
type DepthMetric func(corners [4]math.Vec3, eye math.Vec3) float64

// ManhattanSum adds the Manhattan distance from the eye to each corner.
// It is a cheap stand-in for true depth and is only reliable for small
// convex meshes whose faces do not overlap.
func ManhattanSum(corners [4]math.Vec3, eye math.Vec3) float64 {
	var sum float64
	for _, c := range corners {
		sum += c.Manhattan(eye)
	}
	return sum
}

// CentroidDistance is the Euclidean distance from the eye to the face centre.
func CentroidDistance(corners [4]math.Vec3, eye math.Vec3) float64 {
	var centre r3.Vec
	for _, c := range corners {
		centre = r3.Add(centre, c.R3())
	}
	centre = r3.Scale(0.25, centre)
	return r3.Norm(r3.Sub(centre, eye.R3()))
}

// Metric names accepted by MetricByName.
const (
	MetricManhattan = "manhattan"
	MetricCentroid  = "centroid"
)

// MetricByName returns the metric registered under name.
func MetricByName(name string) (DepthMetric, bool) {
	switch name {
	case MetricManhattan, "":
		return ManhattanSum, true
	case MetricCentroid:
		return CentroidDistance, true
	default:
		return nil, false
	}
}
