package mesh

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/wirecube/pkg/math"
)

func TestManhattanSum(t *testing.T) {
	corners := [4]math.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1}, {Y: -2}, {Z: 4}}
	eye := math.Vec3{}

	if got := ManhattanSum(corners, eye); got != 13 {
		t.Errorf("ManhattanSum() = %v, want 13", got)
	}
}

func TestCentroidDistance(t *testing.T) {
	corners := [4]math.Vec3{
		{X: -5, Y: 100, Z: -5}, {X: 5, Y: 100, Z: -5}, {X: -5, Y: 100, Z: 5}, {X: 5, Y: 100, Z: 5},
	}
	got := CentroidDistance(corners, math.Vec3{Z: 0})
	if !scalar.EqualWithinAbs(got, 100, 1e-9) {
		t.Errorf("CentroidDistance() = %v, want 100", got)
	}
}

func TestMetricByName(t *testing.T) {
	for _, name := range []string{"", MetricManhattan, MetricCentroid} {
		if m, ok := MetricByName(name); !ok || m == nil {
			t.Errorf("MetricByName(%q) not found", name)
		}
	}
	if _, ok := MetricByName("zbuffer"); ok {
		t.Error("unknown metric should not resolve")
	}
}
