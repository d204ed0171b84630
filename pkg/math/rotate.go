package math

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// TwoPi is a full turn in radians.
	TwoPi = 2 * math.Pi
	// QuarterTurn is a quarter turn in radians.
	QuarterTurn = math.Pi / 2
)

// NormalizeAngle folds negative angles up by one full turn. Angles above a
// full turn also get a full turn added rather than subtracted; callers only
// feed the result to sin/cos, so the value stays correct but is not
// guaranteed to land in [0, 2π).
func NormalizeAngle(angle float64) float64 {
	if angle < 0 {
		angle += TwoPi
	}
	if angle > TwoPi {
		angle += TwoPi
	}
	return angle
}

// Bearing returns the angle of the ray from a to b.
func Bearing(a, b r2.Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// RotateAround rotates p counter-clockwise about pivot by delta radians.
// The distance from pivot is preserved.
func RotateAround(p, pivot r2.Vec, delta float64) r2.Vec {
	dist := r2.Norm(r2.Sub(pivot, p))

	// Bearing is measured from p towards pivot, so half a turn flips it
	// back to the pivot->p direction before applying delta.
	angle := NormalizeAngle(Bearing(p, pivot) + delta + math.Pi)

	return r2.Add(pivot, r2.Scale(dist, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
}
