// Package camera provides the first-person camera used to project world
// points onto the viewport.
package camera

import (
	"image"
	gomath "math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Faultbox/wirecube/pkg/math"
)

// DefaultNearClip is the default forward distance at or below which points
// are not visible.
const DefaultNearClip = 10

// ScreenPoint is a projected pixel position. A point that cannot be seen
// from the camera has Visible set to false.
type ScreenPoint struct {
	X, Y    int
	Visible bool
}

// Hidden is the projection result for points at or behind the near clip
// distance.
var Hidden = ScreenPoint{}

// Point returns the pixel position as an image.Point.
func (p ScreenPoint) Point() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// Camera is a first-person perspective camera.
//
// World Y is forward at Yaw = 0 and world Z is up. Pitch is measured so that
// a quarter turn looks level; 0 looks straight down and π straight up.
type Camera struct {
	Position    math.Vec3
	FocalLength float64
	NearClip    float64

	// Viewport size in pixels
	Width  int
	Height int

	Yaw   float64 // Rotation in the X/Y plane (radians)
	Pitch float64 // Rotation in the Z/Y plane, quarter turn = level
	Roll  float64 // Rotation in the X/Z plane
}

// Option configures optional camera parameters.
type Option func(*Camera)

// WithNearClip sets the near clip distance.
func WithNearClip(d float64) Option {
	return func(c *Camera) { c.NearClip = d }
}

// WithYaw sets the initial yaw.
func WithYaw(a float64) Option {
	return func(c *Camera) { c.Yaw = a }
}

// WithPitch sets the initial pitch.
func WithPitch(a float64) Option {
	return func(c *Camera) { c.Pitch = a }
}

// WithRoll sets the initial roll.
func WithRoll(a float64) Option {
	return func(c *Camera) { c.Roll = a }
}

// New creates a camera at pos looking level along +Y.
func New(pos math.Vec3, focalLength float64, width, height int, opts ...Option) *Camera {
	c := &Camera{
		Position:    pos,
		FocalLength: focalLength,
		NearClip:    DefaultNearClip,
		Width:       width,
		Height:      height,
		Pitch:       math.QuarterTurn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Project converts a world point to a pixel on the viewport, or Hidden when
// the point lies at or behind the near clip distance.
func (c *Camera) Project(p math.Vec3) ScreenPoint {
	x, y, z := c.toLocal(p)

	if y <= c.NearClip {
		return Hidden
	}

	halfW := gomath.RoundToEven(float64(c.Width) / 2)
	halfH := gomath.RoundToEven(float64(c.Height) / 2)

	sx := x/y*c.FocalLength + halfW
	sy := float64(c.Height) - (z/y*c.FocalLength + halfH)

	return ScreenPoint{
		X:       int(gomath.RoundToEven(sx)),
		Y:       int(gomath.RoundToEven(sy)),
		Visible: true,
	}
}

// Local returns p in camera space: x to the right, y forward, z up.
func (c *Camera) Local(p math.Vec3) math.Vec3 {
	x, y, z := c.toLocal(p)
	return math.Vec3{X: x, Y: y, Z: z}
}

func (c *Camera) toLocal(p math.Vec3) (x, y, z float64) {
	pos := c.Position

	xy := math.RotateAround(r2.Vec{X: p.X, Y: p.Y}, r2.Vec{X: pos.X, Y: pos.Y}, c.Yaw)
	x, y = xy.X, xy.Y

	zy := math.RotateAround(r2.Vec{X: p.Z, Y: y}, r2.Vec{X: pos.Z, Y: pos.Y}, c.Pitch-math.QuarterTurn)
	z, y = zy.X, zy.Y

	xz := math.RotateAround(r2.Vec{X: x, Y: z}, r2.Vec{X: pos.X, Y: pos.Z}, c.Roll)
	x, z = xz.X, xz.Y

	return x - pos.X, y - pos.Y, z - pos.Z
}

// Forward returns the horizontal facing direction.
func (c *Camera) Forward() (x, y float64) {
	return gomath.Sin(c.Yaw), gomath.Cos(c.Yaw)
}

// Right returns the horizontal direction perpendicular to Forward.
func (c *Camera) Right() (x, y float64) {
	return gomath.Sin(c.Yaw + math.QuarterTurn), gomath.Cos(c.Yaw + math.QuarterTurn)
}

// Move translates the camera along its facing direction.
func (c *Camera) Move(amount float64) {
	dx, dy := c.Forward()
	c.Position.X += dx * amount
	c.Position.Y += dy * amount
}

// Slide strafes the camera perpendicular to its facing direction.
func (c *Camera) Slide(amount float64) {
	dx, dy := c.Right()
	c.Position.X += dx * amount
	c.Position.Y += dy * amount
}

// Climb moves the camera along world Z.
func (c *Camera) Climb(amount float64) {
	c.Position.Z += amount
}

// Look turns the camera. Pitch is not clamped here; see ClampPitch.
func (c *Camera) Look(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
}

// Resize updates the viewport size.
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// ClampPitch limits a pitch value to [0, π].
func ClampPitch(pitch float64) float64 {
	if pitch <= 0 {
		return 0
	}
	if pitch >= gomath.Pi {
		return gomath.Pi
	}
	return pitch
}
