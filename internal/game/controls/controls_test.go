package controls

import (
	gomath "math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/internal/engine/camera"
	"github.com/Faultbox/wirecube/pkg/math"
)

func newCamera() *camera.Camera {
	return camera.New(math.Vec3{}, 400, 1280, 640)
}

func engaged() *Controller {
	c := New(DefaultSettings())
	c.Engaged = true
	return c
}

func TestDisengagedIgnoresInput(t *testing.T) {
	cam := newCamera()
	c := New(DefaultSettings())

	var f Frame
	f.Keys[KeyForward] = true
	f.MouseDX = 500
	c.Apply(cam, f)

	if cam.Position != (math.Vec3{}) || cam.Yaw != 0 {
		t.Errorf("disengaged controller moved the camera: %+v", cam)
	}
}

func TestToggleEngage(t *testing.T) {
	cam := newCamera()
	c := New(DefaultSettings())

	if !c.Apply(cam, Frame{ToggleEngage: true}) || !c.Engaged {
		t.Fatal("expected click to engage")
	}
	if c.Apply(cam, Frame{}) {
		t.Error("expected no toggle without a click")
	}
	if !c.Apply(cam, Frame{ToggleEngage: true}) || c.Engaged {
		t.Fatal("expected second click to disengage")
	}
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want math.Vec3
	}{
		{"forward", KeyForward, math.Vec3{Y: 1}},
		{"back", KeyBack, math.Vec3{Y: -1}},
		{"left", KeyLeft, math.Vec3{X: -1}},
		{"right", KeyRight, math.Vec3{X: 1}},
		{"up", KeyUp, math.Vec3{Z: 1}},
		{"down", KeyDown, math.Vec3{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera()
			var f Frame
			f.Keys[tt.key] = true
			engaged().Apply(cam, f)

			got := cam.Position
			if !scalar.EqualWithinAbs(got.X, tt.want.X, 1e-9) ||
				!scalar.EqualWithinAbs(got.Y, tt.want.Y, 1e-9) ||
				!scalar.EqualWithinAbs(got.Z, tt.want.Z, 1e-9) {
				t.Errorf("position = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMouseLook(t *testing.T) {
	cam := newCamera()
	engaged().Apply(cam, Frame{MouseDX: 100, MouseDY: 50})

	if !scalar.EqualWithinAbs(cam.Yaw, 0.1, 1e-12) {
		t.Errorf("expected yaw 0.1, got %v", cam.Yaw)
	}
	if !scalar.EqualWithinAbs(cam.Pitch, math.QuarterTurn-0.05, 1e-12) {
		t.Errorf("expected pitch %v, got %v", math.QuarterTurn-0.05, cam.Pitch)
	}
}

func TestPitchClamped(t *testing.T) {
	cam := newCamera()
	c := engaged()

	c.Apply(cam, Frame{MouseDY: -1e5})
	if cam.Pitch != gomath.Pi {
		t.Errorf("expected pitch clamped to π, got %v", cam.Pitch)
	}

	c.Apply(cam, Frame{MouseDY: 1e5})
	if cam.Pitch != 0 {
		t.Errorf("expected pitch clamped to 0, got %v", cam.Pitch)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s := SettingsFromConfig(config.Default().Controls)
	if s != DefaultSettings() {
		t.Errorf("config defaults %+v differ from DefaultSettings %+v", s, DefaultSettings())
	}
}
