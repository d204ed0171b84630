// Package controls turns per-frame input into camera movement. It does not
// depend on any windowing library; platform input code fills a Frame.
package controls

import (
	"github.com/Faultbox/wirecube/internal/config"
	"github.com/Faultbox/wirecube/internal/engine/camera"
)

// Key is a logical control key.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	keyCount
)

// KeySet records which keys are held this frame.
type KeySet [keyCount]bool

// Frame is the input gathered for one frame.
type Frame struct {
	Quit         bool
	ToggleEngage bool // mouse button pressed this frame
	Screenshot   bool

	Keys KeySet

	// Relative mouse motion in pixels
	MouseDX float64
	MouseDY float64
}

// Settings tunes how input maps to movement.
type Settings struct {
	MoveSpeed        float64
	ClimbSpeed       float64
	MouseSensitivity float64
}

// DefaultSettings returns one unit per frame and 1/1000 radian per pixel.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        1,
		ClimbSpeed:       1,
		MouseSensitivity: 0.001,
	}
}

// SettingsFromConfig reads Settings from the controls section.
func SettingsFromConfig(cfg config.ControlsConfig) Settings {
	return Settings{
		MoveSpeed:        cfg.MoveSpeed,
		ClimbSpeed:       cfg.ClimbSpeed,
		MouseSensitivity: cfg.MouseSensitivity,
	}
}

// Controller applies input frames to a camera. Movement and mouselook only
// take effect while engaged; a mouse click toggles engagement.
type Controller struct {
	Settings Settings
	Engaged  bool
}

// New creates a disengaged controller.
func New(s Settings) *Controller {
	return &Controller{Settings: s}
}

// Apply updates cam from one frame of input. It returns true when the
// engaged state changed, so the platform can capture or release the mouse.
func (c *Controller) Apply(cam *camera.Camera, f Frame) bool {
	toggled := false
	if f.ToggleEngage {
		c.Engaged = !c.Engaged
		toggled = true
	}
	if !c.Engaged {
		return toggled
	}

	s := c.Settings
	if f.Keys[KeyForward] {
		cam.Move(s.MoveSpeed)
	}
	if f.Keys[KeyBack] {
		cam.Move(-s.MoveSpeed)
	}
	if f.Keys[KeyLeft] {
		cam.Slide(-s.MoveSpeed)
	}
	if f.Keys[KeyRight] {
		cam.Slide(s.MoveSpeed)
	}
	if f.Keys[KeyUp] {
		cam.Climb(s.ClimbSpeed)
	}
	if f.Keys[KeyDown] {
		cam.Climb(-s.ClimbSpeed)
	}

	// Moving the mouse up (negative dy) raises pitch.
	cam.Look(f.MouseDX*s.MouseSensitivity, -f.MouseDY*s.MouseSensitivity)
	cam.Pitch = camera.ClampPitch(cam.Pitch)

	return toggled
}
