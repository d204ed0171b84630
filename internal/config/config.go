// Package config handles viewer configuration loading and management.
package config

import "math"

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Controls   ControlsConfig   `yaml:"controls"`
	Render     RenderConfig     `yaml:"render"`
	Scene      SceneConfig      `yaml:"scene"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"` // 0 = unlimited
}

// CameraConfig holds the initial camera pose and optics.
type CameraConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Z           float64 `yaml:"z"`
	FocalLength float64 `yaml:"focal_length"` // 0 = width / 3
	NearClip    float64 `yaml:"near_clip"`
	Yaw         float64 `yaml:"yaw"`
	Pitch       float64 `yaml:"pitch"` // π/2 looks level
	Roll        float64 `yaml:"roll"`
}

// ControlsConfig holds movement and mouselook settings.
type ControlsConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`        // units per frame
	ClimbSpeed       float64 `yaml:"climb_speed"`       // units per frame
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // radians per pixel
}

// RenderConfig holds drawing settings.
type RenderConfig struct {
	DepthMetric string  `yaml:"depth_metric"` // manhattan or centroid
	Background  RGB     `yaml:"background"`
	LineColor   RGB     `yaml:"line_color"`
	LineWidth   float64 `yaml:"line_width"`
}

// RGB is an 8-bit colour.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// SceneConfig selects the mesh to display.
type SceneConfig struct {
	MeshFile string `yaml:"mesh_file"` // empty = built-in cube
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// FocalLength returns the configured focal length, defaulting to a third of
// the viewport width.
func (c *Config) FocalLength() float64 {
	if c.Camera.FocalLength > 0 {
		return c.Camera.FocalLength
	}
	return float64(c.Graphics.Width) / 3
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "wirecube",
			Width:      1280,
			Height:     640,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Camera: CameraConfig{
			NearClip: 10,
			Pitch:    math.Pi / 2,
		},
		Controls: ControlsConfig{
			MoveSpeed:        1,
			ClimbSpeed:       1,
			MouseSensitivity: 0.001,
		},
		Render: RenderConfig{
			DepthMetric: "manhattan",
			Background:  RGB{30, 30, 30},
			LineColor:   RGB{200, 200, 200},
			LineWidth:   1,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "wirecube",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
