// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Export   ExportConfig   `yaml:"export"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // Samples per pixel, 0 disables
}

// CameraConfig holds the initial camera.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // Degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
}

// ControlsConfig holds orbit control limits and speeds.
type ControlsConfig struct {
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`
	MaxPolarAngle float32 `yaml:"max_polar_angle"` // Degrees from straight up
	Damping       bool    `yaml:"damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
}

// ExportConfig holds scene export settings.
type ExportConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // glb or gltf
	Dialog bool   `yaml:"dialog"` // Ask for a location instead of writing Path
}

// DebugConfig holds developer aids.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	LogFPS        bool   `yaml:"log_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 0, 5},
		},
		Controls: ControlsConfig{
			MinDistance:   2,
			MaxDistance:   10,
			MaxPolarAngle: 90,
			Damping:       true,
			DampingFactor: 0.25,
			RotateSpeed:   1,
			ZoomSpeed:     1,
			PanSpeed:      1,
		},
		Export: ExportConfig{
			Path:   "scene.glb",
			Format: "glb",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov %g out of range (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near %g far %g", c.Camera.Near, c.Camera.Far))
	}
	if c.Controls.MinDistance < 0 || c.Controls.MaxDistance < c.Controls.MinDistance {
		errs = append(errs, fmt.Errorf("controls: invalid distance range [%g, %g]", c.Controls.MinDistance, c.Controls.MaxDistance))
	}
	if c.Controls.MaxPolarAngle <= 0 || c.Controls.MaxPolarAngle > 180 {
		errs = append(errs, fmt.Errorf("controls: max polar angle %g out of range (0, 180]", c.Controls.MaxPolarAngle))
	}
	if c.Controls.Damping && (c.Controls.DampingFactor <= 0 || c.Controls.DampingFactor > 1) {
		errs = append(errs, fmt.Errorf("controls: damping factor %g out of range (0, 1]", c.Controls.DampingFactor))
	}
	switch strings.ToLower(c.Export.Format) {
	case "glb", "gltf":
	default:
		errs = append(errs, fmt.Errorf("export: unknown format %q", c.Export.Format))
	}
	return errors.Join(errs...)
}
