// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// DefaultModelPath is loaded when no mesh path is given.
const DefaultModelPath = "resources/objects/42/42.obj"

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ViewerConfig holds what is shown and from where.
type ViewerConfig struct {
	ModelPath      string   `yaml:"model_path"`
	Textures       []string `yaml:"textures"` // crossfaded pair; missing entries use a checkerboard
	FieldOfView    float32  `yaml:"field_of_view"`
	CameraDistance float32  `yaml:"camera_distance"`
}

// ControlsConfig holds input tuning.
type ControlsConfig struct {
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomStep        float32 `yaml:"zoom_step"`
	IdleSpin        float32 `yaml:"idle_spin"`
	BlendStep       float32 `yaml:"blend_step"`
	CameraStep      float32 `yaml:"camera_step"`
	FreeCamera      bool    `yaml:"free_camera"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "meshview",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			ModelPath:      DefaultModelPath,
			FieldOfView:    45,
			CameraDistance: 3,
		},
		Controls: ControlsConfig{
			DragSensitivity: 0.01,
			ZoomStep:        2,
			IdleSpin:        0.02,
			BlendStep:       0.01,
			CameraStep:      0.1,
			FreeCamera:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Viewer.ModelPath == "" {
		errs = append(errs, errors.New("model path is empty"))
	}
	if c.Viewer.FieldOfView <= 0 || c.Viewer.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field of view %v must be in (0, 180)", c.Viewer.FieldOfView))
	}
	if c.Controls.BlendStep <= 0 || c.Controls.BlendStep > 1 {
		errs = append(errs, fmt.Errorf("blend step %v must be in (0, 1]", c.Controls.BlendStep))
	}
	return errors.Join(errs...)
}
