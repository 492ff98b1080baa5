package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Viewer.ModelPath != DefaultModelPath {
		t.Errorf("expected model path %s, got %s", DefaultModelPath, cfg.Viewer.ModelPath)
	}
	if len(cfg.Viewer.Textures) != 0 {
		t.Errorf("expected no default textures, got %v", cfg.Viewer.Textures)
	}
	if cfg.Viewer.FieldOfView != 45 {
		t.Errorf("expected field of view 45, got %f", cfg.Viewer.FieldOfView)
	}
	if cfg.Controls.ZoomStep != 2 || cfg.Controls.IdleSpin != 0.02 || cfg.Controls.DragSensitivity != 0.01 {
		t.Errorf("unexpected control defaults %+v", cfg.Controls)
	}
	if !cfg.Controls.FreeCamera {
		t.Error("expected free camera by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"empty model", func(c *Config) { c.Viewer.ModelPath = "" }, "model path"},
		{"flat fov", func(c *Config) { c.Viewer.FieldOfView = 180 }, "field of view"},
		{"negative blend", func(c *Config) { c.Controls.BlendStep = -0.1 }, "blend step"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

viewer:
  model_path: "resources/objects/teapot/teapot.obj"
  textures: ["a.png", "b.bmp"]
  field_of_view: 60

controls:
  idle_spin: 0
  free_camera: false

logging:
  level: "debug"
  log_file: "meshview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen || cfg.Window.VSync {
		t.Error("expected fullscreen on and vsync off")
	}
	if cfg.Viewer.ModelPath != "resources/objects/teapot/teapot.obj" {
		t.Errorf("unexpected model path %s", cfg.Viewer.ModelPath)
	}
	if len(cfg.Viewer.Textures) != 2 || cfg.Viewer.Textures[1] != "b.bmp" {
		t.Errorf("unexpected textures %v", cfg.Viewer.Textures)
	}
	if cfg.Viewer.FieldOfView != 60 {
		t.Errorf("expected field of view 60, got %f", cfg.Viewer.FieldOfView)
	}
	if cfg.Controls.IdleSpin != 0 || cfg.Controls.FreeCamera {
		t.Errorf("expected idle spin 0 and fixed camera, got %+v", cfg.Controls)
	}
	// Unset keys keep their defaults
	if cfg.Controls.ZoomStep != 2 {
		t.Errorf("expected default zoom step 2, got %f", cfg.Controls.ZoomStep)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "meshview.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("meshview.yaml", []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find meshview.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "fixed camera flag",
			setup: func() { *flagFixedCamera = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Controls.FreeCamera {
					t.Error("expected free camera to be disabled")
				}
			},
			teardown: func() { *flagFixedCamera = false },
		},
		{
			name:  "texture flag",
			setup: func() { *flagTexture = "wood.png" },
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Viewer.Textures) != 1 || cfg.Viewer.Textures[0] != "wood.png" {
					t.Errorf("expected textures [wood.png], got %v", cfg.Viewer.Textures)
				}
			},
			teardown: func() { *flagTexture = "" },
		},
		{
			name: "positional model path",
			setup: func() {
				if err := flag.CommandLine.Parse([]string{"teapot.obj"}); err != nil {
					t.Fatalf("parse: %v", err)
				}
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.ModelPath != "teapot.obj" {
					t.Errorf("expected model path teapot.obj, got %s", cfg.Viewer.ModelPath)
				}
			},
			teardown: func() { _ = flag.CommandLine.Parse(nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("controls:\n  blend_step: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "meshview.yaml")

	cfg := Default()
	cfg.Viewer.ModelPath = "statue.obj"
	cfg.Controls.BlendStep = 0.05
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Viewer.ModelPath != "statue.obj" || loaded.Controls.BlendStep != 0.05 {
		t.Errorf("round trip lost values: %+v", loaded.Viewer)
	}
}
