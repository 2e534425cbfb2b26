// Package config handles renderer configuration loading and management.
package config

import "github.com/Faultbox/meadow/internal/engine/grass"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Grass    GrassConfig    `yaml:"grass"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"` // 0 = spin-wait pacing off
	MSAA       int        `yaml:"msaa"`      // samples per pixel, 0 = off
	ClearColor [3]float32 `yaml:"clear_color"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds the initial camera and its movement limits.
type CameraConfig struct {
	FOVDegrees float32      `yaml:"fov_degrees"`
	Near       float32      `yaml:"near"`
	Far        float32      `yaml:"far"`
	Position   [3]float32   `yaml:"position"`
	Limits     CameraLimits `yaml:"limits"`
}

// CameraLimits mirrors camera.Limits field for field so it converts directly.
type CameraLimits struct {
	MinZoom             float32 `yaml:"min_zoom"`
	MaxZoom             float32 `yaml:"max_zoom"`
	MinHeight           float32 `yaml:"min_height"`
	MaxHeight           float32 `yaml:"max_height"`
	HeightStep          float32 `yaml:"height_step"`
	MaxPanSpeed         float32 `yaml:"max_pan_speed"`
	RotationSensitivity float32 `yaml:"rotation_sensitivity"`
	ZoomRatio           float32 `yaml:"zoom_ratio"`
	CloseZoomRatio      float32 `yaml:"close_zoom_ratio"`
}

// GrassConfig holds patch generation and tiling settings.
type GrassConfig struct {
	BladeCount int     `yaml:"blade_count"`
	MinWidth   float32 `yaml:"min_width"`
	MaxWidth   float32 `yaml:"max_width"`
	MinHeight  float32 `yaml:"min_height"`
	MaxHeight  float32 `yaml:"max_height"`
	Seed       uint64  `yaml:"seed"`        // 0 = time based
	GridExtent int     `yaml:"grid_extent"` // tiles drawn per side = 2*extent+1
}

// Generator returns the blade generator settings of the section.
func (c GrassConfig) Generator() grass.Config {
	return grass.Config{
		BladeCount: c.BladeCount,
		MinWidth:   c.MinWidth,
		MaxWidth:   c.MaxWidth,
		MinHeight:  c.MinHeight,
		MaxHeight:  c.MaxHeight,
	}
}

// AssetsConfig names the textures and an optional directory that overrides
// the embedded shaders.
type AssetsConfig struct {
	Dir            string `yaml:"dir"`
	AlphaTexture   string `yaml:"alpha_texture"`
	DiffuseTexture string `yaml:"diffuse_texture"`
	ForceMap       string `yaml:"force_map"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultForceMap is used when no valid force map is given.
const DefaultForceMap = "builtin:force_map"

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      false,
			FPSLimit:   60,
			MSAA:       4,
			ClearColor: [3]float32{0.4, 0.5, 0.7},

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FOVDegrees: 15,
			Near:       0.5,
			Far:        30,
			Position:   [3]float32{0, 3, 5},
			Limits: CameraLimits{
				MinZoom:             0.5,
				MaxZoom:             15,
				MinHeight:           0.5,
				MaxHeight:           6.5,
				HeightStep:          0.025,
				MaxPanSpeed:         0.005,
				RotationSensitivity: 0.005,
				ZoomRatio:           0.01,
				CloseZoomRatio:      0.006,
			},
		},
		Grass: GrassConfig{
			BladeCount: 7500,
			MinWidth:   0.0025,
			MaxWidth:   0.0075,
			MinHeight:  0.05,
			MaxHeight:  0.125,
			Seed:       0,
			GridExtent: 1,
		},
		Assets: AssetsConfig{
			Dir:            "",
			AlphaTexture:   "builtin:grass_alpha",
			DiffuseTexture: "builtin:grass_diffuse",
			ForceMap:       DefaultForceMap,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
