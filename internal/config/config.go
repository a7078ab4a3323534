// Package config handles navigation cube configuration loading and
// management. A Config is fully resolved (defaults applied, then file, then
// flags) once at load time and treated as immutable afterwards.
package config

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/navcube/internal/regions"
)

// Config holds all settings.
type Config struct {
	Cube     CubeConfig     `yaml:"cube"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CubeConfig holds the navigation cube settings. Only CoordinateSystem and
// CameraDistance affect the pose table; the rest is presentation.
type CubeConfig struct {
	CoordinateSystem string  `yaml:"coordinate_system"` // "y-up" or "z-up"
	CameraDistance   float32 `yaml:"camera_distance"`   // distance of the poses from the origin
	ViewportSize     int     `yaml:"viewport_size"`     // overlay size in pixels
	Corner           string  `yaml:"corner"`            // which window corner hosts the overlay
	EdgeLength       float32 `yaml:"edge_length"`       // cube edge length in world units
	Margin           float32 `yaml:"margin"`            // edge/corner band width as a fraction of the half-extent

	FaceColor    string `yaml:"face_color"`
	HoverColor   string `yaml:"hover_color"`
	OutlineColor string `yaml:"outline_color"`
	TextColor    string `yaml:"text_color"`

	Labels     Labels `yaml:"labels"`
	LabelScale int    `yaml:"label_scale"` // integer upscale of the baked label texture
}

// Labels holds the six face label strings.
type Labels struct {
	Front  string `yaml:"front"`
	Back   string `yaml:"back"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// GraphicsConfig holds display settings for the demo window.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Cube: CubeConfig{
			CoordinateSystem: "y-up",
			CameraDistance:   150,
			ViewportSize:     140,
			Corner:           "top-right",
			EdgeLength:       60,
			Margin:           0.2,
			FaceColor:        "#cccccc",
			HoverColor:       "#8fd0ff",
			OutlineColor:     "#333333",
			TextColor:        "#222222",
			Labels: Labels{
				Front:  "FRONT",
				Back:   "BACK",
				Left:   "LEFT",
				Right:  "RIGHT",
				Top:    "TOP",
				Bottom: "BOTTOM",
			},
			LabelScale: 4,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var validCorners = map[string]bool{
	"top-left":     true,
	"top-right":    true,
	"bottom-left":  true,
	"bottom-right": true,
}

// Validate rejects unusable settings. Unrecognized coordinate systems and
// corners fail here rather than falling back to a default.
func (c *Config) Validate() error {
	if _, err := regions.ParseConvention(c.Cube.CoordinateSystem); err != nil {
		return err
	}
	d := float64(c.Cube.CameraDistance)
	if c.Cube.CameraDistance <= 0 || gomath.IsNaN(d) || gomath.IsInf(d, 0) {
		return fmt.Errorf("camera distance %v: %w", c.Cube.CameraDistance, regions.ErrInvalidArgument)
	}
	if !validCorners[c.Cube.Corner] {
		return fmt.Errorf("corner %q: %w", c.Cube.Corner, regions.ErrInvalidArgument)
	}
	if c.Cube.EdgeLength <= 0 {
		return fmt.Errorf("edge length %v: %w", c.Cube.EdgeLength, regions.ErrInvalidArgument)
	}
	if c.Cube.Margin <= 0 || c.Cube.Margin >= 0.5 {
		return fmt.Errorf("margin %v must be in (0, 0.5): %w", c.Cube.Margin, regions.ErrInvalidArgument)
	}
	if c.Cube.ViewportSize <= 0 {
		return fmt.Errorf("viewport size %d: %w", c.Cube.ViewportSize, regions.ErrInvalidArgument)
	}
	return nil
}

// Convention returns the parsed coordinate convention. Call Validate first;
// an invalid value here falls back to Y-up only because Validate already
// rejected it.
func (c *CubeConfig) Convention() regions.Convention {
	conv, _ := regions.ParseConvention(c.CoordinateSystem)
	return conv
}
