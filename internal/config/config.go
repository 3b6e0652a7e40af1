// Package config loads Seascape's configuration from YAML, starting from the
// embedded defaults and optionally overlaying a user-supplied file.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the backdrop.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Ocean   OceanConfig   `yaml:"ocean"`
	Pointer PointerConfig `yaml:"pointer"`
	Layers  []LayerConfig `yaml:"layers"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ScrollConfig maps wheel ticks onto a virtual page scroll offset.
type ScrollConfig struct {
	Step       float64 `yaml:"step"`
	PageFactor float64 `yaml:"page_factor"`
}

// OceanConfig holds the rise reveal and scroll speed parameters.
type OceanConfig struct {
	RiseOffset      float64 `yaml:"rise_offset"`
	RiseRangeFactor float64 `yaml:"rise_range_factor"`
	Sensitivity     float64 `yaml:"sensitivity"`
	SpeedSmoothing  float64 `yaml:"speed_smoothing"`
}

// PointerConfig holds pointer smoothing and tilt mapping parameters.
type PointerConfig struct {
	Smoothing   float64 `yaml:"smoothing"`
	Amplitude   float64 `yaml:"amplitude"`
	TiltDivisor float64 `yaml:"tilt_divisor"`
}

// LayerConfig declares one parallax layer. Speed is the depth coefficient:
// 0 keeps the layer fixed, larger values move it more.
type LayerConfig struct {
	Name    string     `yaml:"name"`
	Speed   float64    `yaml:"speed"`
	Tint    [3]float32 `yaml:"tint"`
	Alpha   float32    `yaml:"alpha"`
	Octaves int        `yaml:"octaves"`
	Scale   float64    `yaml:"scale"`
	Seed    int64      `yaml:"seed"`
}

// Load returns the embedded defaults, overlaid with the YAML file at path
// when path is non-empty. Layer depth coefficients are sanitized; a warning
// per bad layer is returned so the caller can log it after the logger is up.
func Load(path string) (*Config, []string, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, nil, fmt.Errorf("embedded defaults are broken: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	warnings := cfg.sanitize()
	return cfg, warnings, nil
}

// sanitize clamps out-of-range values that would otherwise poison the
// per-frame math. A missing layer speed already parses as 0 (layer fixed);
// negative or NaN speeds are forced to 0.
func (c *Config) sanitize() []string {
	var warnings []string
	for i := range c.Layers {
		l := &c.Layers[i]
		if math.IsNaN(l.Speed) || l.Speed < 0 {
			warnings = append(warnings, fmt.Sprintf("layer %q: speed %v is not a usable depth coefficient, pinning layer", l.Name, l.Speed))
			l.Speed = 0
		}
		if l.Octaves < 1 {
			l.Octaves = 1
		}
		if l.Scale <= 0 {
			l.Scale = 1
		}
	}
	if c.Ocean.Sensitivity <= 0 {
		warnings = append(warnings, fmt.Sprintf("ocean sensitivity %v is not positive, using 12", c.Ocean.Sensitivity))
		c.Ocean.Sensitivity = 12
	}
	if c.Ocean.SpeedSmoothing <= 0 || c.Ocean.SpeedSmoothing > 1 {
		warnings = append(warnings, fmt.Sprintf("ocean speed smoothing %v outside (0,1], using 0.08", c.Ocean.SpeedSmoothing))
		c.Ocean.SpeedSmoothing = 0.08
	}
	if c.Pointer.Smoothing <= 0 || c.Pointer.Smoothing > 1 {
		c.Pointer.Smoothing = 0.1
	}
	if c.Pointer.TiltDivisor <= 0 {
		c.Pointer.TiltDivisor = 45
	}
	if c.Scroll.PageFactor <= 0 {
		c.Scroll.PageFactor = 3
	}
	return warnings
}
