// Package config loads mobius settings from TOML or YAML files.
//
// Every field has a default (see [Default]), so a config file only needs
// the values it changes:
//
//	[pearls]
//	preset = "hexagon"
//	depth = 7
//	formats = ["svg", "png", "json"]
//
//	[sphere]
//	frames = 240
//
// Command-line flags that the user sets explicitly take precedence over the
// file; that merge happens in the CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
	"github.com/matzehuels/mobius/pkg/mobius"
	"github.com/matzehuels/mobius/pkg/render/pearls"
	"github.com/matzehuels/mobius/pkg/render/sphere"
)

// Config is the full set of tunables.
type Config struct {
	Pearls Pearls `toml:"pearls" yaml:"pearls"`
	Sphere Sphere `toml:"sphere" yaml:"sphere"`
	Cache  Cache  `toml:"cache" yaml:"cache"`
}

// Pearls configures the circle fractal.
type Pearls struct {
	Preset     string  `toml:"preset" yaml:"preset" validate:"required"`
	Depth      int     `toml:"depth" yaml:"depth" validate:"gte=0,lte=32"`
	Threshold  float64 `toml:"threshold" yaml:"threshold" validate:"gte=0"`
	MaxCircles int     `toml:"max_circles" yaml:"max_circles" validate:"gte=0"`

	Output  string   `toml:"output" yaml:"output" validate:"required"`
	Formats []string `toml:"formats" yaml:"formats" validate:"min=1,dive,oneof=svg pdf png json dot lineage"`

	Size       int     `toml:"size" yaml:"size" validate:"gt=0,lte=16384"`
	Limit      float64 `toml:"limit" yaml:"limit" validate:"gt=0"`
	Color      string  `toml:"color" yaml:"color" validate:"hexcolor"`
	Background string  `toml:"background" yaml:"background" validate:"hexcolor"`
	AutoFit    bool    `toml:"auto_fit" yaml:"auto_fit"`

	// LineageNodes caps the lineage diagram.
	LineageNodes int `toml:"lineage_nodes" yaml:"lineage_nodes" validate:"gte=0"`
}

// Sphere configures the animation.
type Sphere struct {
	Frames     int    `toml:"frames" yaml:"frames" validate:"gt=0"`
	FPS        int    `toml:"fps" yaml:"fps" validate:"gt=0,lte=240"`
	Resolution int    `toml:"resolution" yaml:"resolution" validate:"gte=2"`
	Meridians  int    `toml:"meridians" yaml:"meridians" validate:"gte=0"`
	Parallels  int    `toml:"parallels" yaml:"parallels" validate:"gte=0"`
	Width      int    `toml:"width" yaml:"width" validate:"gt=0,lte=8192"`
	Height     int    `toml:"height" yaml:"height" validate:"gt=0,lte=8192"`
	Output     string `toml:"output" yaml:"output" validate:"required"`
}

// Cache configures the render cache.
type Cache struct {
	// Dir overrides the default cache directory.
	Dir      string `toml:"dir" yaml:"dir"`
	Disabled bool   `toml:"disabled" yaml:"disabled"`
}

// Default settings. The pearls output base name yields perles_indra.svg and
// perles_indra.png with the default formats.
const (
	DefaultPearlsOutput = "perles_indra"
	DefaultMaxCircles   = 2_000_000
	DefaultLineageNodes = 200
)

// DefaultFormats are written when no formats are configured.
var DefaultFormats = []string{"svg", "png"}

// Default returns the built-in configuration.
func Default() Config {
	s := sphere.DefaultOptions()
	return Config{
		Pearls: Pearls{
			Preset:       geom.DefaultPreset,
			Depth:        geom.DefaultDepth,
			Threshold:    geom.DefaultThreshold,
			MaxCircles:   DefaultMaxCircles,
			Output:       DefaultPearlsOutput,
			Formats:      append([]string(nil), DefaultFormats...),
			Size:         pearls.DefaultSize,
			Limit:        pearls.DefaultLimit,
			Color:        pearls.DefaultColor,
			Background:   pearls.DefaultBackground,
			LineageNodes: DefaultLineageNodes,
		},
		Sphere: Sphere{
			Frames:     s.Frames,
			FPS:        s.FPS,
			Resolution: mobius.DefaultResolution,
			Meridians:  mobius.DefaultMeridians,
			Parallels:  mobius.DefaultParallels,
			Width:      s.Width,
			Height:     s.Height,
			Output:     s.Output,
		},
	}
}

// Load reads path over the defaults and validates the result. The format
// is chosen by extension: .toml, .yaml or .yml. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode unmarshals data into cfg according to ext. Fields absent from data
// keep their current values.
func Decode(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML config")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse YAML config")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	return nil
}
