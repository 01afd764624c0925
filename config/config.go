// Package config reads tessellation settings from YAML.
package config

import (
	"io"
	"log"
	"os"

	"github.com/osuushi/sectormesh"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// "nearest-x" or "ray-cast"
	Bridge             string  `yaml:"bridge"`
	AreaTolerance      float64 `yaml:"area_tolerance"`
	MaxPolygonVertices int     `yaml:"max_polygon_vertices"`
	Islands            bool    `yaml:"islands"`
	Workers            int     `yaml:"workers"`
	Verbosity          int     `yaml:"verbosity"`
	Color              bool    `yaml:"color"`
	Draw               Draw    `yaml:"draw"`
}

// Draw configures the debug drawings of the CLI.
type Draw struct {
	// Directory to write one PNG per sector to. Empty disables drawing.
	Dir string `yaml:"dir"`
	// Pixels per level unit
	Scale  float64 `yaml:"scale"`
	Imgcat bool    `yaml:"imgcat"`
}

func Default() Config {
	opts := sectormesh.DefaultOptions()
	return Config{
		Bridge:             opts.Bridge.String(),
		AreaTolerance:      opts.AreaTolerance,
		MaxPolygonVertices: opts.MaxPolygonVertices,
		Workers:            opts.Workers,
		Draw:               Draw{Scale: 1},
	}
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	c, err := Parse(f)
	return c, errors.Wrapf(err, "reading %s", path)
}

// Parse reads YAML on top of the defaults. Unknown keys are an error.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Draw.Scale <= 0 {
		return errors.Errorf("draw scale must be positive, got %g", c.Draw.Scale)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	_, err := c.Options()
	return err
}

// Options converts the configuration to tessellation options logging to
// stderr.
func (c Config) Options() (sectormesh.Options, error) {
	opts := sectormesh.DefaultOptions()
	bridge, err := sectormesh.ParseBridgeStrategy(c.Bridge)
	if err != nil {
		return opts, err
	}
	opts.Bridge = bridge
	opts.AreaTolerance = c.AreaTolerance
	opts.MaxPolygonVertices = c.MaxPolygonVertices
	opts.Islands = c.Islands
	opts.Workers = c.Workers
	opts.Verbosity = c.Verbosity
	opts.Color = c.Color
	opts.Logger = log.New(os.Stderr, "", 0)
	return opts, errors.Wrap(opts.Validate(), "invalid config")
}
