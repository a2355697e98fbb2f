// Package config describes spirograph runs as serializable values: which
// mesh to build, its geometry, and how to trace it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"honnef.co/go/spiro"
)

// Mesh kinds accepted by [Config.Build].
const (
	MeshTwoCirclesInner    = "two-circles-inner"
	MeshTwoCirclesOuter    = "two-circles-outer"
	MeshCircleEllipseInner = "circle-ellipse-inner"
	MeshCircleEllipseOuter = "circle-ellipse-outer"
	MeshEllipseCircleOuter = "ellipse-circle-outer"
)

const (
	DefaultVelocity = 50.0
	DefaultDuration = 120.0
	DefaultDt       = 1.0 / 60
)

// Config is the full description of a spirograph run. R1 and R2 are circle
// radii, A and B ellipse semi-axes; which of them a mesh uses depends on
// its kind. The pen offset is expressed in the rotating gear's frame.
type Config struct {
	Mesh       string  `yaml:"mesh"`
	R1         float64 `yaml:"r1"`
	R2         float64 `yaml:"r2"`
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	PenX       float64 `yaml:"pen_x"`
	PenY       float64 `yaml:"pen_y"`
	Velocity   float64 `yaml:"velocity"`
	Duration   float64 `yaml:"duration"`
	Dt         float64 `yaml:"dt"`
	Resolution int     `yaml:"resolution"`
}

func Default() *Config {
	return &Config{
		Mesh:       MeshTwoCirclesInner,
		R1:         100,
		R2:         30,
		PenX:       20,
		Velocity:   DefaultVelocity,
		Duration:   DefaultDuration,
		Dt:         DefaultDt,
		Resolution: spiro.DefaultResolution,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// usesEllipse reports whether the mesh kind reads the A/B semi-axes.
func (c *Config) usesEllipse() bool {
	switch c.Mesh {
	case MeshCircleEllipseInner, MeshCircleEllipseOuter, MeshEllipseCircleOuter:
		return true
	}
	return false
}

// Validate rejects configurations the engine would refuse to construct, so
// user input errors surface as errors rather than panics.
func (c *Config) Validate() error {
	switch c.Mesh {
	case MeshTwoCirclesInner, MeshTwoCirclesOuter:
		if c.R1 <= 0 || c.R2 <= 0 {
			return fmt.Errorf("mesh %s needs positive radii r1 and r2, got %g and %g", c.Mesh, c.R1, c.R2)
		}
	case MeshCircleEllipseInner, MeshCircleEllipseOuter:
		if c.R1 <= 0 {
			return fmt.Errorf("mesh %s needs a positive radius r1, got %g", c.Mesh, c.R1)
		}
	case MeshEllipseCircleOuter:
		if c.R2 <= 0 {
			return fmt.Errorf("mesh %s needs a positive radius r2, got %g", c.Mesh, c.R2)
		}
	default:
		return fmt.Errorf("unknown mesh kind %q", c.Mesh)
	}
	if c.usesEllipse() {
		if c.A <= 0 || c.B <= 0 {
			return fmt.Errorf("mesh %s needs positive semi-axes a and b, got %g and %g", c.Mesh, c.A, c.B)
		}
		if c.Resolution < 2 {
			return fmt.Errorf("resolution must be at least 2, got %d", c.Resolution)
		}
	}
	if c.Velocity <= 0 {
		return fmt.Errorf("velocity must be positive, got %g", c.Velocity)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	return nil
}

// Build validates the configuration and constructs the spirograph it
// describes.
func (c *Config) Build() (spiro.SpiroGraph, error) {
	if err := c.Validate(); err != nil {
		return spiro.SpiroGraph{}, err
	}
	pen := spiro.Pt(c.PenX, c.PenY)
	switch c.Mesh {
	case MeshTwoCirclesInner:
		return spiro.TwoCirclesInner(c.R1, c.R2, pen), nil
	case MeshTwoCirclesOuter:
		return spiro.TwoCirclesOuter(c.R1, c.R2, pen), nil
	case MeshCircleEllipseInner:
		return spiro.CircleEllipseInner(c.R1, c.A, c.B, pen, c.Resolution), nil
	case MeshCircleEllipseOuter:
		return spiro.CircleEllipseOuter(c.R1, c.A, c.B, pen, c.Resolution), nil
	case MeshEllipseCircleOuter:
		return spiro.EllipseCircleOuter(c.A, c.B, c.R2, pen, c.Resolution), nil
	default:
		// Validate has already rejected unknown kinds.
		panic("unreachable")
	}
}
