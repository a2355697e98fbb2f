package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := Default()
	cfg.Mesh = MeshCircleEllipseOuter
	cfg.A = 35
	cfg.B = 22
	cfg.Duration = 42

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cfg, got); d != "" {
		t.Error(d)
	}
}

func TestLoadPartial(t *testing.T) {
	// Fields absent from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("mesh: two-circles-outer\nr2: 45\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mesh != MeshTwoCirclesOuter || got.R2 != 45 {
		t.Errorf("got mesh %q r2 %g", got.Mesh, got.R2)
	}
	if got.R1 != Default().R1 || got.Velocity != DefaultVelocity {
		t.Errorf("defaults not preserved: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Mesh = "triangle" },
		func(c *Config) { c.R1 = 0 },
		func(c *Config) { c.R2 = -3 },
		func(c *Config) { c.Velocity = 0 },
		func(c *Config) { c.Duration = -1 },
		func(c *Config) { c.Dt = 0 },
		func(c *Config) { c.Mesh = MeshCircleEllipseInner; c.A = 0; c.B = 20 },
		func(c *Config) { c.Mesh = MeshCircleEllipseInner; c.A = 30; c.B = 20; c.Resolution = 1 },
	}
	for i, mutate := range bad {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected a validation error for %+v", i, cfg)
		}
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestBuild(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
			continue
		}
		sg, err := cfg.Build()
		if err != nil {
			t.Errorf("preset %q: %v", name, err)
			continue
		}
		// A sanity check that the mesh actually rolls: contact points
		// coincide at an arbitrary parameter.
		l := sg.Fixed.Curve.Length() / 3
		p := sg.Fixed.Curve.Point(l)
		q := sg.Rotating.Curve.Point(l).Transform(sg.Transform(l))
		if q.Distance(p) > 1e-9 {
			t.Errorf("preset %q: contact points %v apart", name, q.Distance(p))
		}
	}

	cfg := Default()
	cfg.Mesh = "triangle"
	if _, err := cfg.Build(); err == nil || !strings.Contains(err.Error(), "unknown mesh") {
		t.Errorf("got %v, expected an unknown-mesh error", err)
	}
}
