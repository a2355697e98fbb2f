package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"honnef.co/go/spiro"
	"honnef.co/go/spiro/internal/config"
	"honnef.co/go/spiro/internal/render"
)

var (
	mesh       string
	r1         float64
	r2         float64
	semiA      float64
	semiB      float64
	penX       float64
	penY       float64
	velocity   float64
	duration   float64
	dt         float64
	resolution int

	configFile string
	preset     string

	outFile  string
	width    int
	outlines bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spiro",
		Short: "trace spirograph curves from rolling gear pairs",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "trace a spirograph and write it as SVG",
		RunE:  renderRun,
	}
	addGeometryFlags(renderCmd)
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "spiro.svg", "output file")
	renderCmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	renderCmd.Flags().BoolVar(&outlines, "outlines", false, "include gear outlines at the start position")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the pen coordinates over time in the terminal",
		RunE:  plotRun,
	}
	addGeometryFlags(plotCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write a default configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  configInit,
	})

	rootCmd.AddCommand(renderCmd, plotCmd, presetsCmd, configCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGeometryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mesh, "mesh", config.MeshTwoCirclesInner, "mesh kind")
	cmd.Flags().Float64Var(&r1, "r1", 100, "fixed circle radius")
	cmd.Flags().Float64Var(&r2, "r2", 30, "rotating circle radius")
	cmd.Flags().Float64Var(&semiA, "a", 40, "ellipse semi-axis a")
	cmd.Flags().Float64Var(&semiB, "b", 25, "ellipse semi-axis b")
	cmd.Flags().Float64Var(&penX, "pen-x", 20, "pen x offset in the rotating gear's frame")
	cmd.Flags().Float64Var(&penY, "pen-y", 0, "pen y offset in the rotating gear's frame")
	cmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "arc length per second")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "trace duration in seconds")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	cmd.Flags().IntVar(&resolution, "resolution", spiro.DefaultResolution, "ellipse normalization resolution")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
}

// buildConfig resolves the precedence preset < config file < flags into one
// configuration.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q, see 'spiro presets'", preset)
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flagValues := map[string]func(){
		"mesh":       func() { cfg.Mesh = mesh },
		"r1":         func() { cfg.R1 = r1 },
		"r2":         func() { cfg.R2 = r2 },
		"a":          func() { cfg.A = semiA },
		"b":          func() { cfg.B = semiB },
		"pen-x":      func() { cfg.PenX = penX },
		"pen-y":      func() { cfg.PenY = penY },
		"velocity":   func() { cfg.Velocity = velocity },
		"time":       func() { cfg.Duration = duration },
		"dt":         func() { cfg.Dt = dt },
		"resolution": func() { cfg.Resolution = resolution },
	}
	for name, apply := range flagValues {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return cfg, nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sg, err := cfg.Build()
	if err != nil {
		return err
	}

	trajectory := spiro.Trace(sg, cfg.Velocity, cfg.Duration, cfg.Dt)

	var gearOutlines [][]spiro.Point
	if outlines {
		gearOutlines = append(gearOutlines, sg.Fixed.Outline(spiro.DefaultOutlineStep))
		rotating := sg.Rotating.Outline(spiro.DefaultOutlineStep)
		start := sg.Transform(0)
		for i, pt := range rotating {
			rotating[i] = pt.Transform(start)
		}
		gearOutlines = append(gearOutlines, rotating)
	}

	opts := render.DefaultOptions()
	opts.Width = width
	if err := render.SaveSVG(outFile, opts, trajectory, gearOutlines...); err != nil {
		return err
	}
	fmt.Printf("traced %d points to %s\n", len(trajectory), outFile)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	sg, err := cfg.Build()
	if err != nil {
		return err
	}

	trajectory := spiro.Trace(sg, cfg.Velocity, cfg.Duration, cfg.Dt)
	xs := make([]float64, len(trajectory))
	ys := make([]float64, len(trajectory))
	for i, pt := range trajectory {
		xs[i] = pt.X
		ys[i] = pt.Y
	}

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("pen x(t)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("pen y(t)"),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(config.Presets))
	for name := range config.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMESH\tGEOMETRY\tPEN")
	for _, name := range names {
		p := config.Presets[name]
		var geometry string
		switch p.Mesh {
		case config.MeshTwoCirclesInner, config.MeshTwoCirclesOuter:
			geometry = fmt.Sprintf("r1=%g r2=%g", p.R1, p.R2)
		case config.MeshEllipseCircleOuter:
			geometry = fmt.Sprintf("a=%g b=%g r2=%g", p.A, p.B, p.R2)
		default:
			geometry = fmt.Sprintf("r1=%g a=%g b=%g", p.R1, p.A, p.B)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t(%g, %g)\n", name, p.Mesh, geometry, p.PenX, p.PenY)
	}
	return w.Flush()
}

func configInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("wrote default configuration to %s\n", path)
	return nil
}
