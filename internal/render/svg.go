// Package render writes traced spirographs as standalone SVG documents.
package render

import (
	"fmt"
	"io"
	"os"

	"honnef.co/go/spiro"
)

// Options controls the appearance of the SVG output. Zero values fall back
// to the defaults in [DefaultOptions].
type Options struct {
	// Width is the pixel width of the image; height follows from the
	// geometry's aspect ratio.
	Width int
	// Padding is the fraction of the geometry's extent left blank around
	// it.
	Padding     float64
	Background  string
	TraceColor  string
	GearColor   string
	StrokeWidth float64
}

func DefaultOptions() Options {
	return Options{
		Width:       800,
		Padding:     0.05,
		Background:  "#101014",
		TraceColor:  "#8be9fd",
		GearColor:   "#44475a",
		StrokeWidth: 1.5,
	}
}

func (opts Options) withDefaults() Options {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Padding <= 0 {
		opts.Padding = def.Padding
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.TraceColor == "" {
		opts.TraceColor = def.TraceColor
	}
	if opts.GearColor == "" {
		opts.GearColor = def.GearColor
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = def.StrokeWidth
	}
	return opts
}

// WriteSVG writes the trajectory and any gear outlines as a single SVG
// document, fitted to a padded viewport around all of the geometry. The
// world frame is y-up; the output is flipped into SVG's y-down space.
func WriteSVG(w io.Writer, opts Options, trajectory []spiro.Point, outlines ...[]spiro.Point) error {
	if len(trajectory) < 2 {
		return fmt.Errorf("trajectory of %d points, need at least 2", len(trajectory))
	}
	opts = opts.withDefaults()

	bounds := spiro.BoundingBox(trajectory)
	for _, outline := range outlines {
		bounds = bounds.Union(spiro.BoundingBox(outline))
	}
	bounds = bounds.Inflate(bounds.Width()*opts.Padding, bounds.Height()*opts.Padding)

	width := float64(opts.Width)
	scale := width / bounds.Width()
	height := bounds.Height() * scale

	// Map a world point into pixel space, flipping y.
	project := func(pt spiro.Point) (float64, float64) {
		return (pt.X - bounds.X0) * scale, height - (pt.Y-bounds.Y0)*scale
	}

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	polyline := func(pts []spiro.Point, color string, strokeWidth float64) {
		writef(`<path fill="none" stroke="%s" stroke-width="%.2f" d="`, color, strokeWidth)
		for i, pt := range pts {
			x, y := project(pt)
			if i == 0 {
				writef("M%.2f,%.2f", x, y)
			} else {
				writef(" L%.2f,%.2f", x, y)
			}
		}
		writef("\"/>\n")
	}

	writef(`<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height)
	writef(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)
	for _, outline := range outlines {
		polyline(outline, opts.GearColor, opts.StrokeWidth/2)
	}
	polyline(trajectory, opts.TraceColor, opts.StrokeWidth)
	writef("</svg>\n")
	return err
}

// SaveSVG writes the SVG document to a file.
func SaveSVG(path string, opts Options, trajectory []spiro.Point, outlines ...[]spiro.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, opts, trajectory, outlines...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
