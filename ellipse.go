package spiro

import (
	"math"
)

// ellipse is the raw curve (a·cos t, b·sin t) over [0, 2π). Its speed
// varies with t, so gear construction always wraps it in [Normalize]. dir
// is ±1 and selects the traversal direction.
type ellipse struct {
	a, b float64
	dir  float64
}

func (e ellipse) Length() float64 {
	return 2 * math.Pi
}

func (e ellipse) Point(t float64) Point {
	sin, cos := math.Sincos(e.dir * t)
	return Point{
		X: e.a * cos,
		Y: e.b * sin,
	}
}

func (e ellipse) Tangent(t float64) Vec2 {
	sin, cos := math.Sincos(e.dir * t)
	return Vec2{
		X: -e.a * sin * e.dir,
		Y: e.b * cos * e.dir,
	}
}

// NewEllipse returns a unit-speed ellipse with semi-axes a and b, centered
// on the origin, normalized at the given resolution (see [Normalize] for
// the resolution/accuracy trade-off; [DefaultResolution] is a good
// default).
//
// It panics if a or b is zero.
func NewEllipse(a, b float64, resolution int) Curve {
	return newEllipse(a, b, 1, resolution)
}

// NewEllipseReversed is [NewEllipse] with the traversal direction reversed
// (t → −t), independently normalized. It serves the same purpose as
// [Invert] but is built directly on the generator, for meshes that need the
// reversed orientation.
func NewEllipseReversed(a, b float64, resolution int) Curve {
	return newEllipse(a, b, -1, resolution)
}

func newEllipse(a, b, dir float64, resolution int) Curve {
	if a == 0 || b == 0 {
		panic("spiro: ellipse with zero semi-axis")
	}
	return Normalize(ellipse{a: a, b: b, dir: dir}, resolution)
}
