package spiro

import (
	"fmt"
	"math"
	"sort"
)

// DefaultResolution is a default sampling resolution for [Normalize]. It
// keeps positional quantization below about 10⁻⁴ of a curve's perimeter,
// which is well under a pixel for gears of on-screen size.
const DefaultResolution = 10_000

// Curve describes a closed parametric curve over the periodic domain
// [0, length).
//
// Point and Tangent must be defined for all real t via periodic extension,
// so Point(0) == Point(length) and consumers never need to reduce t
// themselves. Curves are immutable values; combinators return new,
// independent curves.
//
// A curve is unit speed when |Tangent(t)| == 1 everywhere, making t signed
// arc length. Gear curves must be unit speed, either analytically exact
// ([Circle]) or passed through [Normalize].
type Curve interface {
	// Length returns the total extent of the parameter domain, which for a
	// unit-speed curve is the arc length of one full traversal.
	Length() float64
	// Point returns the position at parameter t.
	Point(t float64) Point
	// Tangent returns the velocity vector at parameter t.
	Tangent(t float64) Vec2
}

// wrap reduces t into [0, length).
func wrap(t, length float64) float64 {
	t = math.Mod(t, length)
	if t < 0 {
		t += length
	}
	return t
}

// Normalize converts an arbitrarily-speed curve into a unit-speed curve
// over [0, arclength), measured by sampling c at resolution equally spaced
// parameters and accumulating polyline lengths.
//
// Evaluating the result at arc length l binary-searches the cumulative
// table and snaps to the nearest sampled parameter grid point; there is no
// interpolation within a segment. Both the arc-length measurement error and
// the positional quantization are therefore on the order of
// c's perimeter divided by resolution. Callers needing smoother output pick
// a larger resolution ([DefaultResolution] suits ellipses of on-screen
// size). The cost is paid once at construction; lookups are O(log n).
//
// Normalize panics if resolution < 2 or if the sampled curve has zero
// length.
func Normalize(c Curve, resolution int) Curve {
	if resolution < 2 {
		panic(fmt.Sprintf("spiro: Normalize with resolution %d, need at least 2", resolution))
	}
	step := c.Length() / float64(resolution)
	cum := make([]float64, resolution)
	prev := c.Point(0)
	for i := 1; i < resolution; i++ {
		pt := c.Point(step * float64(i))
		cum[i] = cum[i-1] + pt.Sub(prev).Hypot()
		prev = pt
	}
	total := cum[resolution-1]
	if total == 0 {
		panic("spiro: Normalize of a zero-length curve")
	}
	return &normalizedCurve{c: c, step: step, cum: cum, total: total}
}

// normalizedCurve inverts arc length via its immutable cumulative-length
// table, built once at construction.
type normalizedCurve struct {
	c     Curve
	step  float64
	cum   []float64
	total float64
}

func (nc *normalizedCurve) Length() float64 {
	return nc.total
}

// param maps arc length l to the original curve's parameter, snapped to the
// sampling grid.
func (nc *normalizedCurve) param(l float64) float64 {
	l = wrap(l, nc.total)
	i := sort.SearchFloat64s(nc.cum, l)
	return nc.step * float64(i)
}

func (nc *normalizedCurve) Point(t float64) Point {
	return nc.c.Point(nc.param(t))
}

func (nc *normalizedCurve) Tangent(t float64) Vec2 {
	return nc.c.Tangent(nc.param(t)).Normalize()
}

// Concatenate joins two curves into one whose domain length is the sum of
// the two domains: parameters below c1's length delegate to c1, the rest to
// c2 (shifted by c1's length).
//
// For a geometrically smooth result the end of c1 must meet the start of c2
// in both position and tangent direction; this is not enforced.
func Concatenate(c1, c2 Curve) Curve {
	return concatCurve{c1, c2}
}

type concatCurve struct {
	c1, c2 Curve
}

func (cc concatCurve) Length() float64 {
	return cc.c1.Length() + cc.c2.Length()
}

func (cc concatCurve) Point(t float64) Point {
	t = wrap(t, cc.Length())
	if t < cc.c1.Length() {
		return cc.c1.Point(t)
	}
	return cc.c2.Point(t - cc.c1.Length())
}

func (cc concatCurve) Tangent(t float64) Vec2 {
	t = wrap(t, cc.Length())
	if t < cc.c1.Length() {
		return cc.c1.Tangent(t)
	}
	return cc.c2.Tangent(t - cc.c1.Length())
}

// Invert returns the same curve traversed in the opposite direction:
// Point(t) == c.Point(−t) and Tangent(t) == −c.Tangent(−t). The length is
// unchanged. Inversion selects the orientation convention required for
// internal versus external gear meshing.
func Invert(c Curve) Curve {
	return invertedCurve{c}
}

type invertedCurve struct {
	c Curve
}

func (ic invertedCurve) Length() float64 {
	return ic.c.Length()
}

func (ic invertedCurve) Point(t float64) Point {
	return ic.c.Point(-t)
}

func (ic invertedCurve) Tangent(t float64) Vec2 {
	return ic.c.Tangent(-t).Negate()
}

// SamplePoints flattens one full traversal of a closed curve into a
// polyline with roughly step length units per segment. The final point
// closes the loop by repeating Point(0).
//
// SamplePoints panics if step is not positive.
func SamplePoints(c Curve, step float64) []Point {
	if step <= 0 {
		panic(fmt.Sprintf("spiro: SamplePoints with step %g", step))
	}
	n := int(math.Ceil(c.Length() / step))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		pts = append(pts, c.Point(float64(i)*step))
	}
	pts = append(pts, c.Point(0))
	return pts
}
