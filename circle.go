package spiro

import (
	"fmt"
	"math"
)

// Circle is a circle of the given radius centered on the origin,
// parametrized by arc length: Point(t) = r·(cos(t/r), sin(t/r)). This is
// exactly unit speed for any nonzero radius, so circles never need
// [Normalize].
//
// The sign of the radius selects the traversal direction: a negative
// radius traverses the same circle the opposite way, equivalent in effect
// to [Invert]. Spirograph constructors use this to pick outer versus inner
// meshing orientation.
type Circle struct {
	Radius float64
}

var _ Curve = Circle{}

// NewCircle returns the unit-speed circle of radius r. It panics if r is
// zero, which would make the parametrization degenerate.
func NewCircle(r float64) Circle {
	if r == 0 {
		panic("spiro: circle with zero radius")
	}
	return Circle{Radius: r}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(r=%g)", c.Radius)
}

// Length returns the circumference, 2π·|r|.
func (c Circle) Length() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

func (c Circle) Point(t float64) Point {
	sin, cos := math.Sincos(t / c.Radius)
	return Point{
		X: c.Radius * cos,
		Y: c.Radius * sin,
	}
}

func (c Circle) Tangent(t float64) Vec2 {
	sin, cos := math.Sincos(t / c.Radius)
	return Vec2{
		X: -sin,
		Y: cos,
	}
}
