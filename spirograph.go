package spiro

// SpiroGraph holds a fixed gear and a rotating gear whose curves are both
// unit speed, so that a single scalar parameter t represents equal arc
// length traveled along both curves. That equal-arc-length coupling is the
// no-slip rolling constraint.
//
// Use the mesh constructors ([TwoCirclesInner], [TwoCirclesOuter],
// [CircleEllipseInner], [CircleEllipseOuter], [EllipseCircleOuter]) rather
// than assembling gears by hand; they encode the traversal-direction
// conventions the transform depends on. A hand-assembled mesh with the
// wrong orientation still yields a kinematically valid transform, but the
// gears cross at the contact point instead of rolling on each other.
type SpiroGraph struct {
	Fixed    Gear
	Rotating Gear
}

// Transform computes the rigid transform that maps the rotating gear's
// local frame into the fixed gear's frame after both curves have traversed
// arc length t.
//
// The rotating gear is rotated by the minimal signed angle aligning its
// contact tangent with the fixed gear's contact tangent, then translated so
// the two contact points coincide. Equal arc length means no sliding at the
// contact, and tangent alignment means the curves touch rather than cross,
// so applying the result to the pen anchor for increasing t traces the
// spirograph figure.
//
// The transform is recomputed per call and never cached; it is a pure
// function of t.
func (sg SpiroGraph) Transform(t float64) Affine {
	p := sg.Fixed.Curve.Point(t)
	v := sg.Fixed.Curve.Tangent(t)
	q := sg.Rotating.Curve.Point(t)
	w := sg.Rotating.Curve.Tangent(t)
	// The angle value wraps at ±π, but the rotation built from it is
	// continuous in v and w, so the transform has no jump there.
	rot := Rotate(w.AngleTo(v))
	return rot.ThenTranslate(p.Sub(q.Transform(rot)))
}

// PenPoint maps the rotating gear's pen anchor into the fixed gear's frame
// at parameter t.
func (sg SpiroGraph) PenPoint(t float64) Point {
	return sg.Rotating.Pen.Transform(sg.Transform(t))
}

// TwoCirclesInner returns a spirograph with a rotating circle of radius r2
// rolling along the inside of a fixed circle of radius r1, tracing a
// hypotrochoid. pen is the traced point in the rotating gear's frame.
//
// Both radii must be nonzero and are used with positive orientation.
func TwoCirclesInner(r1, r2 float64, pen Point) SpiroGraph {
	return SpiroGraph{
		Fixed:    CircleGear(r1, Point{}),
		Rotating: CircleGear(r2, pen),
	}
}

// TwoCirclesOuter returns a spirograph with a rotating circle of radius r2
// rolling along the outside of a fixed circle of radius r1, tracing an
// epitrochoid. The rotating circle is traversed with negative radius to
// select the outer meshing orientation.
func TwoCirclesOuter(r1, r2 float64, pen Point) SpiroGraph {
	return SpiroGraph{
		Fixed:    CircleGear(r1, Point{}),
		Rotating: CircleGear(-r2, pen),
	}
}

// CircleEllipseInner returns a spirograph with a rotating ellipse with
// semi-axes a, b rolling along the inside of a fixed circle of radius r1.
// The ellipse is normalized to unit speed at the given resolution.
func CircleEllipseInner(r1, a, b float64, pen Point, resolution int) SpiroGraph {
	return SpiroGraph{
		Fixed:    CircleGear(r1, Point{}),
		Rotating: EllipseGear(a, b, pen, resolution),
	}
}

// CircleEllipseOuter returns a spirograph with a rotating ellipse rolling
// along the outside of a fixed circle of radius r1. The ellipse traversal
// is reversed to select the outer meshing orientation.
func CircleEllipseOuter(r1, a, b float64, pen Point, resolution int) SpiroGraph {
	return SpiroGraph{
		Fixed:    CircleGear(r1, Point{}),
		Rotating: EllipseGearReversed(a, b, pen, resolution),
	}
}

// EllipseCircleOuter returns a spirograph with a rotating circle of radius
// r2 rolling along the outside of a fixed ellipse with semi-axes a, b.
func EllipseCircleOuter(a, b, r2 float64, pen Point, resolution int) SpiroGraph {
	return SpiroGraph{
		Fixed:    EllipseGear(a, b, Point{}, resolution),
		Rotating: CircleGear(-r2, pen),
	}
}
