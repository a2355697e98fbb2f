package spiro

// DefaultOutlineStep is a default arc-length step for [Gear.Outline],
// suitable for rendering gears of on-screen size as polylines.
const DefaultOutlineStep = 5.0

// Gear pairs a unit-speed closed curve with an anchor point, both expressed
// in the gear's own local frame.
//
// For a rotating gear, Pen is the traced pen point; for a fixed gear it is
// an unused nominal origin. Gears are immutable values, constructed once
// per spirograph configuration.
type Gear struct {
	Curve Curve
	Pen   Point
}

// CircleGear returns a gear with an exact unit-speed circle of radius r and
// the given pen anchor. A negative radius reverses the traversal direction,
// selecting outer meshing orientation.
func CircleGear(r float64, pen Point) Gear {
	return Gear{Curve: NewCircle(r), Pen: pen}
}

// EllipseGear returns a gear whose curve is an ellipse with semi-axes a and
// b, normalized to unit speed at the given resolution.
func EllipseGear(a, b float64, pen Point, resolution int) Gear {
	return Gear{Curve: NewEllipse(a, b, resolution), Pen: pen}
}

// EllipseGearReversed is [EllipseGear] with the traversal direction
// reversed, for outer meshing orientation.
func EllipseGearReversed(a, b float64, pen Point, resolution int) Gear {
	return Gear{Curve: NewEllipseReversed(a, b, resolution), Pen: pen}
}

// Outline samples the gear's curve as a closed polyline in the gear's local
// frame, with roughly step length units per segment. Consumers transform it
// by the per-frame rigid transform to draw the gear in world space.
func (g Gear) Outline(step float64) []Point {
	return SamplePoints(g.Curve, step)
}

// BoundingBox returns the bounds of the gear's outline in its local frame.
func (g Gear) BoundingBox() Rect {
	return BoundingBox(g.Outline(DefaultOutlineStep))
}
