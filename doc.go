// Package spiro computes the motion of a point traced by a gear rolling
// without slipping around (or inside) another gear, the classical
// spirograph mechanism.
//
// # Curves
//
// The central abstraction is [Curve], a closed parametric curve over a
// periodic domain [0, length). Once a curve is unit speed, its parameter
// doubles as signed arc length, which is what makes the rolling-contact
// computation a matter of evaluating two curves at the same parameter.
//
// Curves are immutable values. Generators produce them ([Circle],
// [NewEllipse], [NewEllipseReversed]) and combinators derive new ones from
// existing ones ([Normalize], [Concatenate], [Invert]). A circle is unit
// speed analytically; all other curves pass through [Normalize], which
// measures arc length with a sampled cumulative-length table and inverts it
// with a binary search. The table snaps to the sampled parameter grid rather
// than interpolating within a segment, so positional accuracy is bounded by
// perimeter/resolution; see [Normalize] for the trade-off.
//
// # Gears and spirographs
//
// A [Gear] pairs a curve with a pen anchor expressed in the gear's own
// frame. A [SpiroGraph] holds a fixed and a rotating gear whose curves are
// both unit speed, and [SpiroGraph.Transform] produces, for any arc length
// t, the rigid transform mapping the rotating gear's frame into the fixed
// gear's frame such that the two curves touch tangentially at the contact
// point with no sliding. Applying that transform to the pen anchor for
// increasing t traces the spirograph figure; [Tracer] does exactly that,
// one frame at a time.
//
// Meshing orientation is a construction-time convention: the constructors
// ([TwoCirclesInner], [TwoCirclesOuter], [CircleEllipseInner],
// [CircleEllipseOuter], [EllipseCircleOuter]) select the traversal
// direction of the rotating gear (negative circle radius, reversed ellipse)
// that makes the contact geometrically correct for inner or outer rolling.
//
// The engine is pure: every computation is a deterministic function of its
// inputs, with no shared mutable state, so curves, gears and spirographs
// may be evaluated concurrently for any number of parameters.
package spiro
