package spiro

// Tracer accumulates the world-frame pen trajectory of a spirograph,
// advancing the shared arc-length parameter at a constant velocity.
//
// It replaces a frame-scheduling framework with a pull model: the caller
// supplies elapsed time deltas, one per frame, and reads back the point to
// draw. The tracer holds the only mutable state in this package and is not
// safe for concurrent use; the underlying spirograph remains freely
// shareable.
type Tracer struct {
	Graph    SpiroGraph
	Velocity float64

	t    float64
	last Point
	pts  []Point
}

// NewTracer returns a tracer positioned at parameter 0, with the starting
// pen point already recorded. velocity is arc length per unit time.
func NewTracer(sg SpiroGraph, velocity float64) *Tracer {
	tr := &Tracer{Graph: sg, Velocity: velocity}
	tr.last = sg.PenPoint(0)
	tr.pts = append(tr.pts, tr.last)
	return tr
}

// Step advances the parameter by dt·velocity, records the new world-frame
// pen point, and returns it.
func (tr *Tracer) Step(dt float64) Point {
	tr.t += dt * tr.Velocity
	tr.last = tr.Graph.PenPoint(tr.t)
	tr.pts = append(tr.pts, tr.last)
	return tr.last
}

// Pos returns the current arc-length parameter.
func (tr *Tracer) Pos() float64 {
	return tr.t
}

// Last returns the most recently recorded pen point.
func (tr *Tracer) Last() Point {
	return tr.last
}

// Trajectory returns the recorded pen points, oldest first. The slice is
// owned by the tracer and grows with further steps.
func (tr *Tracer) Trajectory() []Point {
	return tr.pts
}

// BoundingBox returns the bounds of the recorded trajectory.
func (tr *Tracer) BoundingBox() Rect {
	return BoundingBox(tr.pts)
}

// Trace runs a spirograph for the given duration at fixed time steps and
// returns the full pen trajectory. It is a convenience wrapper around
// [Tracer] for non-interactive consumers.
func Trace(sg SpiroGraph, velocity, duration, dt float64) []Point {
	tr := NewTracer(sg, velocity)
	steps := int(duration / dt)
	for i := 0; i < steps; i++ {
		tr.Step(dt)
	}
	return tr.Trajectory()
}
