package spiro

import (
	"math"
	"testing"
)

func TestVec2Basic(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}

	v := Vec(3, 4)
	if got := v.Hypot(); !approxEqual(got, 5) {
		t.Errorf("got magnitude %v, expected 5", got)
	}
	if got := v.Hypot2(); !approxEqual(got, 25) {
		t.Errorf("got squared magnitude %v, expected 25", got)
	}
	if got := v.Dot(Vec(2, -1)); !approxEqual(got, 2) {
		t.Errorf("got dot product %v, expected 2", got)
	}
	if got := v.Cross(Vec(2, -1)); !approxEqual(got, -11) {
		t.Errorf("got cross product %v, expected -11", got)
	}
	if got := v.Normalize().Hypot(); !approxEqual(got, 1) {
		t.Errorf("got normalized magnitude %v, expected 1", got)
	}
}

func TestAngleTo(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-9
	}

	if got := Vec(1, 0).AngleTo(Vec(0, 1)); !approxEqual(got, math.Pi/2) {
		t.Errorf("got angle %v, expected %v", got, math.Pi/2)
	}
	if got := Vec(0, 1).AngleTo(Vec(1, 0)); !approxEqual(got, -math.Pi/2) {
		t.Errorf("got angle %v, expected %v", got, -math.Pi/2)
	}
	// Antiparallel vectors land on π, the closed end of (−π, π].
	if got := Vec(1, 0).AngleTo(Vec(-1, 0)); !approxEqual(got, math.Pi) {
		t.Errorf("got angle %v, expected %v", got, math.Pi)
	}

	// Rotating by the resulting angle maps the first direction onto the
	// second.
	dirs := []Vec2{
		Vec(1, 0), Vec(0.6, 0.8), Vec(-0.6, 0.8), Vec(-1, 0), Vec(0.3, -0.95),
	}
	for _, a := range dirs {
		for _, b := range dirs {
			a, b := a.Normalize(), b.Normalize()
			th := a.AngleTo(b)
			if th <= -math.Pi || th > math.Pi {
				t.Errorf("angle %v out of (−π, π]", th)
			}
			got := Point(a).Transform(Rotate(th))
			assertNear(t, got, Point(b), 1e-9)
		}
	}
}

func TestVecFromAngle(t *testing.T) {
	for _, th := range []float64{0, 0.5, math.Pi / 2, math.Pi, -2.5} {
		v := VecFromAngle(th)
		if got := v.Hypot(); math.Abs(got-1) > 1e-12 {
			t.Errorf("got magnitude %v, expected 1", got)
		}
		if got := v.Angle(); math.Abs(math.Mod(got-th+3*math.Pi, 2*math.Pi)-math.Pi) > 1e-9 {
			t.Errorf("got angle %v, expected %v", got, th)
		}
	}
}
