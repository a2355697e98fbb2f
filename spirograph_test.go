package spiro

import (
	"math"
	"testing"
)

func testMeshes() map[string]SpiroGraph {
	pen := Pt(20, 0)
	return map[string]SpiroGraph{
		"two circles inner":    TwoCirclesInner(100, 30, pen),
		"two circles outer":    TwoCirclesOuter(100, 30, pen),
		"circle ellipse inner": CircleEllipseInner(100, 40, 25, pen, 2000),
		"circle ellipse outer": CircleEllipseOuter(100, 40, 25, pen, 2000),
		"ellipse circle outer": EllipseCircleOuter(100, 60, 30, pen, 2000),
	}
}

// linear applies only the rotation part of a rigid transform, for mapping
// direction vectors.
func linear(aff Affine, v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

func TestContactCoincidence(t *testing.T) {
	for name, sg := range testMeshes() {
		length := sg.Fixed.Curve.Length()
		for i := 0; i < 100; i++ {
			l := 3 * length * float64(i) / 100
			aff := sg.Transform(l)
			p := sg.Fixed.Curve.Point(l)
			q := sg.Rotating.Curve.Point(l)
			if d := q.Transform(aff).Distance(p); d > 1e-9 {
				t.Errorf("%s: contact points %v apart at %v", name, d, l)
			}
		}
	}
}

func TestTangentAlignment(t *testing.T) {
	for name, sg := range testMeshes() {
		length := sg.Fixed.Curve.Length()
		for i := 0; i < 100; i++ {
			l := 3 * length * float64(i) / 100
			aff := sg.Transform(l)
			v := sg.Fixed.Curve.Tangent(l)
			w := linear(aff, sg.Rotating.Curve.Tangent(l))
			if got := w.Cross(v); math.Abs(got) > 1e-9 {
				t.Errorf("%s: tangents not parallel at %v (cross %v)", name, l, got)
			}
			if got := w.Dot(v); got <= 0 {
				t.Errorf("%s: tangents reversed at %v (dot %v)", name, l, got)
			}
		}
	}
}

func TestRigidTransform(t *testing.T) {
	// The transform must be rigid: determinant 1 and preserved distances.
	sg := TwoCirclesInner(100, 30, Pt(20, 0))
	for i := 0; i < 50; i++ {
		l := 4 * math.Pi * 100 * float64(i) / 50
		aff := sg.Transform(l)
		if got := aff.Determinant(); math.Abs(got-1) > 1e-12 {
			t.Errorf("got determinant %v at %v, expected 1", got, l)
		}
		a, b := Pt(3, -4), Pt(-7, 2)
		if got, want := a.Transform(aff).Distance(b.Transform(aff)), a.Distance(b); math.Abs(got-want) > 1e-9 {
			t.Errorf("got distance %v at %v, expected %v", got, l, want)
		}
	}
}

func TestHypotrochoid(t *testing.T) {
	// Two circles meshed internally trace the closed-form hypotrochoid.
	r1, r2, d := 100.0, 30.0, 20.0
	sg := TwoCirclesInner(r1, r2, Pt(d, 0))

	// r1/r2 = 10/3, so the figure closes after 3 revolutions; sweep one
	// full period.
	for i := 0; i < 1000; i++ {
		th := 3 * 2 * math.Pi * float64(i) / 1000
		k := (r1 - r2) / r2
		want := Pt(
			(r1-r2)*math.Cos(th)+d*math.Cos(k*th),
			(r1-r2)*math.Sin(th)-d*math.Sin(k*th),
		)
		got := sg.PenPoint(th * r1)
		assertNear(t, got, want, 1e-9)
	}
}

func TestEpitrochoid(t *testing.T) {
	// Two circles meshed externally trace the closed-form epitrochoid (with
	// the pen phase of this gear convention: pen (d, 0) starts on the far
	// side of the rotating gear).
	r1, r2, d := 100.0, 30.0, 20.0
	sg := TwoCirclesOuter(r1, r2, Pt(d, 0))

	for i := 0; i < 1000; i++ {
		th := 3 * 2 * math.Pi * float64(i) / 1000
		k := (r1 + r2) / r2
		want := Pt(
			(r1+r2)*math.Cos(th)+d*math.Cos(k*th),
			(r1+r2)*math.Sin(th)+d*math.Sin(k*th),
		)
		got := sg.PenPoint(th * r1)
		assertNear(t, got, want, 1e-9)
	}
}

func TestMeshSide(t *testing.T) {
	// The rotating gear's center stays inside the fixed circle for inner
	// meshing and outside it for outer meshing.
	inner := TwoCirclesInner(100, 30, Pt(20, 0))
	outer := TwoCirclesOuter(100, 30, Pt(20, 0))
	for i := 0; i < 100; i++ {
		l := 6 * math.Pi * 100 * float64(i) / 100
		ci := Pt(0, 0).Transform(inner.Transform(l))
		co := Pt(0, 0).Transform(outer.Transform(l))
		if got := ci.Distance(Pt(0, 0)); math.Abs(got-70) > 1e-9 {
			t.Errorf("inner: got center distance %v at %v, expected 70", got, l)
		}
		if got := co.Distance(Pt(0, 0)); math.Abs(got-130) > 1e-9 {
			t.Errorf("outer: got center distance %v at %v, expected 130", got, l)
		}
	}
}

func TestTransformContinuity(t *testing.T) {
	// Analytic circle gears: the transform moves proportionally to δ
	// everywhere, including where the alignment angle wraps at ±π.
	sg := TwoCirclesInner(100, 30, Pt(20, 0))
	const delta = 1e-4
	// Coefficient rate bound: rotation rate |1/r2 − 1/r1| on the linear
	// part, plus center motion on the translation part.
	const bound = 10 * delta

	for i := 0; i < 5000; i++ {
		l := 6 * math.Pi * 100 * float64(i) / 5000
		a0 := sg.Transform(l).Coefficients()
		a1 := sg.Transform(l + delta).Coefficients()
		for j := range a0 {
			if d := math.Abs(a1[j] - a0[j]); d > bound {
				t.Fatalf("coefficient %d jumped by %v at %v (bound %v)", j, d, l, bound)
			}
		}
	}
}

func TestPenPoint(t *testing.T) {
	sg := TwoCirclesInner(100, 30, Pt(20, 0))
	// At l = 0 both contact points are on the positive x-axis with aligned
	// tangents, so the transform is a pure translation by r1−r2.
	diff(t, Pt(90, 0), sg.PenPoint(0))
}
