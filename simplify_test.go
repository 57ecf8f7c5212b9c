package pen

import (
	"math"
	"testing"
)

func TestSimplifyNearCollinear(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0.01)),
		LineTo(Pt(2, 0)),
		LineTo(Pt(10, 0)),
	}
	got := Simplify(sub, SimplifyOptions{Tolerance: 0.5, MaxDistance: 100})
	diff(t, SubPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0))}, got)
}

func TestSimplifyKeepsSalientPoint(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(5, 10)),
		LineTo(Pt(10, 0)),
	}
	got := Simplify(sub, SimplifyOptions{Tolerance: 1})
	diff(t, SubPath{MoveTo(Pt(0, 0)), LineTo(Pt(5, 10)), LineTo(Pt(10, 0))}, got)
}

func TestSimplifyEndpointPreservation(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 3)),
		LineTo(Pt(2, -3)),
		LineTo(Pt(3, 1)),
		LineTo(Pt(9.5, 2.25)),
	}
	got := Simplify(sub, SimplifyOptions{Tolerance: 10, MaxDistance: 1})
	anchors := got.Anchors()
	diff(t, Pt(0, 0), anchors[0])
	diff(t, Pt(9.5, 2.25), anchors[len(anchors)-1])
}

func TestSimplifyToleranceBound(t *testing.T) {
	var sub SubPath
	sub.MoveTo(Pt(0, 0))
	for x := 1.0; x <= 20; x++ {
		sub.LineTo(Pt(x, 3*math.Sin(x)))
	}
	const tolerance = 0.75
	got := Simplify(sub, SimplifyOptions{Tolerance: tolerance})
	kept := got.Anchors()

	// Every dropped anchor lies within tolerance of one of the retained
	// chords.
	for _, pt := range sub.Anchors() {
		best := math.Inf(1)
		for i := 1; i < len(kept); i++ {
			best = math.Min(best, PerpDistance(pt, kept[i-1], kept[i]))
		}
		if best > tolerance {
			t.Errorf("anchor %s is %v from the simplified path, want <= %v", pt, best, tolerance)
		}
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	var sub SubPath
	sub.MoveTo(Pt(0, 0))
	for x := 0.5; x <= 30; x += 0.5 {
		sub.LineTo(Pt(x, 4*math.Sin(x/3)+math.Sin(7*x)))
	}
	opts := SimplifyOptions{Tolerance: 0.5}
	once := Simplify(sub, opts)
	twice := Simplify(once, opts)
	diff(t, once, twice)
}

func TestSimplifyIdempotentWithCollapse(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0.1)),
		LineTo(Pt(5, 6)),
		LineTo(Pt(5.5, 6.1)),
		LineTo(Pt(10, 0)),
	}
	opts := SimplifyOptions{Tolerance: 0.5, MaxDistance: 2, GridSize: 0.5}
	once := Simplify(sub, opts)
	twice := Simplify(once, opts)
	diff(t, once, twice)
}

func TestSimplifyMaxDistanceCollapse(t *testing.T) {
	var sub SubPath
	sub.MoveTo(Pt(0, 0))
	for x := 1.0; x <= 10; x++ {
		// Alternating bumps that all exceed the tolerance, packed
		// closer than the spacing bound.
		y := 0.2
		if int(x)%2 == 0 {
			y = -0.2
		}
		sub.LineTo(Pt(x, y))
	}
	dense := Simplify(sub, SimplifyOptions{Tolerance: 0.1})
	sparse := Simplify(sub, SimplifyOptions{Tolerance: 0.1, MaxDistance: 3})
	if len(sparse) >= len(dense) {
		t.Errorf("spacing bound kept %d elements, want fewer than %d", len(sparse), len(dense))
	}
}

func TestSimplifyGrid(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0.2, -0.4)),
		LineTo(Pt(4.7, 5.2)),
		LineTo(Pt(9.8, 10.1)),
	}
	got := Simplify(sub, SimplifyOptions{Tolerance: 0.5, GridSize: 1})
	for _, pt := range got.Anchors() {
		if pt.X != math.Round(pt.X) || pt.Y != math.Round(pt.Y) {
			t.Errorf("anchor %s is not on the grid", pt)
		}
	}
}

func TestSimplifyCoercesLeadingMove(t *testing.T) {
	// A selection captured mid-subpath has no leading MoveTo; the
	// simplifier coerces rather than rejects.
	sub := SubPath{LineTo(Pt(0, 0)), LineTo(Pt(3, 4)), LineTo(Pt(10, 0))}
	got := Simplify(sub, SimplifyOptions{Tolerance: 0.1})
	diff(t, MoveToKind, got[0].Kind)
	if err := got.Validate(); err != nil {
		t.Errorf("simplifier output should validate, got %v", err)
	}
}

func TestSimplifyPreservesClose(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		LineTo(Pt(10, 10)),
		LineTo(Pt(0, 10)),
		ClosePath(),
	}
	got := Simplify(sub, SimplifyOptions{Tolerance: 0.1})
	if !got.Closed() {
		t.Error("trailing ClosePath should be preserved")
	}
}

func TestSimplifyTooFewAnchors(t *testing.T) {
	diff(t, SubPath(nil), Simplify(SubPath{}, SimplifyOptions{Tolerance: 1}))
	diff(t, SubPath(nil), Simplify(SubPath{MoveTo(Pt(0, 0))}, SimplifyOptions{Tolerance: 1}))
	diff(t, SubPath(nil), Simplify(SubPath{MoveTo(Pt(0, 0)), ClosePath()}, SimplifyOptions{Tolerance: 1}))
}
