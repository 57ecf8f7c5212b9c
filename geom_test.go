package pen

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMirror(t *testing.T) {
	diff(t, Pt(5, 0), Mirror(Pt(15, 0), Pt(10, 0)))
	diff(t, Pt(-3, -4), Mirror(Pt(3, 4), Pt(0, 0)))
	// Mirroring twice returns the original handle.
	diff(t, Pt(7, 2), Mirror(Mirror(Pt(7, 2), Pt(1, 1)), Pt(1, 1)))
}

func TestPerpDistance(t *testing.T) {
	// Interior projection.
	if d := PerpDistance(Pt(5, 5), Pt(0, 0), Pt(10, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	// Beyond the end: measures against the endpoint.
	if d := PerpDistance(Pt(13, 4), Pt(0, 0), Pt(10, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	// Before the start.
	if d := PerpDistance(Pt(-3, 4), Pt(0, 0), Pt(10, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	// Degenerate segment.
	if d := PerpDistance(Pt(3, 4), Pt(0, 0), Pt(0, 0)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestControlPointsLonePredecessor(t *testing.T) {
	c1, c2 := ControlPoints(Pt(0, 0), Pt(10, 0), nil, DefaultTension, DefaultLoneNeighborRatio)
	diff(t, Pt(4, 0), c1, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(6, 0), c2, cmpopts.EquateApprox(0, 1e-12))
}

func TestControlPointsTangentBlend(t *testing.T) {
	next := Pt(20, 10)
	c1, c2 := ControlPoints(Pt(0, 0), Pt(10, 0), &next, 0.3, 0.4)
	diff(t, Pt(3, 0), c1, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(4, -3), c2, cmpopts.EquateApprox(0, 1e-12))
}

func TestSnapToGrid(t *testing.T) {
	diff(t, Pt(10, 20), snapToGrid(Pt(12, 18), 10))
	diff(t, Pt(12.5, 17.5), snapToGrid(Pt(12.4, 18.7), 2.5))
	// Non-positive size disables snapping.
	diff(t, Pt(12.4, 18.7), snapToGrid(Pt(12.4, 18.7), 0))
}
