package pen

import (
	"errors"
	"testing"
)

func TestSubPathPush(t *testing.T) {
	var sub SubPath

	// Drawing commands before any MoveTo are dropped.
	if sub.Push(LineTo(Pt(1, 1))) {
		t.Error("LineTo on empty subpath should be dropped")
	}
	diff(t, SubPath(nil), sub)

	sub.MoveTo(Pt(0, 0))
	sub.LineTo(Pt(10, 0))

	// A second MoveTo would start a new subpath; dropped.
	if sub.Push(MoveTo(Pt(5, 5))) {
		t.Error("second MoveTo should be dropped")
	}

	sub.ClosePath()

	// Nothing may follow ClosePath.
	if sub.Push(LineTo(Pt(3, 3))) {
		t.Error("LineTo after ClosePath should be dropped")
	}
	if sub.Push(ClosePath()) {
		t.Error("ClosePath after ClosePath should be dropped")
	}

	diff(t, SubPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), ClosePath()}, sub)
	if err := sub.Validate(); err != nil {
		t.Errorf("built subpath should validate, got %v", err)
	}
}

func TestSubPathValidate(t *testing.T) {
	cases := []struct {
		name string
		sub  SubPath
		want error
	}{
		{"empty", SubPath{}, ErrEmptySubPath},
		{"no leading move", SubPath{LineTo(Pt(1, 1))}, ErrNoLeadingMove},
		{"move after move", SubPath{MoveTo(Pt(0, 0)), MoveTo(Pt(1, 1))}, ErrAdjacency},
		{"close after close", SubPath{MoveTo(Pt(0, 0)), ClosePath(), ClosePath()}, ErrAdjacency},
		{"line after close", SubPath{MoveTo(Pt(0, 0)), ClosePath(), LineTo(Pt(1, 1))}, ErrAdjacency},
		{"valid", SubPath{MoveTo(Pt(0, 0)), CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)), ClosePath()}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.sub.Validate()
			if c.want == nil {
				if err != nil {
					t.Errorf("got %v, want nil", err)
				}
			} else if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestSubPathAnchors(t *testing.T) {
	sub := SubPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		CubicTo(Pt(12, 5), Pt(18, 5), Pt(20, 0)),
		ClosePath(),
	}
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}, sub.Anchors())
	if !sub.Closed() {
		t.Error("subpath should report closed")
	}
}

func TestSubPathRound(t *testing.T) {
	sub := SubPath{MoveTo(Pt(1.2345, 6.789)), CubicTo(Pt(0.006, 0), Pt(1.004, 0), Pt(2.5049, 0))}
	want := SubPath{MoveTo(Pt(1.23, 6.79)), CubicTo(Pt(0.01, 0), Pt(1, 0), Pt(2.5, 0))}
	diff(t, want, sub.Round(2))
}

func TestSubPathElements(t *testing.T) {
	sub := SubPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), ClosePath()}
	var got []PathElement
	for el := range sub.Elements() {
		got = append(got, el)
	}
	diff(t, []PathElement(sub), got)
}

func TestGroupBySubPath(t *testing.T) {
	elements := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		MoveTo(Pt(20, 20)),
		LineTo(Pt(30, 20)),
		ClosePath(),
	}
	want := []SubPath{
		{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0))},
		{MoveTo(Pt(20, 20)), LineTo(Pt(30, 20)), ClosePath()},
	}
	diff(t, want, GroupBySubPath(elements))

	// A selection that starts mid-subpath still forms a group; Simplify
	// coerces its leading element.
	headless := []PathElement{LineTo(Pt(1, 1)), LineTo(Pt(2, 2))}
	diff(t, []SubPath{{LineTo(Pt(1, 1)), LineTo(Pt(2, 2))}}, GroupBySubPath(headless))
}
