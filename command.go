package pen

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// PathID identifies a path owned by the host document store.
type PathID string

// SubPathID identifies one subpath within a host-owned path.
type SubPathID string

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is the element of a drawn path.
//
// A valid subpath has MoveTo as its first element. For CubicTo, P0 and P1
// are the two off-curve control points and P2 is the endpoint; for MoveTo
// and LineTo only P0 is meaningful.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(c1, c2, pt Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: c1, P1: c2, P2: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// EndPoint returns the on-curve point the element moves the pen to. The
// second return value is false for ClosePath, which has no endpoint of its
// own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// roundTo rounds every coordinate of the element to the given number of
// decimals.
func (el PathElement) roundTo(decimals int) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.roundTo(decimals))
	case LineToKind:
		return LineTo(el.P0.roundTo(decimals))
	case CubicToKind:
		return CubicTo(el.P0.roundTo(decimals), el.P1.roundTo(decimals), el.P2.roundTo(decimals))
	default:
		return el
	}
}

// Validation errors for [SubPath.Validate].
var (
	ErrEmptySubPath  = errors.New("empty subpath")
	ErrNoLeadingMove = errors.New("subpath must begin with MoveTo")
	ErrAdjacency     = errors.New("invalid command adjacency")
)

// SubPath is one unbroken, ordered run of path elements. The first element
// of a valid subpath is MoveTo, followed by any number of LineTo and CubicTo
// elements and at most one trailing ClosePath.
type SubPath []PathElement

// Push appends el if the append keeps the subpath valid, and reports whether
// it did. Invalid appends (a second MoveTo, anything after ClosePath, a
// drawing command before any MoveTo) are dropped without mutating the
// subpath.
func (p *SubPath) Push(el PathElement) bool {
	if len(*p) == 0 {
		if el.Kind != MoveToKind {
			return false
		}
		*p = append(*p, el)
		return true
	}
	if el.Kind == MoveToKind {
		return false
	}
	if (*p)[len(*p)-1].Kind == ClosePathKind {
		return false
	}
	*p = append(*p, el)
	return true
}

// MoveTo starts the subpath at pt.
func (p *SubPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo draws a line from the current location to pt.
func (p *SubPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo draws a cubic bezier from the current location to pt, using c1 and
// c2 as control points.
func (p *SubPath) CubicTo(c1, c2, pt Point) { p.Push(CubicTo(c1, c2, pt)) }

// ClosePath closes the subpath.
func (p *SubPath) ClosePath() { p.Push(ClosePath()) }

// Validate checks the subpath's structural invariants: non-empty, leading
// MoveTo, no interior MoveTo, nothing following ClosePath.
func (p SubPath) Validate() error {
	if len(p) == 0 {
		return ErrEmptySubPath
	}
	if p[0].Kind != MoveToKind {
		return ErrNoLeadingMove
	}
	for i := 1; i < len(p); i++ {
		switch {
		case p[i].Kind == MoveToKind:
			return fmt.Errorf("element %d: MoveTo after MoveTo: %w", i, ErrAdjacency)
		case p[i-1].Kind == ClosePathKind:
			return fmt.Errorf("element %d: %s after ClosePath: %w", i, p[i], ErrAdjacency)
		}
	}
	return nil
}

// Anchors returns the on-curve endpoint of every element, in path order.
// ClosePath contributes no anchor.
func (p SubPath) Anchors() []Point {
	pts := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// Closed reports whether the subpath ends in ClosePath.
func (p SubPath) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

// Round returns a copy of the subpath with every coordinate rounded to the
// given number of decimals.
func (p SubPath) Round(decimals int) SubPath {
	out := make(SubPath, len(p))
	for i, el := range p {
		out[i] = el.roundTo(decimals)
	}
	return out
}

func (p SubPath) Transform(aff Affine) SubPath {
	out := make(SubPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// Elements returns an iterator over the subpath's elements.
func (p SubPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// GroupBySubPath splits a selection of elements into homogeneous subpath
// runs, breaking at every MoveTo. Hosts use this to validate a selection
// before simplification: [Simplify] operates on exactly one subpath at a
// time, so a selection spanning several must be split (or rejected) first.
func GroupBySubPath(elements []PathElement) []SubPath {
	var groups []SubPath
	for _, el := range elements {
		if el.Kind == MoveToKind || len(groups) == 0 {
			groups = append(groups, nil)
		}
		cur := &groups[len(groups)-1]
		*cur = append(*cur, el)
	}
	return groups
}
