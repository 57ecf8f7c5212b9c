package pen

// PointType classifies an anchor by handle continuity.
type PointType int

const (
	// Corner points have no handles; segments meet in a sharp corner.
	Corner PointType = iota
	// Smooth points keep both handles mirrored through the anchor, giving
	// tangent continuity.
	Smooth
	// Asymmetric points have two independently positioned handles.
	Asymmetric
)

func (t PointType) String() string {
	switch t {
	case Corner:
		return "Corner"
	case Smooth:
		return "Smooth"
	case Asymmetric:
		return "Asymmetric"
	default:
		return "InvalidPointType"
	}
}

// NextPointType returns the successor in the interactive cycle
// Corner → Smooth → Asymmetric → Corner.
func NextPointType(t PointType) PointType {
	switch t {
	case Corner:
		return Smooth
	case Smooth:
		return Asymmetric
	default:
		return Corner
	}
}

// CurvePoint is one authored anchor of an in-progress path. Handles are
// absolute model-space points, not deltas from the anchor; a nil handle is
// absent.
//
// Invariants: a Corner point has no handles; a Smooth point's handles
// satisfy HandleIn == Mirror(HandleOut, Anchor).
type CurvePoint struct {
	ID        string
	Anchor    Point
	Type      PointType
	HandleIn  *Point
	HandleOut *Point
	Selected  bool
}

// clone deep-copies the point, including its handle allocations, so that
// snapshots are isolated from later mutation.
func (cp CurvePoint) clone() CurvePoint {
	out := cp
	out.HandleIn = clonePoint(cp.HandleIn)
	out.HandleOut = clonePoint(cp.HandleOut)
	return out
}

// setType converts the point to t, adjusting handles to restore the type's
// invariant. Corner clears both handles. Smooth synthesizes default handles
// offset ±handleOffset horizontally when the point has none, and otherwise
// re-mirrors HandleIn from HandleOut (or HandleOut from HandleIn).
// Asymmetric keeps whatever handles exist.
func (cp *CurvePoint) setType(t PointType, handleOffset float64) {
	switch t {
	case Corner:
		cp.HandleIn = nil
		cp.HandleOut = nil
	case Smooth:
		switch {
		case cp.HandleOut != nil:
			in := Mirror(*cp.HandleOut, cp.Anchor)
			cp.HandleIn = &in
		case cp.HandleIn != nil:
			out := Mirror(*cp.HandleIn, cp.Anchor)
			cp.HandleOut = &out
		default:
			in := Pt(cp.Anchor.X-handleOffset, cp.Anchor.Y)
			out := Pt(cp.Anchor.X+handleOffset, cp.Anchor.Y)
			cp.HandleIn = &in
			cp.HandleOut = &out
		}
	case Asymmetric:
		// Existing handle positions are kept; only the mirror rule is
		// dropped.
	}
	cp.Type = t
}

// PointsToElements converts an authored point list to a command sequence.
// The first point emits MoveTo. Each subsequent point emits LineTo when
// neither the predecessor's outgoing handle nor its own incoming handle
// exists, and CubicTo otherwise, with a missing handle treated as coincident
// with its anchor. A trailing ClosePath is appended when closed is set.
// Coordinates are rounded to decimals.
//
// Fewer than 2 points cannot form a path; the result is nil.
func PointsToElements(points []CurvePoint, closed bool, decimals int) SubPath {
	if len(points) < 2 {
		return nil
	}
	var sub SubPath
	sub.MoveTo(points[0].Anchor)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if prev.HandleOut == nil && cur.HandleIn == nil {
			sub.LineTo(cur.Anchor)
			continue
		}
		c1 := prev.Anchor
		if prev.HandleOut != nil {
			c1 = *prev.HandleOut
		}
		c2 := cur.Anchor
		if cur.HandleIn != nil {
			c2 = *cur.HandleIn
		}
		sub.CubicTo(c1, c2, cur.Anchor)
	}
	if closed {
		sub.ClosePath()
	}
	return sub.Round(decimals)
}
