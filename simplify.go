package pen

// Simplification of an oversampled subpath.
//
// The input is treated as a polyline over the elements' on-curve endpoints.
// That matches how oversampled input is produced in practice (pointer
// sampling emits dense runs of short lines); control points of any cubic
// elements in the input do not influence which anchors survive.

// SimplifyOptions bounds the error and density of a simplification.
type SimplifyOptions struct {
	// Tolerance is the maximum perpendicular deviation a dropped anchor may
	// have from the chord that replaces it.
	Tolerance float64
	// MaxDistance collapses anchors closer than this to their retained
	// predecessor, bounding worst-case density on near-straight, noisy
	// input. Zero disables the collapse.
	MaxDistance float64
	// GridSize quantizes anchors to multiples of this size. Zero disables
	// quantization.
	GridSize float64
}

// Simplify reduces one subpath to a sparse command sequence within the given
// bounds. The first and last anchors always survive, and the result begins
// with MoveTo even when the input does not (the leading element is coerced,
// never rejected). A trailing ClosePath on the input is preserved.
//
// Inputs with fewer than 2 anchors cannot be reduced; the result is nil and
// the caller keeps the original.
//
// Simplify is pure and idempotent: re-simplifying its own output with the
// same options returns the output unchanged.
func Simplify(sub SubPath, opts SimplifyOptions) SubPath {
	anchors := sub.Anchors()
	if len(anchors) < 2 {
		return nil
	}

	// Quantize before reduction, not after. Quantizing survivors would
	// perturb them relative to the chords they were measured against,
	// breaking idempotence.
	if opts.GridSize > 0 {
		for i, pt := range anchors {
			anchors[i] = snapToGrid(pt, opts.GridSize)
		}
	}
	pts := collapseDense(anchors, opts.MaxDistance)
	pts = reduce(pts, opts.Tolerance)

	Logger().Debug("simplified subpath",
		"anchors", len(anchors), "kept", len(pts))

	var out SubPath
	out.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		out.LineTo(pt)
	}
	if sub.Closed() {
		out.ClosePath()
	}
	return out
}

// collapseDense drops anchors closer than minDist to their most recently
// retained predecessor. Both endpoints always survive.
func collapseDense(pts []Point, minDist float64) []Point {
	if minDist <= 0 || len(pts) < 3 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, pt := range pts[1 : len(pts)-1] {
		if pt.Distance(out[len(out)-1]) < minDist {
			continue
		}
		out = append(out, pt)
	}
	return append(out, pts[len(pts)-1])
}

// reduce is the recursive perpendicular-distance reduction
// (Ramer–Douglas–Peucker). The interior anchor farthest from the chord
// between the first and last anchor is kept if its distance exceeds
// tolerance, splitting the run; otherwise the whole interior is dropped.
func reduce(pts []Point, tolerance float64) []Point {
	if len(pts) < 3 {
		return pts
	}
	worst := 0
	worstDist := 0.0
	for i := 1; i < len(pts)-1; i++ {
		d := PerpDistance(pts[i], pts[0], pts[len(pts)-1])
		if d > worstDist {
			worst = i
			worstDist = d
		}
	}
	if worstDist <= tolerance {
		return []Point{pts[0], pts[len(pts)-1]}
	}
	left := reduce(pts[:worst+1], tolerance)
	right := reduce(pts[worst:], tolerance)
	// Merge into a fresh slice; left and right may alias pts.
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left...)
	return append(out, right[1:]...)
}
