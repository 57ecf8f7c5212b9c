package pen

import "math"

// Mirror reflects handle through anchor. It is the invariant that keeps the
// two handles of a smooth point co-linear and equidistant: for a smooth
// anchor, HandleIn == Mirror(HandleOut, Anchor).
func Mirror(handle, anchor Point) Point {
	return Point{
		X: 2*anchor.X - handle.X,
		Y: 2*anchor.Y - handle.Y,
	}
}

// PerpDistance returns the distance from pt to the segment from start to end.
// Points beyond either endpoint measure against that endpoint; a degenerate
// segment measures against start.
func PerpDistance(pt, start, end Point) float64 {
	d := end.Sub(start)
	d2 := d.Hypot2()
	if d2 == 0 {
		return pt.Distance(start)
	}
	t := pt.Sub(start).Dot(d) / d2
	switch {
	case t <= 0:
		return pt.Distance(start)
	case t >= 1:
		return pt.Distance(end)
	default:
		return pt.Distance(start.Lerp(end, t))
	}
}

// ControlPoints estimates cubic control points for the segment from prev to
// cur, for hosts that retype a line segment into a curve.
//
// With a known successor the tangent at cur is blended from the neighbor
// chord (Catmull-Rom style) and scaled by tension. With no successor the
// controls are placed on the chord at ratio and 1−ratio. The stock values
// are [DefaultTension] and [DefaultLoneNeighborRatio]; both are tuned for
// feel, not derived.
func ControlPoints(prev, cur Point, next *Point, tension, ratio float64) (c1, c2 Point) {
	if next == nil {
		c1 = prev.Lerp(cur, ratio)
		c2 = prev.Lerp(cur, 1-ratio)
		return c1, c2
	}
	c1 = prev.Translate(cur.Sub(prev).Mul(tension))
	c2 = cur.Translate(next.Sub(prev).Mul(tension).Negate())
	return c1, c2
}

// snapToGrid quantizes pt to multiples of size. Non-positive sizes disable
// snapping.
func snapToGrid(pt Point, size float64) Point {
	if size <= 0 {
		return pt
	}
	return Point{
		X: math.Round(pt.X/size) * size,
		Y: math.Round(pt.Y/size) * size,
	}
}
