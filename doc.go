// Package pen implements the interactive core of a vector path editor: a
// pointer-driven state machine for authoring Bézier paths point by point, and
// a tolerance-bounded simplifier that reduces dense command sequences to
// sparse ones.
//
// The package deliberately contains no rendering, persistence, or UI code.
// A host application owns the document model and feeds the core pointer
// events; the core hands back finished command sequences through the [Host]
// interface.
//
// # Authoring
//
// [Pen] models exactly one in-progress path. Pointer events enter through
// [Pen.PointerDown], [Pen.PointerMove], and [Pen.PointerUp]; the machine
// maintains an ordered list of [CurvePoint] anchors and, when the user
// finishes or closes the path, converts it with [PointsToElements] and asks
// the host to materialize the result.
//
// Anchors come in three handle-continuity classes (see [PointType]): corner
// points carry no handles, smooth points keep their two handles mirrored
// through the anchor, and asymmetric points position their handles
// independently.
//
// # Commands
//
// Paths are sequences of [PathElement] values, a tagged struct rather than an
// interface so that elements have value semantics and never allocate. A
// [SubPath] is one unbroken run of elements beginning with [MoveTo].
//
// # Simplification
//
// [Simplify] reduces a subpath's anchor polyline with a recursive
// perpendicular-distance criterion (the Ramer–Douglas–Peucker family),
// additionally collapsing points closer than a minimum spacing and optionally
// quantizing the survivors to a grid. Endpoints always survive, and the
// output obeys the same leading-MoveTo invariant as the input.
//
// # Coordinate spaces
//
// All stored geometry is in model space. Pointer positions arrive in screen
// space and are converted through the host's view transform (an [Affine]);
// feel-related thresholds (drag confirmation, hit testing, double-click
// detection) are measured in screen pixels so that they are zoom-invariant.
package pen
