package pen

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Mode is the authoring machine's top-level state.
type Mode int

const (
	// Inactive: the tool is not active; events are not consumed.
	Inactive Mode = iota
	// Creating: between gestures, ready to place or pick points.
	Creating
	// Editing: a fresh point is down and its press may still become a
	// handle drag.
	Editing
	// DraggingHandle: a handle follows the pointer.
	DraggingHandle
	// DraggingPoint: an anchor (and its handles) follow the pointer.
	DraggingPoint
)

func (m Mode) String() string {
	switch m {
	case Inactive:
		return "Inactive"
	case Creating:
		return "Creating"
	case Editing:
		return "Editing"
	case DraggingHandle:
		return "DraggingHandle"
	case DraggingPoint:
		return "DraggingPoint"
	default:
		return "InvalidMode"
	}
}

// Modifiers is a bit set of modifier keys held during a pointer event.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	// ModAlt cycles the type of the pressed point instead of dragging it.
	ModAlt
	ModMeta
)

func (m Modifiers) Has(f Modifiers) bool { return m&f != 0 }

// GridConfig is the host's snapping configuration, read-only to the core.
type GridConfig struct {
	Enabled bool
	Size    float64
}

// Host is the document/store collaborator of the authoring core. The core
// never touches the document model directly; finished paths and simplifier
// output flow out through this interface.
type Host interface {
	// PushHistorySnapshot captures undo state. The core calls it exactly
	// once per discrete user operation (point creation, type change,
	// delete, drag start, finish), strictly before the first mutation and
	// never per pointer-move sample.
	PushHistorySnapshot()
	// MaterializePath persists a finished authored path.
	MaterializePath(commands SubPath) PathID
	// ReplaceSubPathCommands persists simplifier output for an existing
	// subpath.
	ReplaceSubPathCommands(id SubPathID, commands SubPath)
	// Grid returns the current grid configuration.
	Grid() GridConfig
	// ViewTransform returns the model→screen transform (pan and zoom).
	// It must be invertible.
	ViewTransform() Affine
}

// State is a read-only snapshot of the authoring machine, safe to retain:
// the point list is deep-copied.
type State struct {
	Mode        Mode
	Points      []CurvePoint
	SelectedID  string
	ClosingPath bool
}

type dragKind int

const (
	dragPoint dragKind = iota + 1
	dragHandleIn
	dragHandleOut
)

// dragState is the explicit drag sub-state. A press that may become a drag
// starts armed; it is confirmed (armed=false) once the pointer travels past
// the drag threshold. Start positions are snapshotted at press time so that
// point drags are rigid translations rather than re-fits.
type dragState struct {
	kind    dragKind
	pointID string
	armed   bool

	startScreen    Point
	startModel     Point
	startAnchor    Point
	startHandleIn  *Point
	startHandleOut *Point
}

type listener struct {
	id int
	fn func(State)
}

// Pen is the pointer-driven authoring state machine. One Pen models exactly
// one in-progress path; it is owned by a single goroutine and all mutation
// happens synchronously inside its methods.
type Pen struct {
	host Host
	opts options

	mode     Mode
	points   []CurvePoint
	selected string
	drag     *dragState
	closing  bool

	lastDownScreen Point
	lastDownTime   time.Time

	nextPointID int
	listeners   []listener
	nextSubID   int

	// now is swapped in tests.
	now func() time.Time
}

// NewPen returns an inactive Pen bound to host. Call [Pen.Activate] before
// feeding it events.
func NewPen(host Host, opts ...Option) *Pen {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pen{
		host: host,
		opts: o,
		mode: Inactive,
		now:  time.Now,
	}
}

func (p *Pen) log() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return Logger()
}

// Activate starts a new authoring session with an empty point list.
func (p *Pen) Activate() {
	p.reset()
	p.mode = Creating
	p.log().Debug("pen activated")
	p.notify()
}

// Exit leaves the tool. In-progress points are discarded without finishing,
// except when a close is mid-completion, which finishes first.
func (p *Pen) Exit() {
	if p.closing && len(p.points) >= 2 {
		p.finish()
	}
	p.reset()
	p.mode = Inactive
	p.log().Debug("pen exited")
	p.notify()
}

// State returns a snapshot of the machine.
func (p *Pen) State() State {
	pts := make([]CurvePoint, len(p.points))
	for i, cp := range p.points {
		pts[i] = cp.clone()
	}
	return State{
		Mode:        p.mode,
		Points:      pts,
		SelectedID:  p.selected,
		ClosingPath: p.closing,
	}
}

// Subscribe registers fn to be called synchronously after every completed
// mutation, in registration order. The returned function cancels the
// subscription.
func (p *Pen) Subscribe(fn func(State)) (cancel func()) {
	p.nextSubID++
	id := p.nextSubID
	p.listeners = append(p.listeners, listener{id: id, fn: fn})
	return func() {
		p.listeners = slices.DeleteFunc(p.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

func (p *Pen) notify() {
	if len(p.listeners) == 0 {
		return
	}
	s := p.State()
	// Listeners may cancel subscriptions during dispatch; DeleteFunc shifts
	// and zeroes the backing array, so iterate over a snapshot.
	for _, l := range slices.Clone(p.listeners) {
		l.fn(s)
	}
}

func (p *Pen) reset() {
	p.points = nil
	p.selected = ""
	p.drag = nil
	p.closing = false
	p.lastDownTime = time.Time{}
}

func (p *Pen) toModel(screen Point) Point {
	return screen.Transform(p.host.ViewTransform().Invert())
}

func (p *Pen) findPoint(id string) *CurvePoint {
	for i := range p.points {
		if p.points[i].ID == id {
			return &p.points[i]
		}
	}
	return nil
}

func (p *Pen) selectPoint(id string) {
	p.selected = id
	for i := range p.points {
		p.points[i].Selected = p.points[i].ID == id
	}
}

// hitHandle picks the handle nearest to the screen position within the hit
// tolerance.
func (p *Pen) hitHandle(screen Point) (string, dragKind, bool) {
	view := p.host.ViewTransform()
	best := p.opts.hitTolerance
	var id string
	var kind dragKind
	found := false
	for _, cp := range p.points {
		if cp.HandleIn != nil {
			if d := screen.Distance(cp.HandleIn.Transform(view)); d <= best {
				best, id, kind, found = d, cp.ID, dragHandleIn, true
			}
		}
		if cp.HandleOut != nil {
			if d := screen.Distance(cp.HandleOut.Transform(view)); d <= best {
				best, id, kind, found = d, cp.ID, dragHandleOut, true
			}
		}
	}
	return id, kind, found
}

// hitPoint picks the anchor nearest to the screen position within the hit
// tolerance.
func (p *Pen) hitPoint(screen Point) (int, bool) {
	view := p.host.ViewTransform()
	best := p.opts.hitTolerance
	idx := -1
	for i, cp := range p.points {
		if d := screen.Distance(cp.Anchor.Transform(view)); d <= best {
			best, idx = d, i
		}
	}
	return idx, idx >= 0
}

// PointerDown feeds a pointer press, in screen space. It reports whether
// the event was consumed.
func (p *Pen) PointerDown(pos Point, mods Modifiers) bool {
	if p.mode != Creating {
		// Inactive pens don't consume events, and a second press
		// mid-gesture is ignored.
		return false
	}

	now := p.now()
	isDouble := !p.lastDownTime.IsZero() &&
		now.Sub(p.lastDownTime) <= p.opts.dclickDelay &&
		pos.Distance(p.lastDownScreen) <= p.opts.dclickDist
	p.lastDownScreen, p.lastDownTime = pos, now

	if isDouble && len(p.points) >= 3 {
		p.finish()
		return true
	}

	if id, kind, ok := p.hitHandle(pos); ok {
		cp := p.findPoint(id)
		p.host.PushHistorySnapshot()
		p.selectPoint(id)
		p.drag = &dragState{
			kind:        kind,
			pointID:     id,
			startScreen: pos,
			startModel:  p.toModel(pos),
			startAnchor: cp.Anchor,
		}
		p.mode = DraggingHandle
		p.notify()
		return true
	}

	if idx, ok := p.hitPoint(pos); ok {
		if idx == 0 && len(p.points) >= 3 {
			p.closing = true
			p.finish()
			return true
		}
		cp := &p.points[idx]
		if mods.Has(ModAlt) {
			p.host.PushHistorySnapshot()
			cp.setType(NextPointType(cp.Type), p.opts.handleOffset)
			p.selectPoint(cp.ID)
			p.log().Debug("point retyped", "point", cp.ID, "type", cp.Type)
			p.notify()
			return true
		}
		p.host.PushHistorySnapshot()
		p.selectPoint(cp.ID)
		p.drag = &dragState{
			kind:           dragPoint,
			pointID:        cp.ID,
			startScreen:    pos,
			startModel:     p.toModel(pos),
			startAnchor:    cp.Anchor,
			startHandleIn:  clonePoint(cp.HandleIn),
			startHandleOut: clonePoint(cp.HandleOut),
		}
		p.mode = DraggingPoint
		p.notify()
		return true
	}

	// Empty space: place a new corner point and arm a possible handle
	// drag.
	p.host.PushHistorySnapshot()
	model := p.toModel(pos)
	if g := p.host.Grid(); g.Enabled {
		model = snapToGrid(model, g.Size)
	}
	p.nextPointID++
	id := fmt.Sprintf("p%d", p.nextPointID)
	p.points = append(p.points, CurvePoint{ID: id, Anchor: model, Type: Corner})
	p.selectPoint(id)
	p.drag = &dragState{
		kind:        dragHandleOut,
		pointID:     id,
		armed:       true,
		startScreen: pos,
		startModel:  model,
		startAnchor: model,
	}
	p.mode = Editing
	p.log().Debug("point created", "point", id, "at", model)
	p.notify()
	return true
}

// PointerMove feeds a pointer move, in screen space.
//
// Handle and point drags apply on every received move; hosts must not
// coalesce them, or direct manipulation stops feeling 1:1. Moves in Creating
// mode are not consumed, so hosts are free to coalesce hover previews to the
// frame rate.
func (p *Pen) PointerMove(pos Point, mods Modifiers) bool {
	switch p.mode {
	case Editing:
		d := p.drag
		if d == nil || !d.armed {
			return false
		}
		if pos.Distance(d.startScreen) <= p.opts.dragThreshold {
			return false
		}
		// Confirmed: the fresh corner becomes a smooth point whose
		// outgoing handle follows the pointer.
		cp := p.findPoint(d.pointID)
		if cp == nil {
			return false
		}
		out := p.toModel(pos)
		in := Mirror(out, cp.Anchor)
		cp.Type = Smooth
		cp.HandleOut = &out
		cp.HandleIn = &in
		d.armed = false
		d.kind = dragHandleOut
		p.mode = DraggingHandle
		p.log().Debug("drag confirmed", "point", cp.ID)
		p.notify()
		return true

	case DraggingHandle:
		d := p.drag
		if d == nil {
			return false
		}
		cp := p.findPoint(d.pointID)
		if cp == nil {
			return false
		}
		model := p.toModel(pos)
		switch d.kind {
		case dragHandleOut:
			cp.HandleOut = &model
			if cp.Type == Smooth {
				in := Mirror(model, cp.Anchor)
				cp.HandleIn = &in
			}
		case dragHandleIn:
			cp.HandleIn = &model
			if cp.Type == Smooth {
				out := Mirror(model, cp.Anchor)
				cp.HandleOut = &out
			}
		}
		p.notify()
		return true

	case DraggingPoint:
		d := p.drag
		if d == nil {
			return false
		}
		cp := p.findPoint(d.pointID)
		if cp == nil {
			return false
		}
		delta := p.toModel(pos).Sub(d.startModel)
		cp.Anchor = d.startAnchor.Translate(delta)
		if d.startHandleIn != nil {
			h := d.startHandleIn.Translate(delta)
			cp.HandleIn = &h
		}
		if d.startHandleOut != nil {
			h := d.startHandleOut.Translate(delta)
			cp.HandleOut = &h
		}
		p.notify()
		return true
	}
	return false
}

// PointerUp feeds a pointer release, in screen space.
func (p *Pen) PointerUp(pos Point, mods Modifiers) bool {
	switch p.mode {
	case Editing:
		// Unconfirmed press: the point stays a corner.
		p.drag = nil
		p.mode = Creating
		p.notify()
		return true
	case DraggingHandle, DraggingPoint:
		p.drag = nil
		p.mode = Creating
		p.notify()
		return true
	}
	return false
}

// FinishPath ends the in-progress path without closing it. With fewer than
// 2 points this is a no-op and reports false.
func (p *Pen) FinishPath() bool {
	if p.mode == Inactive {
		return false
	}
	return p.finish()
}

func (p *Pen) finish() bool {
	if len(p.points) < 2 {
		return false
	}
	sub := PointsToElements(p.points, p.closing, p.opts.decimals)
	p.host.PushHistorySnapshot()
	id := p.host.MaterializePath(sub)
	p.log().Debug("path materialized",
		"path", string(id), "points", len(p.points), "closed", p.closing)
	p.reset()
	p.mode = Creating
	p.notify()
	return true
}

// SetPointType converts the point to t, adjusting handles per the type's
// invariant. Setting the current type is a no-op.
func (p *Pen) SetPointType(id string, t PointType) bool {
	cp := p.findPoint(id)
	if cp == nil || cp.Type == t {
		return false
	}
	p.host.PushHistorySnapshot()
	cp.setType(t, p.opts.handleOffset)
	p.notify()
	return true
}

// CyclePointType advances the point through Corner → Smooth → Asymmetric →
// Corner.
func (p *Pen) CyclePointType(id string) bool {
	cp := p.findPoint(id)
	if cp == nil {
		return false
	}
	return p.SetPointType(id, NextPointType(cp.Type))
}

// DeleteSelectedPoint removes the selected point, if any.
func (p *Pen) DeleteSelectedPoint() bool {
	if p.selected == "" {
		return false
	}
	idx := slices.IndexFunc(p.points, func(cp CurvePoint) bool {
		return cp.ID == p.selected
	})
	if idx < 0 {
		return false
	}
	p.host.PushHistorySnapshot()
	p.points = slices.Delete(p.points, idx, idx+1)
	p.selected = ""
	if p.drag != nil {
		// The drag's target is gone; return to rest.
		p.drag = nil
		p.mode = Creating
	}
	p.notify()
	return true
}

// RetypeSegment converts the segment ending at the i-th point from a line
// to a curve, estimating control points from the neighboring anchors. i
// indexes the segment's end point, so valid segments have i >= 1. Points
// that gain a handle stop being corners; smooth points re-mirror their
// opposite handle.
func (p *Pen) RetypeSegment(i int) bool {
	if i < 1 || i >= len(p.points) {
		return false
	}
	prev, cur := &p.points[i-1], &p.points[i]
	var next *Point
	if i+1 < len(p.points) {
		next = &p.points[i+1].Anchor
	}
	p.host.PushHistorySnapshot()
	c1, c2 := ControlPoints(prev.Anchor, cur.Anchor, next, p.opts.tension, p.opts.loneRatio)
	prev.HandleOut = &c1
	switch prev.Type {
	case Corner:
		prev.Type = Asymmetric
	case Smooth:
		in := Mirror(c1, prev.Anchor)
		prev.HandleIn = &in
	}
	cur.HandleIn = &c2
	switch cur.Type {
	case Corner:
		cur.Type = Asymmetric
	case Smooth:
		out := Mirror(c2, cur.Anchor)
		cur.HandleOut = &out
	}
	p.log().Debug("segment retyped", "segment", i)
	p.notify()
	return true
}

// SimplifySubPath simplifies one existing subpath and persists the result
// through the host. When the input reduces to nothing (fewer than 2
// anchors) the original is left untouched and no history is captured.
func (p *Pen) SimplifySubPath(id SubPathID, sub SubPath, opts SimplifyOptions) bool {
	out := Simplify(sub, opts)
	if out == nil {
		return false
	}
	p.host.PushHistorySnapshot()
	p.host.ReplaceSubPathCommands(id, out)
	return true
}

func clonePoint(pt *Point) *Point {
	if pt == nil {
		return nil
	}
	h := *pt
	return &h
}
