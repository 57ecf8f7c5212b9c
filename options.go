package pen

import (
	"log/slog"
	"time"
)

// Stock tunables. The distance thresholds are screen pixels, so behavior is
// independent of zoom. Tension and the lone-neighbor ratio are tuned for
// feel; they are defaults, not invariants.
const (
	DefaultTension             = 0.3
	DefaultLoneNeighborRatio   = 0.4
	DefaultDragThreshold       = 5.0
	DefaultHitTolerance        = 8.0
	DefaultDoubleClickDistance = 5.0
	DefaultHandleOffset        = 30.0
	DefaultDecimals            = 2
)

// DefaultDoubleClickDelay is the maximum gap between two presses that still
// counts as a double click.
const DefaultDoubleClickDelay = 300 * time.Millisecond

type options struct {
	tension       float64
	loneRatio     float64
	dragThreshold float64
	hitTolerance  float64
	dclickDist    float64
	dclickDelay   time.Duration
	handleOffset  float64
	decimals      int
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		tension:       DefaultTension,
		loneRatio:     DefaultLoneNeighborRatio,
		dragThreshold: DefaultDragThreshold,
		hitTolerance:  DefaultHitTolerance,
		dclickDist:    DefaultDoubleClickDistance,
		dclickDelay:   DefaultDoubleClickDelay,
		handleOffset:  DefaultHandleOffset,
		decimals:      DefaultDecimals,
	}
}

// Option configures a [Pen] during creation.
type Option func(*options)

// WithTension sets the tangent-blend tension used by segment retyping.
func WithTension(t float64) Option {
	return func(o *options) { o.tension = t }
}

// WithLoneNeighborRatio sets the chord interpolation ratio used by segment
// retyping when a point has no successor.
func WithLoneNeighborRatio(r float64) Option {
	return func(o *options) { o.loneRatio = r }
}

// WithDragThreshold sets the pointer displacement, in screen pixels, beyond
// which a press on a fresh point becomes a handle drag.
func WithDragThreshold(px float64) Option {
	return func(o *options) { o.dragThreshold = px }
}

// WithHitTolerance sets the pick radius, in screen pixels, for anchors and
// handles.
func WithHitTolerance(px float64) Option {
	return func(o *options) { o.hitTolerance = px }
}

// WithDoubleClickDistance sets the maximum screen distance between two
// presses that still counts as a double click.
func WithDoubleClickDistance(px float64) Option {
	return func(o *options) { o.dclickDist = px }
}

// WithDoubleClickDelay sets the maximum gap between two presses that still
// counts as a double click.
func WithDoubleClickDelay(d time.Duration) Option {
	return func(o *options) { o.dclickDelay = d }
}

// WithHandleOffset sets the horizontal offset of the default handles
// synthesized when a corner point becomes smooth.
func WithHandleOffset(units float64) Option {
	return func(o *options) { o.handleOffset = units }
}

// WithDecimals sets the decimal precision of emitted command coordinates.
func WithDecimals(n int) Option {
	return func(o *options) { o.decimals = n }
}

// WithLogger overrides the package-wide logger for one Pen.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
