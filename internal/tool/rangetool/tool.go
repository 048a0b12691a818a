package rangetool

import (
	"github.com/google/uuid"

	"github.com/dshills/rangescope/internal/logging"
	"github.com/dshills/rangescope/internal/plot/annotation"
	"github.com/dshills/rangescope/internal/plot/ranges"
	"github.com/dshills/rangescope/internal/tool/gesture"
)

// Tool metadata.
const (
	Name         = "Range Tool"
	Icon         = "range"
	DefaultOrder = 1
)

// EventTypes lists the gestures a range tool consumes.
var EventTypes = []gesture.EventType{gesture.EventPan, gesture.EventMove}

// Tool is the range tool model: the bound ranges and the overlay that
// mirrors them.
type Tool struct {
	id string

	// XRange and YRange are the bound ranges. Either may be nil.
	XRange *ranges.Range1d
	YRange *ranges.Range1d

	// Overlay is the box whose boundaries track the ranges.
	Overlay *annotation.BoxAnnotation

	logger *logging.Logger
}

// Option configures a Tool.
type Option func(*Tool)

// WithXRange binds the horizontal range.
func WithXRange(r *ranges.Range1d) Option {
	return func(t *Tool) {
		t.XRange = r
	}
}

// WithYRange binds the vertical range.
func WithYRange(r *ranges.Range1d) Option {
	return func(t *Tool) {
		t.YRange = r
	}
}

// WithOverlay replaces the default overlay.
func WithOverlay(b *annotation.BoxAnnotation) Option {
	return func(t *Tool) {
		if b != nil {
			t.Overlay = b
		}
	}
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(l *logging.Logger) Option {
	return func(t *Tool) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a range tool. Without WithOverlay the tool gets
// annotation.DefaultRangeOverlay.
func New(opts ...Option) *Tool {
	t := &Tool{
		id:     uuid.NewString(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.Overlay == nil {
		t.Overlay = annotation.DefaultRangeOverlay()
	}
	t.logger = t.logger.WithComponent("rangetool").WithField("tool", t.id)
	return t
}

// ID returns the tool's model identifier.
func (t *Tool) ID() string {
	return t.id
}

// UpdateOverlayFromRanges sets the overlay boundaries from the current
// range values. An axis with no range gets no boundaries on that axis.
func (t *Tool) UpdateOverlayFromRanges() {
	if t.XRange == nil && t.YRange == nil {
		t.Overlay.Clear()
		t.logger.Warn("RangeTool not configured with any Ranges.")
	}

	if t.XRange == nil {
		t.Overlay.SetHorizontal(nil, nil)
	} else {
		t.Overlay.SetHorizontal(annotation.Float(t.XRange.Start()), annotation.Float(t.XRange.End()))
	}

	if t.YRange == nil {
		t.Overlay.SetVertical(nil, nil)
	} else {
		t.Overlay.SetVertical(annotation.Float(t.YRange.Start()), annotation.Float(t.YRange.End()))
	}
}
