// Package rect implements the geometry and gesture engine of a draggable,
// resizable rectangle.
//
// A Widget keeps its rectangle as four edge offsets from a parent of known
// size. Pointer gestures arrive through a Document shared with the host; the
// widget captures a snapshot at pointer-down, computes the legal range of
// every edge for that gesture, and clamps each move against it. All methods
// must be called from the host's event loop.
package rect

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// Props are the host-supplied parameters of a widget.
type Props struct {
	X float64
	Y float64
	W float64
	H float64

	MinWidth  float64
	MinHeight float64
	// MaxWidth and MaxHeight are unconstrained when zero.
	MaxWidth  float64
	MaxHeight float64

	Grid Grid
	Axis Axis

	LockAspectRatio bool
	// Parent keeps the rectangle inside the parent bounds.
	Parent bool

	Draggable bool
	Resizable bool
	// Handles lists the grips offered for resizing. Nil means all eight.
	Handles []Handle
	// DragHandle restricts drag starts to targets matching the selector.
	DragHandle string
	// DragCancel prevents drag starts from targets matching the selector.
	DragCancel string

	Active              bool
	PreventDeactivation bool
	// Z is the stacking order; zero means automatic.
	Z int
}

// DefaultProps mirrors the defaults of a freshly mounted widget.
func DefaultProps() Props {
	return Props{
		W:         200,
		H:         200,
		Grid:      DefaultGrid,
		Axis:      AxisBoth,
		Draggable: true,
		Resizable: true,
	}
}

func (p Props) normalized() Props {
	p.Grid = p.Grid.normalized()
	if p.Axis == "" {
		p.Axis = AxisBoth
	}
	if p.Handles == nil {
		p.Handles = append([]Handle(nil), AllHandles...)
	}
	return p
}

// Callbacks are synchronous notifications and start predicates. Any field
// may be nil.
type Callbacks struct {
	Activated    func()
	Deactivated  func()
	ActiveChange func(active bool)
	Dragging     func(left, top float64)
	DragStop     func(left, top float64)
	Resizing     func(left, top, width, height float64)
	ResizeStop   func(left, top, width, height float64)

	// DragStart may veto a drag by returning false.
	DragStart func(ev PointerEvent) bool
	// ResizeStart may veto a resize by returning false.
	ResizeStart func(handle Handle, ev PointerEvent) bool
}

// Options configure a widget beyond its props.
type Options struct {
	// ID identifies the widget in pointer targets. A random id is used when empty.
	ID     string
	Parent Size
	Logger *slog.Logger
}

// snapshot is the pointer and edge state captured at pointer-down.
type snapshot struct {
	pointerX float64
	pointerY float64
	edges    Edges
}

// Widget is one draggable, resizable rectangle.
type Widget struct {
	id    string
	props Props
	cb    Callbacks
	doc   *Document
	log   *slog.Logger

	geom    store
	state   State
	enabled bool
	start   snapshot
	limits  Limits
	zIndex  int

	detachGesture func()
	detachCapture func()
}

// New mounts a widget on doc. The initial size is raised to the minimum size.
func New(doc *Document, props Props, cb Callbacks, opts Options) *Widget {
	props = props.normalized()
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	w := &Widget{
		id:      id,
		props:   props,
		cb:      cb,
		doc:     doc,
		log:     logger.With(slog.String("widget", id)),
		enabled: props.Active,
		zIndex:  props.Z,
		limits: Limits{
			MinWidth:  props.MinWidth,
			MinHeight: props.MinHeight,
			MaxWidth:  props.MaxWidth,
			MaxHeight: props.MaxHeight,
		},
	}
	width := math.Max(props.W, props.MinWidth)
	height := math.Max(props.H, props.MinHeight)
	w.geom = newStore(opts.Parent, props.X, props.Y, width, height)
	w.geom.lock = props.LockAspectRatio
	if props.H != 0 {
		w.geom.aspect = props.W / props.H
	}
	if doc != nil {
		w.detachCapture = doc.Capture(w.deselect)
	}
	return w
}

// Close unmounts the widget and detaches every document listener, including
// one left behind by an unfinished gesture.
func (w *Widget) Close() {
	w.detach()
	if w.detachCapture != nil {
		w.detachCapture()
		w.detachCapture = nil
	}
	w.state = StateIdle
	w.geom.handle = HandleNone
}

// ID returns the widget id used in pointer targets.
func (w *Widget) ID() string { return w.id }

// Props returns the props the widget currently honours.
func (w *Widget) Props() Props {
	p := w.props
	p.Handles = append([]Handle(nil), p.Handles...)
	return p
}

// Rect returns the settled rectangle.
func (w *Widget) Rect() Rect { return w.geom.rect() }

// Edges returns the settled edge offsets.
func (w *Widget) Edges() Edges { return w.geom.settled }

// Parent returns the parent size the edges are measured against.
func (w *Widget) Parent() Size { return w.geom.parent }

// State returns the current interaction state.
func (w *Widget) State() State { return w.state }

// Active reports whether the widget is selected.
func (w *Widget) Active() bool { return w.enabled }

// Handle returns the handle driving the current resize.
func (w *Widget) Handle() Handle { return w.geom.handle }

// Bounds returns the Bounds Snapshot of the current gesture.
func (w *Widget) Bounds() Bounds { return w.geom.bounds }

// AspectFactor returns the locked width/height ratio, zero when unlocked.
func (w *Widget) AspectFactor() float64 { return w.geom.aspect }

// Z returns the stacking order.
func (w *Widget) Z() int { return w.zIndex }

// Handles returns the grips currently offered, empty when not resizable.
func (w *Widget) Handles() []Handle {
	if !w.props.Resizable {
		return nil
	}
	return append([]Handle(nil), w.props.Handles...)
}

func (w *Widget) offersHandle(h Handle) bool {
	for _, known := range w.Handles() {
		if known == h {
			return true
		}
	}
	return false
}

func (w *Widget) solver() Solver {
	return Solver{
		Parent:  w.geom.parent,
		Grid:    w.props.Grid,
		Limits:  w.limits,
		Lock:    w.props.LockAspectRatio,
		Aspect:  w.geom.aspect,
		Contain: w.props.Parent,
	}
}

func (w *Widget) resetGesture() {
	w.start = snapshot{}
	w.geom.bounds = Bounds{}
}

func (w *Widget) detach() {
	if w.detachGesture != nil {
		w.detachGesture()
		w.detachGesture = nil
	}
}

func (w *Widget) setEnabled(active bool, notify bool) {
	if w.enabled == active {
		return
	}
	w.enabled = active
	if active {
		if w.cb.Activated != nil {
			w.cb.Activated()
		}
	} else if w.cb.Deactivated != nil {
		w.cb.Deactivated()
	}
	if notify && w.cb.ActiveChange != nil {
		w.cb.ActiveChange(active)
	}
}
