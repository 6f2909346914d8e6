package rect

import "log/slog"

// PointerDown handles a pointer-down on the widget body. It selects the
// widget and, when dragging is allowed for the target, starts a drag gesture.
func (w *Widget) PointerDown(ev PointerEvent) {
	if w.state != StateIdle {
		return
	}
	w.setEnabled(true, true)
	if !ev.Target.Within(w.id) {
		return
	}
	if w.cb.DragStart != nil && !w.cb.DragStart(ev) {
		return
	}
	if w.props.DragHandle != "" && !ev.Target.Matches(w.props.DragHandle) {
		return
	}
	if w.props.DragCancel != "" && ev.Target.Matches(w.props.DragCancel) {
		return
	}
	if !w.props.Draggable {
		return
	}

	w.state = StateDragging
	w.capture(ev)
	if w.props.Parent {
		w.geom.bounds = w.solver().DragBounds(w.geom.settled)
	}
	w.attach(ev.Source)
	w.log.Debug("rect: drag start", slog.String("source", ev.Source.String()), slog.Float64("left", w.geom.settled.Left), slog.Float64("top", w.geom.settled.Top))
}

// HandleDown handles a pointer-down on a resize grip. Grips only respond
// while the widget is selected and resizable.
func (w *Widget) HandleDown(handle Handle, ev PointerEvent) {
	if w.state != StateIdle || !w.enabled || !w.offersHandle(handle) {
		return
	}
	if w.cb.ResizeStart != nil && !w.cb.ResizeStart(handle, ev) {
		return
	}
	if w.props.LockAspectRatio {
		handle = lockedHandle(handle)
	}
	w.geom.handle = handle
	w.state = StateResizing
	w.capture(ev)
	w.geom.bounds = w.solver().ResizeBounds(w.geom.settled)
	w.attach(ev.Source)
	w.log.Debug("rect: resize start", slog.String("handle", string(handle)), slog.String("source", ev.Source.String()))
}

func (w *Widget) capture(ev PointerEvent) {
	w.start = snapshot{pointerX: ev.X, pointerY: ev.Y, edges: w.geom.settled}
}

// attach installs the gesture's move/up subscription for the pointer source
// that started it.
func (w *Widget) attach(source Source) {
	w.detach()
	if w.doc == nil {
		return
	}
	w.detachGesture = w.doc.Listen(Listener{
		Source: source,
		Move:   w.pointerMove,
		Up:     w.pointerUp,
	})
}

func (w *Widget) pointerMove(ev PointerEvent) {
	switch w.state {
	case StateDragging:
		w.dragMove(ev)
	case StateResizing:
		w.resizeMove(ev)
	}
}

// delta returns the snapped offset of the pointer from where the gesture
// started. Positive values point left and up.
func (w *Widget) delta(ev PointerEvent, allowX, allowY bool) (float64, float64) {
	var dx, dy float64
	if allowX {
		dx = w.start.pointerX - ev.X
	}
	if allowY {
		dy = w.start.pointerY - ev.Y
	}
	return w.props.Grid.Snap(dx, dy)
}

func (w *Widget) dragMove(ev PointerEvent) {
	dx, dy := w.delta(ev, w.props.Axis.allowsX(), w.props.Axis.allowsY())
	if dx == 0 && dy == 0 {
		return
	}
	ref := w.start.edges
	w.geom.setTop(ref.Top - dy)
	w.geom.setBottom(ref.Bottom + dy)
	w.geom.setLeft(ref.Left - dx)
	w.geom.setRight(ref.Right + dx)

	if w.cb.Dragging != nil {
		w.cb.Dragging(w.geom.settled.Left, w.geom.settled.Top)
	}
}

func (w *Widget) resizeMove(ev PointerEvent) {
	dx, dy := w.delta(ev, true, true)
	if dx == 0 && dy == 0 {
		return
	}
	handle := w.geom.handle
	ref := w.start.edges
	if handle.movesBottom() {
		w.geom.setBottom(ref.Bottom + dy)
	} else if handle.movesTop() {
		w.geom.setTop(ref.Top - dy)
	}
	if handle.movesRight() {
		w.geom.setRight(ref.Right + dx)
	} else if handle.movesLeft() {
		w.geom.setLeft(ref.Left - dx)
	}

	if w.cb.Resizing != nil {
		r := w.geom.rect()
		w.cb.Resizing(r.Left, r.Top, r.Width, r.Height)
	}
}

func (w *Widget) pointerUp(PointerEvent) {
	state := w.state
	w.geom.handle = HandleNone
	w.resetGesture()
	w.geom.resync()
	w.state = StateIdle
	w.detach()

	r := w.geom.rect()
	switch state {
	case StateResizing:
		w.log.Debug("rect: resize stop", slog.Float64("width", r.Width), slog.Float64("height", r.Height))
		if w.cb.ResizeStop != nil {
			w.cb.ResizeStop(r.Left, r.Top, r.Width, r.Height)
		}
	case StateDragging:
		w.log.Debug("rect: drag stop", slog.Float64("left", r.Left), slog.Float64("top", r.Top))
		if w.cb.DragStop != nil {
			w.cb.DragStop(r.Left, r.Top)
		}
	}
}

// deselect is the capture-phase pointer-down listener. A press outside the
// widget and its grips clears the selection unless deactivation is
// suppressed.
func (w *Widget) deselect(ev PointerEvent) {
	if w.state != StateIdle {
		return
	}
	if !ev.Target.Within(w.id) {
		if !w.props.PreventDeactivation {
			w.setEnabled(false, true)
		}
		w.detach()
	}
	w.resetGesture()
}
