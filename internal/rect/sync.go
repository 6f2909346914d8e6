package rect

import "math"

// busy reports whether a gesture owns the geometry.
func (w *Widget) busy() bool {
	return w.state != StateIdle
}

func onGrid(delta, step float64) bool {
	return math.Mod(delta, step) == 0
}

// SetX moves the left edge to x. The move is applied only while idle and
// only when it is a whole number of grid steps; it reports whether it was.
// Props record the settled edge, so a clamped move reads back clamped.
func (w *Widget) SetX(x float64) bool {
	if w.busy() {
		return false
	}
	defer w.resetGesture()
	if w.props.Parent {
		w.geom.bounds = w.solver().DragBounds(w.geom.settled)
	}
	delta := x - w.geom.settled.Left
	if !onGrid(delta, w.props.Grid.X) {
		return false
	}
	right := w.geom.settled.Right
	w.geom.setLeft(x)
	w.geom.setRight(right - delta)
	w.props.X = w.geom.settled.Left
	return true
}

// SetY moves the top edge to y under the same rules as SetX.
func (w *Widget) SetY(y float64) bool {
	if w.busy() {
		return false
	}
	defer w.resetGesture()
	if w.props.Parent {
		w.geom.bounds = w.solver().DragBounds(w.geom.settled)
	}
	delta := y - w.geom.settled.Top
	if !onGrid(delta, w.props.Grid.Y) {
		return false
	}
	bottom := w.geom.settled.Bottom
	w.geom.setTop(y)
	w.geom.setBottom(bottom - delta)
	w.props.Y = w.geom.settled.Top
	return true
}

// SetWidth resizes from the right edge to width.
func (w *Widget) SetWidth(width float64) bool {
	if w.busy() {
		return false
	}
	defer w.resetGesture()
	if w.props.Parent {
		w.geom.bounds = w.solver().ResizeBounds(w.geom.settled)
	}
	delta := w.geom.width() - width
	if !onGrid(delta, w.props.Grid.X) {
		return false
	}
	w.geom.setRight(w.geom.settled.Right + delta)
	w.props.W = w.geom.width()
	return true
}

// SetHeight resizes from the bottom edge to height.
func (w *Widget) SetHeight(height float64) bool {
	if w.busy() {
		return false
	}
	defer w.resetGesture()
	if w.props.Parent {
		w.geom.bounds = w.solver().ResizeBounds(w.geom.settled)
	}
	delta := w.geom.height() - height
	if !onGrid(delta, w.props.Grid.Y) {
		return false
	}
	w.geom.setBottom(w.geom.settled.Bottom + delta)
	w.props.H = w.geom.height()
	return true
}

// SetActive selects or deselects the widget on behalf of the host.
func (w *Widget) SetActive(active bool) {
	w.props.Active = active
	w.setEnabled(active, false)
}

// SetLockAspectRatio captures the current width/height ratio when locking.
func (w *Widget) SetLockAspectRatio(lock bool) bool {
	if w.busy() {
		return false
	}
	w.props.LockAspectRatio = lock
	w.geom.lock = lock
	if lock {
		w.geom.aspect = w.geom.width() / w.geom.height()
	} else {
		w.geom.aspect = 0
	}
	return true
}

// SetMinWidth accepts a minimum only when it fits the current width.
func (w *Widget) SetMinWidth(v float64) bool {
	w.props.MinWidth = v
	if v > 0 && v <= w.geom.width() {
		w.limits.MinWidth = v
		return true
	}
	return false
}

// SetMinHeight accepts a minimum only when it fits the current height.
func (w *Widget) SetMinHeight(v float64) bool {
	w.props.MinHeight = v
	if v > 0 && v <= w.geom.height() {
		w.limits.MinHeight = v
		return true
	}
	return false
}

// SetMaxWidth sets the maximum width; zero removes it.
func (w *Widget) SetMaxWidth(v float64) {
	w.props.MaxWidth = v
	w.limits.MaxWidth = v
}

// SetMaxHeight sets the maximum height; zero removes it.
func (w *Widget) SetMaxHeight(v float64) {
	w.props.MaxHeight = v
	w.limits.MaxHeight = v
}

// SetZ sets the stacking order. Negative values are ignored.
func (w *Widget) SetZ(z int) {
	if z < 0 {
		return
	}
	w.props.Z = z
	w.zIndex = z
}

// SetParentSize records a new parent size. The widget keeps its left/top
// offsets and its size.
func (w *Widget) SetParentSize(parent Size) {
	w.geom.resize(parent)
}

// Reconcile applies a full set of props. Fields are compared against the
// current props and applied in a fixed order: flags and limits first, then
// size, then position. While a gesture is active only the selection flag
// and stacking order are applied.
func (w *Widget) Reconcile(next Props) {
	next = next.normalized()
	cur := w.props

	if next.Active != cur.Active {
		w.SetActive(next.Active)
	}
	if next.Z != cur.Z {
		w.SetZ(next.Z)
	}
	if w.busy() {
		return
	}

	w.props.Grid = next.Grid
	w.props.Axis = next.Axis
	w.props.Parent = next.Parent
	w.props.Draggable = next.Draggable
	w.props.Resizable = next.Resizable
	w.props.Handles = append([]Handle(nil), next.Handles...)
	w.props.DragHandle = next.DragHandle
	w.props.DragCancel = next.DragCancel
	w.props.PreventDeactivation = next.PreventDeactivation

	if next.LockAspectRatio != cur.LockAspectRatio {
		w.SetLockAspectRatio(next.LockAspectRatio)
	}
	if next.MinWidth != cur.MinWidth {
		w.SetMinWidth(next.MinWidth)
	}
	if next.MinHeight != cur.MinHeight {
		w.SetMinHeight(next.MinHeight)
	}
	if next.MaxWidth != cur.MaxWidth {
		w.SetMaxWidth(next.MaxWidth)
	}
	if next.MaxHeight != cur.MaxHeight {
		w.SetMaxHeight(next.MaxHeight)
	}
	if next.W != cur.W {
		w.SetWidth(next.W)
	}
	if next.H != cur.H {
		w.SetHeight(next.H)
	}
	if next.X != cur.X {
		w.SetX(next.X)
	}
	if next.Y != cur.Y {
		w.SetY(next.Y)
	}
}

