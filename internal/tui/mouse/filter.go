package mouse

import "github.com/regenrek/dragbox/internal/rect"

// Rect describes a hit-test rectangle in canvas cells.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle has non-positive dimensions.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Element names reported in a hit path.
const (
	PartTitle   = "title"
	PartBorder  = "border"
	PartContent = "content"
	PartFrame   = "frame"
)

// Target is one widget as laid out on the canvas.
type Target struct {
	ID  string
	Box Rect
	// Handles maps each offered grip to its cell. Empty when the widget is
	// not selected or not resizable.
	Handles map[rect.Handle]Rect
}

// Hit is the result of a hit test.
type Hit struct {
	WidgetID string
	Handle   rect.Handle
	Path     []string
}

// handlePriority resolves grips sharing a cell on very small boxes.
var handlePriority = []rect.Handle{
	rect.HandleTopLeft, rect.HandleTopRight, rect.HandleBottomRight, rect.HandleBottomLeft,
	rect.HandleTopMiddle, rect.HandleMiddleRight, rect.HandleBottomMiddle, rect.HandleMiddleLeft,
}

// HitTest returns the topmost target under (x, y). Targets are ordered
// bottom to top. Within a target, grips win over the body.
func HitTest(targets []Target, x, y int) (Hit, bool) {
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		for _, h := range handlePriority {
			cell, ok := t.Handles[h]
			if ok && cell.Contains(x, y) {
				return Hit{WidgetID: t.ID, Handle: h, Path: []string{string(h), PartFrame}}, true
			}
		}
		if !t.Box.Contains(x, y) {
			continue
		}
		return Hit{WidgetID: t.ID, Path: []string{partAt(t.Box, x, y), PartFrame}}, true
	}
	return Hit{}, false
}

func partAt(box Rect, x, y int) string {
	switch {
	case y == box.Y:
		return PartTitle
	case x == box.X || x == box.X+box.W-1 || y == box.Y+box.H-1:
		return PartBorder
	default:
		return PartContent
	}
}

// HandleCells places the grips of box on its border: corners on the corner
// cells, middles at the edge midpoints.
func HandleCells(box Rect, handles []rect.Handle) map[rect.Handle]Rect {
	if box.Empty() || len(handles) == 0 {
		return nil
	}
	right := box.X + box.W - 1
	bottom := box.Y + box.H - 1
	midX := box.X + (box.W-1)/2
	midY := box.Y + (box.H-1)/2
	cells := make(map[rect.Handle]Rect, len(handles))
	for _, h := range handles {
		x, y := midX, midY
		switch h {
		case rect.HandleTopLeft, rect.HandleMiddleLeft, rect.HandleBottomLeft:
			x = box.X
		case rect.HandleTopRight, rect.HandleMiddleRight, rect.HandleBottomRight:
			x = right
		}
		switch h {
		case rect.HandleTopLeft, rect.HandleTopMiddle, rect.HandleTopRight:
			y = box.Y
		case rect.HandleBottomLeft, rect.HandleBottomMiddle, rect.HandleBottomRight:
			y = bottom
		}
		cells[h] = Rect{X: x, Y: y, W: 1, H: 1}
	}
	return cells
}
