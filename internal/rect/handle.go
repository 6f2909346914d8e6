package rect

import (
	"fmt"
	"strings"
)

// Handle names one of the eight resize grips. The first letter is the row
// (t, m, b) and the second the column (l, m, r).
type Handle string

const (
	HandleNone         Handle = ""
	HandleTopLeft      Handle = "tl"
	HandleTopMiddle    Handle = "tm"
	HandleTopRight     Handle = "tr"
	HandleMiddleRight  Handle = "mr"
	HandleBottomRight  Handle = "br"
	HandleBottomMiddle Handle = "bm"
	HandleBottomLeft   Handle = "bl"
	HandleMiddleLeft   Handle = "ml"
)

// AllHandles lists every handle in clockwise order starting top-left.
var AllHandles = []Handle{
	HandleTopLeft,
	HandleTopMiddle,
	HandleTopRight,
	HandleMiddleRight,
	HandleBottomRight,
	HandleBottomMiddle,
	HandleBottomLeft,
	HandleMiddleLeft,
}

// ParseHandle converts a handle name such as "br" into a Handle.
func ParseHandle(value string) (Handle, error) {
	h := Handle(strings.ToLower(strings.TrimSpace(value)))
	if !h.Valid() {
		return HandleNone, fmt.Errorf("rect: unknown handle %q", value)
	}
	return h, nil
}

// Valid reports whether h is one of the eight named handles.
func (h Handle) Valid() bool {
	for _, known := range AllHandles {
		if h == known {
			return true
		}
	}
	return false
}

// IsCorner reports whether h moves two edges.
func (h Handle) IsCorner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft:
		return true
	default:
		return false
	}
}

func (h Handle) movesTop() bool    { return strings.Contains(string(h), "t") }
func (h Handle) movesBottom() bool { return strings.Contains(string(h), "b") }
func (h Handle) movesLeft() bool   { return strings.Contains(string(h), "l") }
func (h Handle) movesRight() bool  { return strings.Contains(string(h), "r") }

// MovesX reports whether the handle moves the left or right edge.
func (h Handle) MovesX() bool { return h.movesLeft() || h.movesRight() }

// MovesY reports whether the handle moves the top or bottom edge.
func (h Handle) MovesY() bool { return h.movesTop() || h.movesBottom() }

// lockedHandle maps a corner to the middle handle of its column. With aspect
// lock the column edge drives the resize and the row edge follows through the
// aspect factor, so a corner never writes both axes directly.
func lockedHandle(h Handle) Handle {
	if !h.IsCorner() {
		return h
	}
	return Handle("m" + string(h[1]))
}

// Axis restricts which pointer components a drag may use.
type Axis string

const (
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisBoth Axis = "both"
)

// ParseAxis converts "x", "y" or "both" into an Axis. Empty means both.
func ParseAxis(value string) (Axis, error) {
	switch a := Axis(strings.ToLower(strings.TrimSpace(value))); a {
	case "":
		return AxisBoth, nil
	case AxisX, AxisY, AxisBoth:
		return a, nil
	default:
		return AxisBoth, fmt.Errorf("rect: unknown axis %q", value)
	}
}

func (a Axis) allowsX() bool { return a != AxisY }
func (a Axis) allowsY() bool { return a != AxisX }

// State is the interaction state of a widget.
type State uint8

const (
	StateIdle State = iota
	StateDragging
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "idle"
	}
}
