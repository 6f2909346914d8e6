package rect

import (
	"fmt"
	"math"
	"testing"
)

const testWidgetID = "box"

type recorder struct {
	events []string
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		Activated:    func() { r.events = append(r.events, "activated") },
		Deactivated:  func() { r.events = append(r.events, "deactivated") },
		ActiveChange: func(v bool) { r.events = append(r.events, fmt.Sprintf("update:active %t", v)) },
		Dragging: func(l, t float64) {
			r.events = append(r.events, fmt.Sprintf("dragging %g %g", l, t))
		},
		DragStop: func(l, t float64) {
			r.events = append(r.events, fmt.Sprintf("dragstop %g %g", l, t))
		},
		Resizing: func(l, t, w, h float64) {
			r.events = append(r.events, fmt.Sprintf("resizing %g %g %g %g", l, t, w, h))
		},
		ResizeStop: func(l, t, w, h float64) {
			r.events = append(r.events, fmt.Sprintf("resizestop %g %g %g %g", l, t, w, h))
		},
	}
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, ev := range r.events {
		if len(ev) >= len(prefix) && ev[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// scenarioProps is a 100x100 box at (50, 50) inside a 400x300 parent.
func scenarioProps() Props {
	p := DefaultProps()
	p.X, p.Y, p.W, p.H = 50, 50, 100, 100
	p.Parent = true
	p.Active = true
	return p
}

var scenarioParent = Size{W: 400, H: 300}

func newTestWidget(t *testing.T, props Props, parent Size) (*Widget, *Document, *recorder) {
	t.Helper()
	doc := NewDocument()
	rec := &recorder{}
	w := New(doc, props, rec.callbacks(), Options{ID: testWidgetID, Parent: parent})
	t.Cleanup(w.Close)
	return w, doc, rec
}

func inside(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y, Target: Target{Widget: testWidgetID, Path: []string{"body"}}}
}

func outside(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y}
}

func at(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y}
}

// drag runs a full body gesture the way a host would dispatch it.
func drag(doc *Document, w *Widget, from PointerEvent, moves ...PointerEvent) {
	doc.Down(from)
	w.PointerDown(from)
	for _, mv := range moves {
		mv.Source = from.Source
		doc.Move(mv)
	}
}

// resize runs a grip gesture without releasing.
func resize(doc *Document, w *Widget, h Handle, from PointerEvent, moves ...PointerEvent) {
	from.Target.Handle = h
	doc.Down(from)
	w.HandleDown(h, from)
	for _, mv := range moves {
		mv.Source = from.Source
		doc.Move(mv)
	}
}

func release(doc *Document, ev PointerEvent) {
	doc.Up(ev)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertRect(t *testing.T, got Rect, want Rect) {
	t.Helper()
	if !approx(got.Left, want.Left) || !approx(got.Top, want.Top) || !approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Fatalf("rect=%+v want %+v", got, want)
	}
}
