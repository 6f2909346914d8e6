package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/regenrek/dragbox/internal/rect"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	if r.Empty() {
		t.Fatalf("rect should not be empty")
	}
	if !r.Contains(2, 3) {
		t.Fatalf("rect should contain top-left corner")
	}
	if r.Contains(1, 3) {
		t.Fatalf("rect should not contain outside point")
	}
	if r.Contains(6, 7) {
		t.Fatalf("rect should not contain point on max edge")
	}
}

func TestHandleCellsOnBorder(t *testing.T) {
	cells := HandleCells(Rect{X: 10, Y: 5, W: 9, H: 5}, rect.AllHandles)
	want := map[rect.Handle][2]int{
		rect.HandleTopLeft:      {10, 5},
		rect.HandleTopMiddle:    {14, 5},
		rect.HandleTopRight:     {18, 5},
		rect.HandleMiddleRight:  {18, 7},
		rect.HandleBottomRight:  {18, 9},
		rect.HandleBottomMiddle: {14, 9},
		rect.HandleBottomLeft:   {10, 9},
		rect.HandleMiddleLeft:   {10, 7},
	}
	for h, xy := range want {
		cell := cells[h]
		if cell.X != xy[0] || cell.Y != xy[1] || cell.W != 1 || cell.H != 1 {
			t.Fatalf("%s cell=%+v want %v", h, cell, xy)
		}
	}
	if HandleCells(Rect{}, rect.AllHandles) != nil {
		t.Fatalf("empty box should have no cells")
	}
}

func TestHitTestOrder(t *testing.T) {
	lower := Target{ID: "lower", Box: Rect{X: 0, Y: 0, W: 10, H: 6}}
	upper := Target{ID: "upper", Box: Rect{X: 5, Y: 2, W: 10, H: 6}}
	upper.Handles = HandleCells(upper.Box, []rect.Handle{rect.HandleBottomRight})
	lower.Handles = HandleCells(lower.Box, []rect.Handle{rect.HandleBottomRight})
	targets := []Target{lower, upper}

	tests := []struct {
		x, y   int
		id     string
		handle rect.Handle
		part   string
	}{
		{6, 3, "upper", rect.HandleNone, PartContent},
		{5, 2, "upper", rect.HandleNone, PartTitle},
		{1, 1, "lower", rect.HandleNone, PartContent},
		{0, 3, "lower", rect.HandleNone, PartBorder},
		{14, 7, "upper", rect.HandleBottomRight, "br"},
		// lower's grip sits under upper's body.
		{9, 5, "upper", rect.HandleNone, PartContent},
	}
	for _, tt := range tests {
		hit, ok := HitTest(targets, tt.x, tt.y)
		if !ok || hit.WidgetID != tt.id || hit.Handle != tt.handle || hit.Path[0] != tt.part {
			t.Fatalf("HitTest(%d,%d)=%+v ok=%v want %s/%q/%s", tt.x, tt.y, hit, ok, tt.id, tt.handle, tt.part)
		}
	}
	if _, ok := HitTest(targets, 30, 30); ok {
		t.Fatalf("expected miss")
	}
}

func TestHitTestTinyBoxPrefersCorners(t *testing.T) {
	box := Rect{X: 0, Y: 0, W: 1, H: 1}
	target := Target{ID: "dot", Box: box, Handles: HandleCells(box, rect.AllHandles)}
	for i := 0; i < 20; i++ {
		hit, _ := HitTest([]Target{target}, 0, 0)
		if hit.Handle != rect.HandleTopLeft {
			t.Fatalf("handle=%q want tl", hit.Handle)
		}
	}
}

type harness struct {
	doc     *rect.Document
	widget  *rect.Widget
	doubles []string
	handler Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	props := rect.DefaultProps()
	props.X, props.Y, props.W, props.H = 2, 2, 10, 5
	props.Parent = true
	props.Active = true
	doc := rect.NewDocument()
	w := rect.New(doc, props, rect.Callbacks{}, rect.Options{ID: "box", Parent: rect.Size{W: 40, H: 20}})
	t.Cleanup(w.Close)
	h := &harness{doc: doc, widget: w}
	h.handler.OriginY = 1
	return h
}

func (h *harness) callbacks() Callbacks {
	return Callbacks{
		Document: h.doc,
		Targets: func() []Target {
			r := h.widget.Rect()
			box := Rect{X: int(r.Left), Y: int(r.Top), W: int(r.Width), H: int(r.Height)}
			var handles map[rect.Handle]Rect
			if h.widget.Active() {
				handles = HandleCells(box, h.widget.Handles())
			}
			return []Target{{ID: h.widget.ID(), Box: box, Handles: handles}}
		},
		PointerDown: func(id string, ev rect.PointerEvent) { h.widget.PointerDown(ev) },
		HandleDown:  func(id string, hd rect.Handle, ev rect.PointerEvent) { h.widget.HandleDown(hd, ev) },
		DoubleClick: func(id string) { h.doubles = append(h.doubles, id) },
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestHandlerDragsBody(t *testing.T) {
	h := newHarness(t)
	cb := h.callbacks()
	// Screen row 4 is canvas row 3, inside the box.
	h.handler.Update(press(5, 4), cb)
	if h.widget.State() != rect.StateDragging {
		t.Fatalf("state=%v want dragging", h.widget.State())
	}
	h.handler.Update(motion(8, 6), cb)
	h.handler.Update(release(8, 6), cb)
	r := h.widget.Rect()
	if r.Left != 5 || r.Top != 4 || r.Width != 10 || r.Height != 5 {
		t.Fatalf("rect=%+v", r)
	}
	if h.widget.State() != rect.StateIdle {
		t.Fatalf("state=%v want idle", h.widget.State())
	}
}

func TestHandlerResizesFromGrip(t *testing.T) {
	h := newHarness(t)
	cb := h.callbacks()
	// bottom-right grip of the box (2,2,10,5) is canvas cell (11,6).
	h.handler.Update(press(11, 7), cb)
	if h.widget.State() != rect.StateResizing || h.widget.Handle() != rect.HandleBottomRight {
		t.Fatalf("state=%v handle=%q", h.widget.State(), h.widget.Handle())
	}
	h.handler.Update(motion(15, 9), cb)
	h.handler.Update(release(15, 9), cb)
	r := h.widget.Rect()
	if r.Width != 14 || r.Height != 7 {
		t.Fatalf("size=%gx%g want 14x7", r.Width, r.Height)
	}
}

func TestHandlerPressOutsideDeselects(t *testing.T) {
	h := newHarness(t)
	cb := h.callbacks()
	h.handler.Update(press(30, 15), cb)
	h.handler.Update(release(30, 15), cb)
	if h.widget.Active() {
		t.Fatalf("widget should be deselected")
	}
}

func TestHandlerIgnoresStrayEvents(t *testing.T) {
	h := newHarness(t)
	cb := h.callbacks()
	if h.handler.Update(motion(5, 5), cb) || h.handler.Update(release(5, 5), cb) {
		t.Fatalf("motion and release without a press should be ignored")
	}
	wheel := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
	if h.handler.Update(wheel, cb) {
		t.Fatalf("wheel should be ignored")
	}
}

func TestHandlerDoubleClickFiresAfterRelease(t *testing.T) {
	h := newHarness(t)
	clock := time.Unix(0, 0)
	h.handler.now = func() time.Time { return clock }
	cb := h.callbacks()

	h.handler.Update(press(5, 4), cb)
	h.handler.Update(release(5, 4), cb)
	clock = clock.Add(doubleClickThreshold / 2)
	h.handler.Update(press(5, 4), cb)
	if len(h.doubles) != 0 {
		t.Fatalf("double click should wait for release")
	}
	h.handler.Update(release(5, 4), cb)
	if len(h.doubles) != 1 || h.doubles[0] != "box" {
		t.Fatalf("doubles=%v", h.doubles)
	}
	if !h.widget.SetLockAspectRatio(true) {
		t.Fatalf("widget should be idle when the double click fires")
	}

	clock = clock.Add(doubleClickThreshold * 2)
	h.handler.Update(press(5, 4), cb)
	h.handler.Update(release(5, 4), cb)
	clock = clock.Add(doubleClickThreshold * 2)
	h.handler.Update(press(5, 4), cb)
	h.handler.Update(release(5, 4), cb)
	if len(h.doubles) != 1 {
		t.Fatalf("slow clicks should not count: %v", h.doubles)
	}
}
