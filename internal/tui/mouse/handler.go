package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/regenrek/dragbox/internal/rect"
)

const doubleClickThreshold = 350 * time.Millisecond

// Handler turns terminal mouse messages into engine pointer events. Presses
// run the document's capture phase and then reach the hit widget; motion and
// release go to the document so a gesture follows the pointer anywhere.
type Handler struct {
	// OriginX and OriginY are the screen cell of canvas (0, 0).
	OriginX int
	OriginY int

	now             func() time.Time
	lastClickAt     time.Time
	lastClickWidget string
	lastClickButton tea.MouseButton
	pendingDouble   string
	pressed         bool
}

// Callbacks wire the handler into the app model.
type Callbacks struct {
	Document    *rect.Document
	Targets     func() []Target
	PointerDown func(id string, ev rect.PointerEvent)
	HandleDown  func(id string, h rect.Handle, ev rect.PointerEvent)
	// DoubleClick runs after the release of the second click on a widget
	// body, once the widget is idle again.
	DoubleClick func(id string)
}

// Update dispatches msg and reports whether the canvas may have changed.
func (h *Handler) Update(msg tea.MouseMsg, cb Callbacks) bool {
	x, y := msg.X-h.OriginX, msg.Y-h.OriginY
	ev := rect.PointerEvent{X: float64(x), Y: float64(y), Source: rect.SourceMouse}
	switch {
	case isPrimaryClick(msg):
		return h.press(msg, ev, cb)
	case msg.Action == tea.MouseActionMotion:
		if !h.pressed || cb.Document == nil {
			return false
		}
		cb.Document.Move(ev)
		return true
	case msg.Action == tea.MouseActionRelease:
		if !h.pressed {
			return false
		}
		h.pressed = false
		if cb.Document != nil {
			cb.Document.Up(ev)
		}
		if id := h.pendingDouble; id != "" {
			h.pendingDouble = ""
			if cb.DoubleClick != nil {
				cb.DoubleClick(id)
			}
		}
		return true
	default:
		return false
	}
}

func (h *Handler) press(msg tea.MouseMsg, ev rect.PointerEvent, cb Callbacks) bool {
	var targets []Target
	if cb.Targets != nil {
		targets = cb.Targets()
	}
	hit, ok := HitTest(targets, int(ev.X), int(ev.Y))
	if ok {
		ev.Target = rect.Target{Widget: hit.WidgetID, Handle: hit.Handle, Path: hit.Path}
	}
	h.pressed = true
	if cb.Document != nil {
		cb.Document.Down(ev)
	}
	if !ok {
		h.clearLastClick()
		return true
	}
	if hit.Handle != rect.HandleNone {
		h.clearLastClick()
		if cb.HandleDown != nil {
			cb.HandleDown(hit.WidgetID, hit.Handle, ev)
		}
		return true
	}
	if h.isDoubleClick(hit, msg) {
		h.clearLastClick()
		h.pendingDouble = hit.WidgetID
	} else {
		h.recordClick(hit, msg)
	}
	if cb.PointerDown != nil {
		cb.PointerDown(hit.WidgetID, ev)
	}
	return true
}

// Pressed reports whether a primary press is in progress.
func (h *Handler) Pressed() bool { return h.pressed }

func isPrimaryClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func (h *Handler) clock() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

func (h *Handler) recordClick(hit Hit, msg tea.MouseMsg) {
	h.lastClickAt = h.clock()
	h.lastClickWidget = hit.WidgetID
	h.lastClickButton = msg.Button
}

func (h *Handler) clearLastClick() {
	h.lastClickAt = time.Time{}
	h.lastClickWidget = ""
	h.lastClickButton = tea.MouseButtonNone
}

func (h *Handler) isDoubleClick(hit Hit, msg tea.MouseMsg) bool {
	if hit.WidgetID == "" {
		return false
	}
	if h.lastClickWidget != hit.WidgetID {
		return false
	}
	if h.lastClickButton != msg.Button {
		return false
	}
	if h.clock().Sub(h.lastClickAt) > doubleClickThreshold {
		return false
	}
	return true
}
