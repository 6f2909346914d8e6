package rect

import (
	"path"
	"strings"
)

// Source is the pointer family a gesture listens to.
type Source uint8

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// Target describes what a pointer-down hit.
type Target struct {
	// Widget is the id of the widget that contains the hit, empty when the
	// pointer is outside every widget.
	Widget string
	// Handle is set when the hit is a resize grip.
	Handle Handle
	// Path lists element names from the hit element up to the widget root.
	Path []string
}

// Within reports whether the target is inside the widget with the given id.
func (t Target) Within(id string) bool {
	return id != "" && t.Widget == id
}

// Matches reports whether any element on the path, walking from the hit
// element toward the widget root, matches selector. Selectors are
// comma-separated shell patterns matched against element names.
func (t Target) Matches(selector string) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return false
	}
	patterns := strings.Split(selector, ",")
	for _, elem := range t.Path {
		for _, pattern := range patterns {
			pattern = strings.TrimSpace(pattern)
			if pattern == "" {
				continue
			}
			if ok, err := path.Match(pattern, elem); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// PointerEvent is one pointer sample in page coordinates.
type PointerEvent struct {
	X      float64
	Y      float64
	Source Source
	Target Target
}

// Listener receives the move and up events of one gesture.
type Listener struct {
	Source Source
	Move   func(PointerEvent)
	Up     func(PointerEvent)
}

type listenerEntry struct {
	id       uint64
	listener Listener
}

type captureEntry struct {
	id uint64
	fn func(PointerEvent)
}

// Document is the page-level event stream widgets subscribe to. Capture
// listeners see every pointer-down before the hit widget does. Gesture
// listeners see move and up events of their source wherever the pointer is.
// A Document is driven from a single goroutine.
type Document struct {
	nextID   uint64
	capture  []captureEntry
	gestures []listenerEntry
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// Capture registers a pointer-down listener and returns its detach func.
func (d *Document) Capture(fn func(PointerEvent)) func() {
	d.nextID++
	id := d.nextID
	d.capture = append(d.capture, captureEntry{id: id, fn: fn})
	return func() {
		for i, entry := range d.capture {
			if entry.id == id {
				d.capture = append(d.capture[:i:i], d.capture[i+1:]...)
				return
			}
		}
	}
}

// Listen registers a gesture listener and returns its detach func.
func (d *Document) Listen(l Listener) func() {
	d.nextID++
	id := d.nextID
	d.gestures = append(d.gestures, listenerEntry{id: id, listener: l})
	return func() {
		for i, entry := range d.gestures {
			if entry.id == id {
				d.gestures = append(d.gestures[:i:i], d.gestures[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of attached gesture listeners.
func (d *Document) Listeners() int {
	return len(d.gestures)
}

// Down runs the capture-phase pointer-down listeners.
func (d *Document) Down(ev PointerEvent) {
	for _, entry := range append([]captureEntry(nil), d.capture...) {
		entry.fn(ev)
	}
}

// Move delivers a pointer-move to the gesture listeners of its source.
func (d *Document) Move(ev PointerEvent) {
	for _, entry := range append([]listenerEntry(nil), d.gestures...) {
		if entry.listener.Source == ev.Source && entry.listener.Move != nil {
			entry.listener.Move(ev)
		}
	}
}

// Up delivers a pointer-up to the gesture listeners of its source.
func (d *Document) Up(ev PointerEvent) {
	for _, entry := range append([]listenerEntry(nil), d.gestures...) {
		if entry.listener.Source == ev.Source && entry.listener.Up != nil {
			entry.listener.Up(ev)
		}
	}
}
