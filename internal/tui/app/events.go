package app

import (
	"strings"
	"time"
)

const maxEvents = 64

type event struct {
	At     time.Time
	Widget string
	Text   string
}

// kind is the notification name, the first word of its text.
func (e event) kind() string {
	kind, _, _ := strings.Cut(e.Text, " ")
	return kind
}

// eventLog keeps the most recent widget notifications. Consecutive
// dragging or resizing reports from one widget collapse into a single entry.
type eventLog struct {
	now     func() time.Time
	entries []event
}

func newEventLog(now func() time.Time) *eventLog {
	if now == nil {
		now = time.Now
	}
	return &eventLog{now: now}
}

func (l *eventLog) add(widget, text string) {
	ev := event{At: l.now(), Widget: widget, Text: text}
	if n := len(l.entries); n > 0 {
		last := l.entries[n-1]
		if last.Widget == widget && last.kind() == ev.kind() && continuous(ev.kind()) {
			l.entries[n-1] = ev
			return
		}
	}
	l.entries = append(l.entries, ev)
	if len(l.entries) > maxEvents {
		l.entries = append(l.entries[:0:0], l.entries[len(l.entries)-maxEvents:]...)
	}
}

func continuous(kind string) bool {
	return kind == "dragging" || kind == "resizing"
}

// last returns up to n entries, oldest first.
func (l *eventLog) last(n int) []event {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[len(l.entries)-n:]
}
