package simulate

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/rect"
)

// Result is the outcome of a replay.
type Result struct {
	// Trace lists notifications in emission order, one per line.
	Trace  []string
	Final  rect.Rect
	Active bool
}

// Run replays script against a fresh widget on a private document.
func Run(script Script, logger *slog.Logger) (Result, error) {
	props, err := script.Widget.Props(config.Canvas{})
	if err != nil {
		return Result{}, fmt.Errorf("simulate: widget: %w", err)
	}
	var trace []string
	record := func(format string, args ...any) {
		trace = append(trace, fmt.Sprintf(format, args...))
	}
	doc := rect.NewDocument()
	w := rect.New(doc, props, Callbacks(record), rect.Options{
		ID:     script.Widget.ID,
		Parent: script.Parent,
		Logger: logger,
	})
	defer w.Close()

	for i, step := range script.Steps {
		kind, err := step.kind()
		if err != nil {
			return Result{}, fmt.Errorf("simulate: steps[%d]: %w", i, err)
		}
		source := rect.SourceMouse
		if step.Touch {
			source = rect.SourceTouch
		}
		switch kind {
		case "down":
			ev := rect.PointerEvent{X: step.Down.X, Y: step.Down.Y, Source: source, Target: rect.Target{Widget: w.ID(), Path: step.Path}}
			doc.Down(ev)
			w.PointerDown(ev)
		case "handle":
			h, err := rect.ParseHandle(step.Handle)
			if err != nil {
				return Result{}, fmt.Errorf("simulate: steps[%d]: %w", i, err)
			}
			ev := rect.PointerEvent{X: step.At.X, Y: step.At.Y, Source: source, Target: rect.Target{Widget: w.ID(), Handle: h}}
			doc.Down(ev)
			w.HandleDown(h, ev)
		case "move":
			doc.Move(rect.PointerEvent{X: step.Move.X, Y: step.Move.Y, Source: source})
		case "up":
			doc.Up(rect.PointerEvent{X: step.Up.X, Y: step.Up.Y, Source: source})
		case "outside":
			doc.Down(rect.PointerEvent{X: step.Outside.X, Y: step.Outside.Y, Source: source})
		case "set":
			applySet(w, *step.Set, record)
		}
	}
	return Result{Trace: trace, Final: w.Rect(), Active: w.Active()}, nil
}

// Callbacks formats every widget notification through record.
func Callbacks(record func(format string, args ...any)) rect.Callbacks {
	return rect.Callbacks{
		Activated:    func() { record("activated") },
		Deactivated:  func() { record("deactivated") },
		ActiveChange: func(active bool) { record("update:active %t", active) },
		Dragging:     func(left, top float64) { record("dragging %s %s", num(left), num(top)) },
		DragStop:     func(left, top float64) { record("dragstop %s %s", num(left), num(top)) },
		Resizing: func(left, top, width, height float64) {
			record("resizing %s %s %s %s", num(left), num(top), num(width), num(height))
		},
		ResizeStop: func(left, top, width, height float64) {
			record("resizestop %s %s %s %s", num(left), num(top), num(width), num(height))
		},
	}
}

func applySet(w *rect.Widget, s Set, record func(format string, args ...any)) {
	check := func(name string, ok bool) {
		if !ok {
			record("ignored set %s", name)
		}
	}
	if s.Parent != nil {
		w.SetParentSize(*s.Parent)
	}
	if s.Active != nil {
		w.SetActive(*s.Active)
	}
	if s.Z != nil {
		w.SetZ(*s.Z)
	}
	if s.LockAspectRatio != nil {
		check("lock_aspect_ratio", w.SetLockAspectRatio(*s.LockAspectRatio))
	}
	if s.MinWidth != nil {
		check("min_width", w.SetMinWidth(*s.MinWidth))
	}
	if s.MinHeight != nil {
		check("min_height", w.SetMinHeight(*s.MinHeight))
	}
	if s.MaxWidth != nil {
		w.SetMaxWidth(*s.MaxWidth)
	}
	if s.MaxHeight != nil {
		w.SetMaxHeight(*s.MaxHeight)
	}
	if s.Width != nil {
		check("width", w.SetWidth(*s.Width))
	}
	if s.Height != nil {
		check("height", w.SetHeight(*s.Height))
	}
	if s.X != nil {
		check("x", w.SetX(*s.X))
	}
	if s.Y != nil {
		check("y", w.SetY(*s.Y))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
