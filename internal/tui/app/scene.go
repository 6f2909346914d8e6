package app

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/rect"
	"github.com/regenrek/dragbox/internal/simulate"
	"github.com/regenrek/dragbox/internal/tui/mouse"
	"github.com/regenrek/dragbox/internal/tui/theme"
)

// sceneWidget pairs a definition with its mounted widget.
type sceneWidget struct {
	def    config.WidgetDef
	w      *rect.Widget
	color  lipgloss.Color
	raised int
}

func (sw *sceneWidget) box() mouse.Rect {
	return cellRect(sw.w.Rect())
}

func cellRect(r rect.Rect) mouse.Rect {
	return mouse.Rect{
		X: int(math.Round(r.Left)),
		Y: int(math.Round(r.Top)),
		W: int(math.Round(r.Width)),
		H: int(math.Round(r.Height)),
	}
}

func (m *Model) mountScene(scene config.Scene) {
	m.scene = scene
	for i, def := range scene.Widgets {
		if sw := m.mount(def, i); sw != nil {
			m.widgets = append(m.widgets, sw)
		}
	}
}

func (m *Model) mount(def config.WidgetDef, index int) *sceneWidget {
	props, err := m.propsFor(def)
	if err != nil {
		m.log.Warn("app: skipping widget", slog.String("widget", def.ID), slog.Any("err", err))
		return nil
	}
	w := rect.New(m.doc, props, m.callbacks(def.ID), rect.Options{
		ID:     def.ID,
		Parent: m.parentSize(),
		Logger: m.log,
	})
	return &sceneWidget{def: def, w: w, color: theme.WidgetColor(def.Color, index)}
}

// applyScene reconciles the mounted widgets with a reloaded scene by id.
// Widgets missing from the scene are unmounted and new ones are mounted.
func (m *Model) applyScene(scene config.Scene) {
	byID := make(map[string]*sceneWidget, len(m.widgets))
	for _, sw := range m.widgets {
		byID[sw.def.ID] = sw
	}
	m.scene = scene
	next := make([]*sceneWidget, 0, len(scene.Widgets))
	for i, def := range scene.Widgets {
		sw, ok := byID[def.ID]
		if !ok {
			if sw = m.mount(def, i); sw != nil {
				next = append(next, sw)
			}
			continue
		}
		delete(byID, def.ID)
		props, err := m.propsFor(def)
		if err != nil {
			m.log.Warn("app: keeping widget", slog.String("widget", def.ID), slog.Any("err", err))
			next = append(next, sw)
			continue
		}
		sw.def = def
		sw.color = theme.WidgetColor(def.Color, i)
		sw.w.Reconcile(props)
		next = append(next, sw)
	}
	for id, sw := range byID {
		sw.w.Close()
		m.events.add(id, "removed")
	}
	m.widgets = next
}

// propsFor converts def and applies the grid and containment the user
// picked at runtime.
func (m *Model) propsFor(def config.WidgetDef) (rect.Props, error) {
	props, err := def.Props(m.scene.Canvas)
	if err != nil {
		return rect.Props{}, fmt.Errorf("widget %s: %w", def.ID, err)
	}
	if m.gridStep > 0 {
		props.Grid = rect.Grid{X: m.gridStep, Y: m.gridStep}
	}
	if m.contain != nil {
		props.Parent = *m.contain
	}
	return props, nil
}

// reconcileOverrides pushes the runtime grid and containment into every
// widget. Geometry, selection and stacking stay as they are.
func (m *Model) reconcileOverrides() {
	for _, sw := range m.widgets {
		props, err := m.propsFor(sw.def)
		if err != nil {
			continue
		}
		cur := sw.w.Props()
		props.Active = cur.Active
		props.Z = cur.Z
		props.LockAspectRatio = cur.LockAspectRatio
		props.X, props.Y, props.W, props.H = cur.X, cur.Y, cur.W, cur.H
		sw.w.Reconcile(props)
	}
}

func (m *Model) callbacks(id string) rect.Callbacks {
	events, throttle, ctx, log := m.events, m.throttle, m.ctx, m.log
	cb := simulate.Callbacks(func(format string, args ...any) {
		events.add(id, fmt.Sprintf(format, args...))
	})
	dragging, dragStop := cb.Dragging, cb.DragStop
	resizing, resizeStop := cb.Resizing, cb.ResizeStop
	cb.Dragging = func(left, top float64) {
		dragging(left, top)
		throttle.Log(ctx, "drag:"+id, slog.LevelDebug, "app: dragging",
			slog.String("widget", id), slog.Float64("left", left), slog.Float64("top", top))
	}
	cb.DragStop = func(left, top float64) {
		dragStop(left, top)
		throttle.Reset("drag:" + id)
		log.Info("app: moved", slog.String("widget", id), slog.Float64("left", left), slog.Float64("top", top))
	}
	cb.Resizing = func(left, top, width, height float64) {
		resizing(left, top, width, height)
		throttle.Log(ctx, "resize:"+id, slog.LevelDebug, "app: resizing",
			slog.String("widget", id), slog.Float64("width", width), slog.Float64("height", height))
	}
	cb.ResizeStop = func(left, top, width, height float64) {
		resizeStop(left, top, width, height)
		throttle.Reset("resize:" + id)
		log.Info("app: resized", slog.String("widget", id),
			slog.Float64("left", left), slog.Float64("top", top),
			slog.Float64("width", width), slog.Float64("height", height))
	}
	return cb
}

// stack returns the widgets bottom to top: by z, then by most recent press.
func (m *Model) stack() []*sceneWidget {
	out := slices.Clone(m.widgets)
	slices.SortStableFunc(out, func(a, b *sceneWidget) int {
		if c := cmp.Compare(a.w.Z(), b.w.Z()); c != 0 {
			return c
		}
		return cmp.Compare(a.raised, b.raised)
	})
	return out
}

func (m *Model) raise(sw *sceneWidget) {
	m.raises++
	sw.raised = m.raises
}

func (m *Model) find(id string) *sceneWidget {
	for _, sw := range m.widgets {
		if sw.def.ID == id {
			return sw
		}
	}
	return nil
}

// selected returns the topmost active widget.
func (m *Model) selected() *sceneWidget {
	stack := m.stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].w.Active() {
			return stack[i]
		}
	}
	return nil
}

func (m *Model) targets() []mouse.Target {
	stack := m.stack()
	out := make([]mouse.Target, 0, len(stack))
	for _, sw := range stack {
		t := mouse.Target{ID: sw.def.ID, Box: sw.box()}
		if sw.w.Active() {
			t.Handles = mouseHandles(sw)
		}
		out = append(out, t)
	}
	return out
}

func mouseHandles(sw *sceneWidget) map[rect.Handle]mouse.Rect {
	return mouse.HandleCells(sw.box(), sw.w.Handles())
}

// grid is the canvas step shown on the backdrop and in the status line.
func (m *Model) grid() rect.Grid {
	if m.gridStep > 0 {
		return rect.Grid{X: m.gridStep, Y: m.gridStep}
	}
	g := m.scene.Canvas.Grid
	if g.X <= 0 {
		g.X = 1
	}
	if g.Y <= 0 {
		g.Y = 1
	}
	return g
}

func (m *Model) contained() bool {
	if m.contain != nil {
		return *m.contain
	}
	return m.scene.Canvas.Contained()
}

// snapshotScene copies the scene with every definition updated to the
// widget's current geometry, selection and lock.
func (m *Model) snapshotScene() config.Scene {
	scene := m.scene
	scene.Widgets = make([]config.WidgetDef, 0, len(m.widgets))
	for _, sw := range m.widgets {
		def := sw.def
		r := sw.w.Rect()
		def.X, def.Y, def.W, def.H = r.Left, r.Top, r.Width, r.Height
		def.LockAspectRatio = sw.w.Props().LockAspectRatio
		def.Active = sw.w.Active()
		def.Z = sw.w.Z()
		scene.Widgets = append(scene.Widgets, def)
	}
	return scene
}
