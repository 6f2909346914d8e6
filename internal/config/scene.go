// Package config loads scene files: the canvas settings and the widgets the
// interactive canvas and the replay command start from.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/regenrek/dragbox/internal/logging"
	"github.com/regenrek/dragbox/internal/rect"
)

const (
	defaultWidgetW = 24
	defaultWidgetH = 8
)

// Scene is the root of a scene file.
type Scene struct {
	Logging logging.Config `yaml:"logging,omitempty" toml:"logging,omitempty"`
	Canvas  Canvas         `yaml:"canvas,omitempty" toml:"canvas,omitempty"`
	Widgets []WidgetDef    `yaml:"widgets" toml:"widgets"`
}

// Canvas holds settings shared by every widget unless a widget overrides
// them.
type Canvas struct {
	// Contain keeps widgets inside the canvas. Defaults to true.
	Contain *bool     `yaml:"contain,omitempty" toml:"contain,omitempty"`
	Grid    rect.Grid `yaml:"grid,omitempty" toml:"grid,omitempty"`
}

// Contained reports the effective containment default.
func (c Canvas) Contained() bool {
	return c.Contain == nil || *c.Contain
}

// WidgetDef describes one widget. Coordinates are canvas cells.
type WidgetDef struct {
	ID    string `yaml:"id,omitempty" toml:"id,omitempty"`
	Title string `yaml:"title,omitempty" toml:"title,omitempty"`
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`

	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w,omitempty" toml:"w,omitempty"`
	H float64 `yaml:"h,omitempty" toml:"h,omitempty"`

	MinWidth  float64 `yaml:"min_width,omitempty" toml:"min_width,omitempty"`
	MinHeight float64 `yaml:"min_height,omitempty" toml:"min_height,omitempty"`
	MaxWidth  float64 `yaml:"max_width,omitempty" toml:"max_width,omitempty"`
	MaxHeight float64 `yaml:"max_height,omitempty" toml:"max_height,omitempty"`

	Grid            *rect.Grid `yaml:"grid,omitempty" toml:"grid,omitempty"`
	Axis            string     `yaml:"axis,omitempty" toml:"axis,omitempty"`
	LockAspectRatio bool       `yaml:"lock_aspect_ratio,omitempty" toml:"lock_aspect_ratio,omitempty"`
	Contain         *bool      `yaml:"contain,omitempty" toml:"contain,omitempty"`

	Draggable  *bool    `yaml:"draggable,omitempty" toml:"draggable,omitempty"`
	Resizable  *bool    `yaml:"resizable,omitempty" toml:"resizable,omitempty"`
	Handles    []string `yaml:"handles,omitempty" toml:"handles,omitempty"`
	DragHandle string   `yaml:"drag_handle,omitempty" toml:"drag_handle,omitempty"`
	DragCancel string   `yaml:"drag_cancel,omitempty" toml:"drag_cancel,omitempty"`

	Active              bool `yaml:"active,omitempty" toml:"active,omitempty"`
	PreventDeactivation bool `yaml:"prevent_deactivation,omitempty" toml:"prevent_deactivation,omitempty"`
	Z                   int  `yaml:"z,omitempty" toml:"z,omitempty"`
}

// Props converts the definition into engine props, filling unset fields
// from the canvas.
func (d WidgetDef) Props(canvas Canvas) (rect.Props, error) {
	props := rect.DefaultProps()
	props.X = d.X
	props.Y = d.Y
	props.W = d.W
	props.H = d.H
	props.MinWidth = d.MinWidth
	props.MinHeight = d.MinHeight
	props.MaxWidth = d.MaxWidth
	props.MaxHeight = d.MaxHeight
	props.Grid = canvas.Grid
	if d.Grid != nil {
		props.Grid = *d.Grid
	}
	axis, err := rect.ParseAxis(d.Axis)
	if err != nil {
		return rect.Props{}, err
	}
	props.Axis = axis
	props.LockAspectRatio = d.LockAspectRatio
	props.Parent = canvas.Contained()
	if d.Contain != nil {
		props.Parent = *d.Contain
	}
	if d.Draggable != nil {
		props.Draggable = *d.Draggable
	}
	if d.Resizable != nil {
		props.Resizable = *d.Resizable
	}
	if len(d.Handles) > 0 {
		props.Handles = make([]rect.Handle, 0, len(d.Handles))
		for _, raw := range d.Handles {
			h, err := rect.ParseHandle(raw)
			if err != nil {
				return rect.Props{}, err
			}
			props.Handles = append(props.Handles, h)
		}
	}
	props.DragHandle = d.DragHandle
	props.DragCancel = d.DragCancel
	props.Active = d.Active
	props.PreventDeactivation = d.PreventDeactivation
	props.Z = d.Z
	return props, nil
}

// ApplyDefaults fills ids, titles and sizes left out of the file.
func (s *Scene) ApplyDefaults() {
	if s == nil {
		return
	}
	for i := range s.Widgets {
		w := &s.Widgets[i]
		w.ID = strings.TrimSpace(w.ID)
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if strings.TrimSpace(w.Title) == "" {
			w.Title = w.ID
		}
		if w.W <= 0 {
			w.W = defaultWidgetW
		}
		if w.H <= 0 {
			w.H = defaultWidgetH
		}
	}
}

// Validate reports every problem in the scene at once.
func (s Scene) Validate() error {
	var errs []error
	if _, err := s.Logging.Normalize(); err != nil {
		errs = append(errs, err)
	}
	if s.Canvas.Grid.X < 0 || s.Canvas.Grid.Y < 0 {
		errs = append(errs, fmt.Errorf("canvas.grid: negative step %+v", s.Canvas.Grid))
	}
	seen := make(map[string]struct{}, len(s.Widgets))
	for i, w := range s.Widgets {
		name := fmt.Sprintf("widgets[%d]", i)
		if w.ID != "" {
			if _, dup := seen[w.ID]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", name, w.ID))
			}
			seen[w.ID] = struct{}{}
		}
		if w.W < 0 || w.H < 0 {
			errs = append(errs, fmt.Errorf("%s: negative size", name))
		}
		if w.MaxWidth > 0 && w.MinWidth > w.MaxWidth {
			errs = append(errs, fmt.Errorf("%s: min_width %g exceeds max_width %g", name, w.MinWidth, w.MaxWidth))
		}
		if w.MaxHeight > 0 && w.MinHeight > w.MaxHeight {
			errs = append(errs, fmt.Errorf("%s: min_height %g exceeds max_height %g", name, w.MinHeight, w.MaxHeight))
		}
		if w.Grid != nil && (w.Grid.X < 0 || w.Grid.Y < 0) {
			errs = append(errs, fmt.Errorf("%s: negative grid step", name))
		}
		if _, err := w.Props(s.Canvas); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Widget returns the definition with the given id.
func (s Scene) Widget(id string) (WidgetDef, bool) {
	for _, w := range s.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return WidgetDef{}, false
}
