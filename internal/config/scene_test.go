package config

import (
	"strings"
	"testing"

	"github.com/regenrek/dragbox/internal/rect"
)

func TestWidgetDefPropsInheritsCanvas(t *testing.T) {
	off := false
	canvas := Canvas{Contain: &off, Grid: rect.Grid{X: 2, Y: 3}}
	props, err := WidgetDef{X: 4, Y: 6, W: 10, H: 5, Axis: "y"}.Props(canvas)
	if err != nil {
		t.Fatalf("Props: %v", err)
	}
	if props.Parent || props.Grid != (rect.Grid{X: 2, Y: 3}) || props.Axis != rect.AxisY {
		t.Fatalf("props=%+v", props)
	}
	if !props.Draggable || !props.Resizable {
		t.Fatalf("draggable and resizable should default on")
	}
}

func TestWidgetDefPropsOverrides(t *testing.T) {
	on := true
	no := false
	def := WidgetDef{
		W: 10, H: 5,
		Grid:       &rect.Grid{X: 5, Y: 5},
		Contain:    &on,
		Resizable:  &no,
		Handles:    []string{"BR", "tl"},
		DragHandle: "title",
		Z:          4,
	}
	props, err := def.Props(Canvas{})
	if err != nil {
		t.Fatalf("Props: %v", err)
	}
	if !props.Parent || props.Resizable || props.Grid.X != 5 || props.Z != 4 {
		t.Fatalf("props=%+v", props)
	}
	if len(props.Handles) != 2 || props.Handles[0] != rect.HandleBottomRight || props.Handles[1] != rect.HandleTopLeft {
		t.Fatalf("handles=%v", props.Handles)
	}
}

func TestApplyDefaultsFillsMissingFields(t *testing.T) {
	scene := Scene{Widgets: []WidgetDef{{ID: " a "}, {}}}
	scene.ApplyDefaults()
	if scene.Widgets[0].ID != "a" || scene.Widgets[0].Title != "a" {
		t.Fatalf("widget 0=%+v", scene.Widgets[0])
	}
	if scene.Widgets[1].ID == "" || scene.Widgets[1].Title != scene.Widgets[1].ID {
		t.Fatalf("widget 1=%+v", scene.Widgets[1])
	}
	if scene.Widgets[1].W != defaultWidgetW || scene.Widgets[1].H != defaultWidgetH {
		t.Fatalf("size=%gx%g", scene.Widgets[1].W, scene.Widgets[1].H)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	scene := Scene{Widgets: []WidgetDef{
		{ID: "a", W: 10, H: 10},
		{ID: "a", W: 10, H: 10, MinWidth: 20, MaxWidth: 15},
		{ID: "b", W: 10, H: 10, Axis: "z"},
		{ID: "c", W: 10, H: 10, Handles: []string{"mm"}},
	}}
	err := scene.Validate()
	if err == nil {
		t.Fatalf("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate id", "min_width", "unknown axis", "unknown handle"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error missing %q: %v", want, msg)
		}
	}
}

func TestValidateChecksLogging(t *testing.T) {
	level := "LOUD"
	var scene Scene
	scene.Logging.Level = &level
	if err := scene.Validate(); err == nil {
		t.Fatalf("expected logging error")
	}
	upper := "DEBUG"
	scene.Logging.Level = &upper
	if err := scene.Validate(); err != nil {
		t.Fatalf("levels are case-insensitive: %v", err)
	}
}

func TestCanvasContainedDefaultsOn(t *testing.T) {
	if !(Canvas{}).Contained() {
		t.Fatalf("containment should default on")
	}
}
