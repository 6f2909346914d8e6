package config

import (
	"testing"

	"github.com/regenrek/dragbox/internal/rect"
)

func TestLoadEnvAppliesOverrides(t *testing.T) {
	t.Setenv("DRAGBOX_CONFIG", "/tmp/scene.toml")
	t.Setenv("DRAGBOX_GRID_X", "4")
	t.Setenv("DRAGBOX_CONTAIN", "false")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if env.Config != "/tmp/scene.toml" || env.GridX != 4 || env.Contain == nil || *env.Contain {
		t.Fatalf("env=%+v", env)
	}

	scene := Scene{Canvas: Canvas{Grid: rect.Grid{X: 1, Y: 3}}}
	env.Apply(&scene)
	if scene.Canvas.Grid != (rect.Grid{X: 4, Y: 3}) || scene.Canvas.Contained() {
		t.Fatalf("canvas=%+v contained=%v", scene.Canvas.Grid, scene.Canvas.Contained())
	}
	if grid, ok := env.GridOverride(); !ok || grid.X != 4 {
		t.Fatalf("override=%+v %v", grid, ok)
	}
}

func TestLoadEnvRejectsBadNumber(t *testing.T) {
	t.Setenv("DRAGBOX_GRID_X", "wide")
	if _, err := LoadEnv(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEmptyEnvChangesNothing(t *testing.T) {
	scene := Default()
	before := scene.Canvas
	Env{}.Apply(&scene)
	if scene.Canvas.Grid != before.Grid || scene.Canvas.Contained() != before.Contained() {
		t.Fatalf("canvas changed: %+v", scene.Canvas)
	}
	if _, ok := (Env{}).GridOverride(); ok {
		t.Fatalf("no override expected")
	}
}
