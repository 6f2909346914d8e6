package canvas

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/runenv"
	"github.com/regenrek/dragbox/internal/tui/app"
)

type captured struct {
	opts    app.Options
	watched bool
}

func stub(t *testing.T, appErr error) *captured {
	t.Helper()
	got := &captured{}
	prevRun, prevWatch := runAppFn, watchFn
	runAppFn = func(ctx context.Context, opts app.Options) error {
		got.opts = opts
		return appErr
	}
	watchFn = func(ctx context.Context, loader *config.Loader, debounce time.Duration) (<-chan config.Update, error) {
		got.watched = true
		return make(chan config.Update), nil
	}
	t.Cleanup(func() {
		runAppFn = prevRun
		watchFn = prevWatch
	})
	return got
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := &cli.Command{
		Name: "canvas",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "no-watch"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runCanvas(root.CommandContext{Context: ctx, Cmd: c})
		},
	}
	return cmd.Run(context.Background(), append([]string{"canvas"}, args...))
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(runenv.ConfigDirEnv, dir)
	t.Setenv(runenv.FreshConfigEnv, "")
	t.Setenv("DRAGBOX_CONFIG", "")
	// Empty numeric overrides fail to parse, so they are unset instead.
	for _, key := range []string{"DRAGBOX_GRID_X", "DRAGBOX_GRID_Y", "DRAGBOX_CONTAIN"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	return dir
}

func TestCanvasWritesDefaultSceneAndWatches(t *testing.T) {
	dir := isolate(t)
	got := stub(t, nil)
	if err := run(t); err != nil {
		t.Fatalf("runCanvas: %v", err)
	}
	path := filepath.Join(dir, "scene.yml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default scene not written: %v", err)
	}
	if got.opts.Path != path || !got.watched || got.opts.Updates == nil {
		t.Fatalf("opts=%+v watched=%v", got.opts, got.watched)
	}
	if len(got.opts.Scene.Widgets) != len(config.Default().Widgets) {
		t.Fatalf("widgets=%d", len(got.opts.Scene.Widgets))
	}
}

func TestCanvasLoadsConfigFlagAndEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("DRAGBOX_GRID_X", "3")
	got := stub(t, nil)
	path := filepath.Join(dir, "desk.yml")
	if err := os.WriteFile(path, []byte("widgets:\n  - { id: a, x: 0, y: 0, w: 6, h: 3 }\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := run(t, "--config", path, "--no-watch"); err != nil {
		t.Fatalf("runCanvas: %v", err)
	}
	if got.watched || got.opts.Updates != nil {
		t.Fatalf("--no-watch should skip the watcher")
	}
	if len(got.opts.Scene.Widgets) != 1 || got.opts.Scene.Widgets[0].ID != "a" {
		t.Fatalf("scene=%+v", got.opts.Scene)
	}
	if got.opts.Scene.Canvas.Grid.X != 3 {
		t.Fatalf("grid=%+v want env override", got.opts.Scene.Canvas.Grid)
	}
}

func TestCanvasFreshConfigDoesNotTouchDisk(t *testing.T) {
	dir := isolate(t)
	t.Setenv(runenv.FreshConfigEnv, "1")
	got := stub(t, nil)
	if err := run(t); err != nil {
		t.Fatalf("runCanvas: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "scene.yml")); !os.IsNotExist(err) {
		t.Fatalf("fresh config should not write a scene: %v", err)
	}
	if got.opts.Path != "" || got.watched {
		t.Fatalf("fresh config opts=%+v watched=%v", got.opts, got.watched)
	}
}

func TestCanvasReportsErrors(t *testing.T) {
	dir := isolate(t)
	boom := errors.New("boom")
	stub(t, boom)
	if err := run(t); !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("widgets: nope\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := run(t, "--config", bad); err == nil {
		t.Fatalf("expected load error")
	}
}
