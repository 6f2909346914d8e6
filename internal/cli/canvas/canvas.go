// Package canvas wires the interactive canvas command.
package canvas

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/cli/scene"
	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/runenv"
	"github.com/regenrek/dragbox/internal/tui/app"
)

var (
	runAppFn = app.Run
	watchFn  = config.Watch
)

// Register registers canvas handler.
func Register(reg *root.Registry) {
	reg.Register("canvas", runCanvas)
}

func runCanvas(ctx root.CommandContext) error {
	parent := ctx.Context
	if parent == nil {
		parent = context.Background()
	}
	path, env, err := scene.ResolvePath(ctx)
	if err != nil {
		return err
	}
	fresh := runenv.FreshConfigEnabled()
	if !fresh {
		if err := config.EnsureDefault(path); err != nil {
			return fmt.Errorf("init scene: %w", err)
		}
	}
	loader := config.NewLoader(path)
	sc, _, err := loader.Load()
	if err != nil {
		return err
	}
	env.Apply(&sc)

	runCtx, cancel := context.WithCancel(parent)
	defer cancel()

	logger := slog.Default().With(slog.String("scene", path))
	opts := app.Options{Scene: sc, Path: path, Env: env, Logger: logger}
	if fresh {
		// The built-in scene must not replace the file on disk.
		opts.Path = ""
	}
	if !fresh && !ctx.Bool("no-watch") {
		updates, err := watchFn(runCtx, loader, config.DefaultDebounce)
		if err != nil {
			logger.Warn("canvas: scene watch disabled", slog.Any("err", err))
		} else {
			opts.Updates = updates
		}
	}
	return runAppFn(runCtx, opts)
}
