// Package scene wires the scene file commands.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/config"
)

// Register registers scene handlers.
func Register(reg *root.Registry) {
	reg.Register("scene.init", runInit)
	reg.Register("scene.check", runCheck)
	reg.Register("scene.path", runPath)
}

// ResolvePath returns the scene path from --config, DRAGBOX_CONFIG or the
// user config dir.
func ResolvePath(ctx root.CommandContext) (string, config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return "", config.Env{}, fmt.Errorf("read environment: %w", err)
	}
	path, err := config.ResolvePath(ctx.String("config"), env)
	if err != nil {
		return "", config.Env{}, err
	}
	return path, env, nil
}

func runInit(ctx root.CommandContext) error {
	path, _, err := ResolvePath(ctx)
	if err != nil {
		return err
	}
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if !ctx.Bool("force") {
			return fmt.Errorf("scene already exists: %s (use --force to overwrite)", path)
		}
		if !ctx.Bool("yes") {
			ok, err := root.PromptConfirm(ctx.Stdin, ctx.ErrOut, fmt.Sprintf("Overwrite %s?", path))
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("scene init aborted")
			}
		}
	case !os.IsNotExist(statErr):
		return fmt.Errorf("stat %s: %w", path, statErr)
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	slog.Info("scene written", slog.String("path", path))
	_, err = fmt.Fprintf(ctx.Out, "Created %s\n", path)
	return err
}

func runCheck(ctx root.CommandContext) error {
	path := ctx.Arg("file")
	if path == "" {
		resolved, _, err := ResolvePath(ctx)
		if err != nil {
			return err
		}
		path = resolved
	}
	scene, err := config.Load(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.Out, "%s: ok (%d widgets)\n", path, len(scene.Widgets))
	return err
}

func runPath(ctx root.CommandContext) error {
	path, _, err := ResolvePath(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out, path)
	return err
}
