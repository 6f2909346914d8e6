package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/app"
	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/identity"
	"github.com/regenrek/dragbox/internal/logging"
)

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	appName := identity.CLIName
	mode := logging.ModeFromArgs(args)
	logCfg, err := loggingConfig(args)
	if err != nil {
		// A broken scene must not lock the user out of "scene init --force".
		fmt.Fprintf(os.Stderr, "%s: scene logging settings ignored: %v\n", appName, err)
	}
	closeLogger, err := logging.Init(context.Background(), logCfg, logging.InitOptions{
		App:     identity.AppSlug,
		Version: version,
		Mode:    mode,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	deps := root.DefaultDependencies(version)
	deps.AppName = appName
	runner, err := app.NewRunner(deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if err := runner.Run(context.Background(), args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// loggingConfig reads the logging block of the scene the command will use,
// before the CLI parses flags, and applies --log-level on top.
func loggingConfig(args []string) (logging.Config, error) {
	configFlag, level := scanFlags(args)
	var cfg logging.Config
	var loadErr error
	env, err := config.LoadEnv()
	if err != nil {
		loadErr = err
	} else if path, err := config.ResolvePath(configFlag, env); err != nil {
		loadErr = err
	} else if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			scene, _, err := config.NewLoader(path).Load()
			if err != nil {
				loadErr = err
			} else {
				cfg = scene.Logging
			}
		}
	}
	if level != "" {
		cfg.Level = &level
	}
	return cfg, loadErr
}

// scanFlags finds --config and --log-level in raw arguments, in both the
// "--flag value" and "--flag=value" forms, and the scene shorthand.
func scanFlags(args []string) (configPath, level string) {
	positional := 0
	for i := 1; i < len(args); i++ {
		arg := strings.TrimSpace(args[i])
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "--config", "-c", "--log-level":
			if !hasValue && i+1 < len(args) {
				i++
				value = args[i]
			}
			if name == "--log-level" {
				level = strings.TrimSpace(value)
			} else {
				configPath = strings.TrimSpace(value)
			}
			continue
		}
		if strings.HasPrefix(arg, "-") || arg == "" {
			continue
		}
		positional++
		if positional == 1 && len(args) == 2 && configPath == "" && looksLikeScene(arg) {
			configPath = arg
		}
	}
	return configPath, level
}

func looksLikeScene(arg string) bool {
	lower := strings.ToLower(arg)
	return strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".toml")
}
