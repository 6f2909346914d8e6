package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/regenrek/dragbox/internal/appdirs"
	"github.com/regenrek/dragbox/internal/identity"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitOptions name the process in every record.
type InitOptions struct {
	App     string
	Version string
	Mode    Mode
}

func nopClose() error { return nil }

// Init installs the default slog logger and returns a func that flushes and
// closes the sink. Settings resolve as mode defaults, then cfg, then the
// environment.
func Init(_ context.Context, cfg Config, opts InitOptions) (func() error, error) {
	if opts.App == "" {
		opts.App = identity.AppSlug
	}
	if opts.Mode == 0 {
		opts.Mode = ModeCLI
	}
	resolved, err := mergeConfig(DefaultConfig(opts.Mode), cfg).WithEnv().Normalize()
	if err != nil {
		return nil, err
	}

	w, closeFn, err := openSink(resolved)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(resolved.Level),
		AddSource: or(resolved.AddSource, false),
	}
	var h slog.Handler = slog.NewTextHandler(w, handlerOpts)
	if Format(or(resolved.Format, string(FormatText))) == FormatJSON {
		h = slog.NewJSONHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(h).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
		slog.String("mode", opts.Mode.String()),
	))
	return closeFn, nil
}

// pick prefers the override when it is set.
func pick[T any](override, base *T) *T {
	if override != nil {
		return override
	}
	return base
}

// or dereferences v, falling back when it is nil.
func or[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func mergeConfig(base, override Config) Config {
	return Config{
		Level:      pick(override.Level, base.Level),
		Format:     pick(override.Format, base.Format),
		Sink:       pick(override.Sink, base.Sink),
		File:       pick(override.File, base.File),
		AddSource:  pick(override.AddSource, base.AddSource),
		MaxSizeMB:  pick(override.MaxSizeMB, base.MaxSizeMB),
		MaxBackups: pick(override.MaxBackups, base.MaxBackups),
		MaxAgeDays: pick(override.MaxAgeDays, base.MaxAgeDays),
		Compress:   pick(override.Compress, base.Compress),
	}
}

func parseLevel(value *string) slog.Level {
	name := or(value, "info")
	if name == "warning" {
		name = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func openSink(cfg Config) (io.Writer, func() error, error) {
	switch sink := Sink(or(cfg.Sink, string(SinkStderr))); sink {
	case SinkNone:
		return io.Discard, nopClose, nil
	case SinkStderr:
		return os.Stderr, nopClose, nil
	case SinkFile:
		rot, err := rotatingFile(cfg)
		if err != nil {
			return nil, nil, err
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", sink)
	}
}

// rotatingFile opens the log file named by cfg.File, or dragbox.log under
// the state dir. An explicit path may live in a shared directory, so only
// the default location is forced to private permissions.
func rotatingFile(cfg Config) (*lumberjack.Logger, error) {
	path := or(cfg.File, "")
	explicit := path != ""
	if !explicit {
		dir, err := appdirs.StateDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, identity.LogFile)
	}
	if err := appdirs.EnsurePrivate(filepath.Dir(path), explicit); err != nil {
		return nil, fmt.Errorf("logging: log dir: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    or(cfg.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: or(cfg.MaxBackups, defaultMaxBackups),
		MaxAge:     or(cfg.MaxAgeDays, defaultMaxAgeDays),
		Compress:   or(cfg.Compress, true),
	}, nil
}
