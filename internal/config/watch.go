package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Update is one reload result delivered by Watch.
type Update struct {
	Scene Scene
	Err   error
}

// Watch reloads the loader's file whenever it changes on disk and delivers
// each changed scene. The directory is watched rather than the file so
// editors that save by rename keep working. The channel closes when ctx is
// done.
func Watch(ctx context.Context, loader *Loader, debounce time.Duration) (<-chan Update, error) {
	if loader == nil || loader.Path() == "" {
		return nil, errors.New("config: watch needs a scene path")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	target := filepath.Clean(loader.Path())
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(target), err)
	}
	out := make(chan Update, 1)
	go func() {
		defer close(out)
		defer func() { _ = fw.Close() }()
		runWatch(ctx, fw, target, debounce, func() {
			scene, changed, err := loader.Load()
			if err == nil && !changed {
				return
			}
			if err != nil {
				slog.Warn("config: reload failed", slog.String("path", target), slog.Any("err", err))
			} else {
				slog.Info("config: scene reloaded", slog.String("path", target), slog.Int("widgets", len(scene.Widgets)))
			}
			select {
			case out <- Update{Scene: scene, Err: err}:
			case <-ctx.Done():
			}
		})
	}()
	return out, nil
}

func runWatch(ctx context.Context, fw *fsnotify.Watcher, target string, debounce time.Duration, reload func()) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !relevant(ev, target) {
				continue
			}
			if !timer.Stop() && pending {
				select {
				case <-timer.C:
				default:
				}
			}
			pending = true
			timer.Reset(debounce)
		case <-timer.C:
			if pending {
				pending = false
				reload()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Debug("config: watch error", slog.Any("err", err))
		}
	}
}

func relevant(ev fsnotify.Event, target string) bool {
	if filepath.Clean(ev.Name) != target {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
