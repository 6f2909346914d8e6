package logging

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

const defaultThrottleKeys = 1024

// Throttle emits at most one record per key per interval. Pointer motion
// produces far more notifications than are worth keeping, so callbacks that
// fire per move log through a Throttle.
type Throttle struct {
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	last    map[string]time.Time
	maxKeys int
}

// NewThrottle returns a Throttle writing to logger, or to the default logger
// when nil.
func NewThrottle(logger *slog.Logger, interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		logger:   logger,
		now:      time.Now,
		last:     map[string]time.Time{},
		maxKeys:  defaultThrottleKeys,
	}
}

// Log emits the record unless key was logged less than interval ago.
func (t *Throttle) Log(ctx context.Context, key string, level slog.Level, msg string, attrs ...slog.Attr) {
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	if !logger.Enabled(ctx, level) {
		return
	}
	if key == "" || t.interval <= 0 {
		logger.LogAttrs(ctx, level, msg, attrs...)
		return
	}
	now := t.now()
	t.mu.Lock()
	last := t.last[key]
	if !last.IsZero() && now.Sub(last) < t.interval {
		t.mu.Unlock()
		return
	}
	t.last[key] = now
	if len(t.last) > t.maxKeys {
		t.prune()
	}
	t.mu.Unlock()
	logger.LogAttrs(ctx, level, msg, attrs...)
}

// Reset forgets key so its next record is emitted immediately.
func (t *Throttle) Reset(key string) {
	t.mu.Lock()
	delete(t.last, key)
	t.mu.Unlock()
}

func (t *Throttle) prune() {
	if len(t.last) <= t.maxKeys {
		return
	}
	type entry struct {
		key string
		t   time.Time
	}
	entries := make([]entry, 0, len(t.last))
	for key, ts := range t.last {
		entries = append(entries, entry{key: key, t: ts})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].t.Before(entries[j].t)
	})
	remove := len(entries) - t.maxKeys
	for i := 0; i < remove; i++ {
		delete(t.last, entries[i].key)
	}
}
