package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestThrottleDropsWithinInterval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	th := NewThrottle(logger, time.Second)
	clock := time.Unix(100, 0)
	th.now = func() time.Time { return clock }

	ctx := context.Background()
	th.Log(ctx, "w1", slog.LevelInfo, "dragging")
	th.Log(ctx, "w1", slog.LevelInfo, "dragging")
	th.Log(ctx, "w2", slog.LevelInfo, "dragging")
	clock = clock.Add(time.Second)
	th.Log(ctx, "w1", slog.LevelInfo, "dragging")

	if got := strings.Count(buf.String(), "msg=dragging"); got != 3 {
		t.Fatalf("records=%d want 3\n%s", got, buf.String())
	}
}

func TestThrottleResetAllowsImmediateRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	th := NewThrottle(logger, time.Hour)
	ctx := context.Background()
	th.Log(ctx, "k", slog.LevelInfo, "a")
	th.Reset("k")
	th.Log(ctx, "k", slog.LevelInfo, "b")
	if !strings.Contains(buf.String(), "msg=b") {
		t.Fatalf("expected second record, got %q", buf.String())
	}
}

func TestThrottlePrunesOldKeys(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	th := NewThrottle(logger, time.Millisecond)
	th.maxKeys = 3
	th.last["a"] = time.Unix(1, 0)
	th.last["b"] = time.Unix(2, 0)
	th.last["c"] = time.Unix(3, 0)
	th.last["d"] = time.Unix(4, 0)

	th.Log(context.Background(), "e", slog.LevelInfo, "msg")

	if len(th.last) > th.maxKeys {
		t.Fatalf("expected map size <= %d, got %d", th.maxKeys, len(th.last))
	}
	if _, ok := th.last["a"]; ok {
		t.Fatalf("expected oldest key pruned")
	}
}

func TestThrottleSkipsWhenDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))
	th := NewThrottle(logger, time.Minute)
	th.Log(context.Background(), "key", slog.LevelInfo, "msg")
	if len(th.last) != 0 {
		t.Fatalf("expected no entries when level disabled, got %d", len(th.last))
	}
}
