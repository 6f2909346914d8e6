//go:build !windows

package appdirs

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"syscall"
)

var warnLoose sync.Once

// EnsurePrivate creates dir with mode 0700. An existing dir open to group
// or others is tightened when the current user owns it and it was not
// picked by the user; otherwise a single warning is logged.
func EnsurePrivate(dir string, isOverride bool) error {
	if skipDir(dir) {
		return nil
	}
	info, err := statOrCreate(dir)
	if err != nil || info == nil {
		return err
	}
	perm := info.Mode().Perm()
	if perm&0o077 == 0 {
		return nil
	}
	if !isOverride && ownerUID(info) == os.Getuid() {
		if err := os.Chmod(dir, 0o700); err != nil {
			return fmt.Errorf("chmod dir: %w", err)
		}
		return nil
	}
	warnLoose.Do(func() {
		slog.Warn("appdirs: leaving permissive dir as is", "path", dir, "mode", perm.String(), "override", isOverride)
	})
	return nil
}

// ownerUID returns -1 when the platform gives no owner.
func ownerUID(info os.FileInfo) int {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return int(st.Uid)
	}
	return -1
}
