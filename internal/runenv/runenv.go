// Package runenv names the process-wide environment switches and lets a
// command flip one for the duration of a run.
package runenv

import (
	"fmt"
	"os"
	"strings"
)

const (
	ConfigDirEnv   = "DRAGBOX_CONFIG_DIR"
	StateDirEnv    = "DRAGBOX_STATE_DIR"
	FreshConfigEnv = "DRAGBOX_FRESH_CONFIG"
)

func lookup(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

// Enabled treats any value except blank, 0, false, no and off as on.
func Enabled(name string) bool {
	switch strings.ToLower(lookup(name)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// FreshConfigEnabled reports whether the embedded default scene should be
// used instead of the one on disk.
func FreshConfigEnabled() bool { return Enabled(FreshConfigEnv) }

func ConfigDir() string { return lookup(ConfigDirEnv) }

func StateDir() string { return lookup(StateDirEnv) }

// Override sets name to value and returns a func that puts back whatever
// was there before, including absence.
func Override(name, value string) (func(), error) {
	prev, had := os.LookupEnv(name)
	restore := func() {
		if had {
			_ = os.Setenv(name, prev)
			return
		}
		_ = os.Unsetenv(name)
	}
	if err := os.Setenv(name, value); err != nil {
		restore()
		return nil, fmt.Errorf("set %s: %w", name, err)
	}
	return restore, nil
}
