package appdirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/regenrek/dragbox/internal/identity"
	"github.com/regenrek/dragbox/internal/runenv"
)

// ConfigDir returns the directory scene files are read from. It is not
// created.
func ConfigDir() (string, error) {
	if override := runenv.ConfigDir(); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// StateDir returns the private directory used for logs, creating it when
// missing.
func StateDir() (string, error) {
	if override := runenv.StateDir(); override != "" {
		return override, EnsurePrivate(override, true)
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve state dir: %w", err)
	}
	dir = filepath.Join(dir, identity.AppSlug)
	return dir, EnsurePrivate(dir, false)
}

// statOrCreate returns the info of an existing dir. A missing dir is created
// with mode 0700 and reported with a nil info.
func statOrCreate(dir string) (os.FileInfo, error) {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("stat dir: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("%q is not a directory", dir)
	}
	return info, nil
}

func skipDir(dir string) bool { return dir == "" || dir == "." }
