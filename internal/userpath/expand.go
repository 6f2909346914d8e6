// Package userpath converts between "~/..." scene paths and absolute ones.
package userpath

import (
	"os"
	"path/filepath"
	"strings"
)

const sep = string(filepath.Separator)

func home() (string, bool) {
	dir, err := os.UserHomeDir()
	return dir, err == nil && dir != ""
}

// ExpandUser resolves "~" and "~/rest" against the current user's home.
// "~bob" forms and paths without a leading tilde come back unchanged.
func ExpandUser(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return path
	}
	dir, ok := home()
	if !ok {
		return path
	}
	return filepath.Join(dir, rest)
}

// ShortenUser is the display inverse of ExpandUser. Only whole path
// components of the home dir are replaced.
func ShortenUser(path string) string {
	dir, ok := home()
	switch {
	case path == "" || !ok:
		return path
	case path == dir:
		return "~"
	}
	if rest, found := strings.CutPrefix(path, dir+sep); found {
		return "~" + sep + rest
	}
	return path
}
