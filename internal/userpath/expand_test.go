package userpath

import (
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]string{
		"":                 "",
		"~":                home,
		"~/":               home,
		"~/scene.yml":      filepath.Join(home, "scene.yml"),
		"~/a/b/scene.toml": filepath.Join(home, "a", "b", "scene.toml"),
		"/etc/scene.yml":   "/etc/scene.yml",
		"desk.yml":         "desk.yml",
		"/home/~user":      "/home/~user",
		"~user/scene.yml":  "~user/scene.yml",
	}
	for in, want := range cases {
		if got := ExpandUser(in); got != want {
			t.Fatalf("ExpandUser(%q)=%q want %q", in, got, want)
		}
	}
}

func TestShortenUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]string{
		"":                               "",
		home:                             "~",
		filepath.Join(home, "scene.yml"): filepath.Join("~", "scene.yml"),
		home + "x/scene.yml":             home + "x/scene.yml",
		"/etc/scene.yml":                 "/etc/scene.yml",
	}
	for in, want := range cases {
		if got := ShortenUser(in); got != want {
			t.Fatalf("ShortenUser(%q)=%q want %q", in, got, want)
		}
	}
}

func TestExpandThenShortenRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if got := ShortenUser(ExpandUser("~/desk/scene.yml")); got != filepath.Join("~", "desk", "scene.yml") {
		t.Fatalf("round trip=%q", got)
	}
}
