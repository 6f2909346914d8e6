package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/regenrek/dragbox/internal/appdirs"
	"github.com/regenrek/dragbox/internal/identity"
	"github.com/regenrek/dragbox/internal/runenv"
	"github.com/regenrek/dragbox/internal/userpath"
)

//go:embed default_scene.yml
var defaultScene []byte

// DefaultSceneBytes returns the scene written on first run.
func DefaultSceneBytes() []byte {
	return append([]byte(nil), defaultScene...)
}

// Default returns the embedded scene, decoded and defaulted.
func Default() Scene {
	scene, err := Decode(defaultScene, identity.SceneFileYML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded scene: %v", err))
	}
	return scene
}

// Decode parses data as TOML when name ends in .toml and as YAML otherwise,
// then applies defaults and validates.
func Decode(data []byte, name string) (Scene, error) {
	var scene Scene
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, &scene); err != nil {
			return Scene{}, fmt.Errorf("config: parse %s: %w", name, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&scene); err != nil && !errors.Is(err, io.EOF) {
			return Scene{}, fmt.Errorf("config: parse %s: %w", name, err)
		}
	}
	scene.ApplyDefaults()
	if err := scene.Validate(); err != nil {
		return Scene{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return scene, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(data, path)
}

// DefaultPath returns the first scene file present in the config dir, or the
// YAML path when none exists yet.
func DefaultPath() (string, error) {
	dir, err := appdirs.ConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range identity.SceneFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return filepath.Join(dir, identity.SceneFileYML), nil
}

// ResolvePath picks the scene path from the flag, then DRAGBOX_CONFIG, then
// the config dir.
func ResolvePath(flag string, env Env) (string, error) {
	if path := strings.TrimSpace(flag); path != "" {
		return userpath.ExpandUser(path), nil
	}
	if path := strings.TrimSpace(env.Config); path != "" {
		return userpath.ExpandUser(path), nil
	}
	return DefaultPath()
}

// EnsureDefault writes the embedded scene to path when no file exists there.
func EnsureDefault(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("config: scene path is required")
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	return WriteDefault(path)
}

// WriteDefault writes the embedded scene to path, replacing any file there.
func WriteDefault(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("config: scene path is required")
	}
	return writeFileAtomic(path, defaultScene, 0o600)
}

// Loader caches the scene and rereads the file only when it changed.
type Loader struct {
	path     string
	loaded   bool
	lastRead fileState
	cached   Scene
}

type fileState struct {
	modTime time.Time
	size    int64
}

// NewLoader creates a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{path: strings.TrimSpace(path)}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Load returns the cached scene, rereading the file when its size or mtime
// changed. Fresh-config mode and a missing file both yield the embedded
// scene. The boolean reports whether the scene was reread.
func (l *Loader) Load() (Scene, bool, error) {
	if l == nil {
		return Scene{}, false, errors.New("config: nil loader")
	}
	if runenv.FreshConfigEnabled() || l.path == "" {
		return l.useDefault()
	}
	info, err := os.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return l.useDefault()
		}
		return Scene{}, false, fmt.Errorf("config: stat %s: %w", l.path, err)
	}
	state := fileState{modTime: info.ModTime(), size: info.Size()}
	if state == l.lastRead {
		return l.cached, false, nil
	}
	scene, err := Load(l.path)
	if err != nil {
		return Scene{}, false, err
	}
	l.cached = scene
	l.lastRead = state
	l.loaded = true
	return scene, true, nil
}

func (l *Loader) useDefault() (Scene, bool, error) {
	changed := !l.loaded || l.lastRead != (fileState{})
	l.cached = Default()
	l.lastRead = fileState{}
	l.loaded = true
	return l.cached, changed, nil
}
