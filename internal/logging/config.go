package logging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const envPrefix = "DRAGBOX"

const (
	EnvLogLevel      = envPrefix + "_LOG_LEVEL"
	EnvLogFormat     = envPrefix + "_LOG_FORMAT"
	EnvLogSink       = envPrefix + "_LOG_SINK"
	EnvLogFile       = envPrefix + "_LOG_FILE"
	EnvLogAddSource  = envPrefix + "_LOG_ADD_SOURCE"
	EnvLogMaxSizeMB  = envPrefix + "_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups = envPrefix + "_LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays = envPrefix + "_LOG_MAX_AGE_DAYS"
	EnvLogCompress   = envPrefix + "_LOG_COMPRESS"
)

// Rotation defaults for the file sink.
const (
	defaultMaxSizeMB  = 20
	defaultMaxBackups = 5
	defaultMaxAgeDays = 7
)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[Format]bool{FormatText: true, FormatJSON: true}
	validSinks   = map[Sink]bool{SinkStderr: true, SinkFile: true, SinkNone: true}
)

// Config is the logging block of a scene file. Nil fields fall back to the
// mode defaults.
type Config struct {
	Level     *string `yaml:"level,omitempty" toml:"level,omitempty"`
	Format    *string `yaml:"format,omitempty" toml:"format,omitempty"`
	Sink      *string `yaml:"sink,omitempty" toml:"sink,omitempty"`
	File      *string `yaml:"file,omitempty" toml:"file,omitempty"`
	AddSource *bool   `yaml:"add_source,omitempty" toml:"add_source,omitempty"`

	MaxSizeMB  *int  `yaml:"max_size_mb,omitempty" toml:"max_size_mb,omitempty"`
	MaxBackups *int  `yaml:"max_backups,omitempty" toml:"max_backups,omitempty"`
	MaxAgeDays *int  `yaml:"max_age_days,omitempty" toml:"max_age_days,omitempty"`
	Compress   *bool `yaml:"compress,omitempty" toml:"compress,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// DefaultConfig returns the settings for mode. Headless commands stay quiet
// on stderr; the canvas owns the terminal and logs JSON to a file.
func DefaultConfig(mode Mode) Config {
	cfg := Config{
		Level:      ptr("error"),
		Format:     ptr(string(FormatText)),
		Sink:       ptr(string(SinkStderr)),
		AddSource:  ptr(false),
		MaxSizeMB:  ptr(defaultMaxSizeMB),
		MaxBackups: ptr(defaultMaxBackups),
		MaxAgeDays: ptr(defaultMaxAgeDays),
		Compress:   ptr(true),
	}
	if mode == ModeTUI {
		cfg.Level = ptr("info")
		cfg.Format = ptr(string(FormatJSON))
		cfg.Sink = ptr(string(SinkFile))
	}
	return cfg
}

// envText, envInt and envFlag decode leniently: a blank or malformed value
// leaves the field unset instead of failing the whole lookup.
type envText struct {
	v  string
	ok bool
}

func (e *envText) Decode(raw string) error {
	e.v = strings.TrimSpace(raw)
	e.ok = e.v != ""
	return nil
}

type envInt struct {
	v  int
	ok bool
}

func (e *envInt) Decode(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	e.v, e.ok = n, err == nil
	return nil
}

type envFlag struct {
	v  bool
	ok bool
}

func (e *envFlag) Decode(raw string) error {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}
	switch raw {
	case "0", "false", "no", "off":
		e.v = false
	default:
		e.v = true
	}
	e.ok = true
	return nil
}

type envOverrides struct {
	Level      envText `envconfig:"LOG_LEVEL"`
	Format     envText `envconfig:"LOG_FORMAT"`
	Sink       envText `envconfig:"LOG_SINK"`
	File       envText `envconfig:"LOG_FILE"`
	AddSource  envFlag `envconfig:"LOG_ADD_SOURCE"`
	MaxSizeMB  envInt  `envconfig:"LOG_MAX_SIZE_MB"`
	MaxBackups envInt  `envconfig:"LOG_MAX_BACKUPS"`
	MaxAgeDays envInt  `envconfig:"LOG_MAX_AGE_DAYS"`
	Compress   envFlag `envconfig:"LOG_COMPRESS"`
}

func (e envText) apply(dst **string) {
	if e.ok {
		*dst = ptr(e.v)
	}
}

func (e envInt) apply(dst **int) {
	if e.ok {
		*dst = ptr(e.v)
	}
}

func (e envFlag) apply(dst **bool) {
	if e.ok {
		*dst = ptr(e.v)
	}
}

// WithEnv layers the DRAGBOX_LOG_* variables over c.
func (c Config) WithEnv() Config {
	var ov envOverrides
	if err := envconfig.Process(envPrefix, &ov); err != nil {
		return c
	}
	ov.Level.apply(&c.Level)
	ov.Format.apply(&c.Format)
	ov.Sink.apply(&c.Sink)
	ov.File.apply(&c.File)
	ov.AddSource.apply(&c.AddSource)
	ov.MaxSizeMB.apply(&c.MaxSizeMB)
	ov.MaxBackups.apply(&c.MaxBackups)
	ov.MaxAgeDays.apply(&c.MaxAgeDays)
	ov.Compress.apply(&c.Compress)
	return c
}

func lowerOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	if v := strings.ToLower(strings.TrimSpace(*s)); v != "" {
		return &v
	}
	return nil
}

func atLeastZero(n *int) *int {
	if n == nil || *n >= 0 {
		return n
	}
	return ptr(0)
}

// Normalize lowercases the enum fields, drops blanks, clamps negative
// rotation limits and validates the result.
func (c Config) Normalize() (Config, error) {
	c.Level = lowerOrNil(c.Level)
	c.Format = lowerOrNil(c.Format)
	c.Sink = lowerOrNil(c.Sink)
	if c.File != nil {
		if v := strings.TrimSpace(*c.File); v != "" {
			c.File = &v
		} else {
			c.File = nil
		}
	}
	c.MaxSizeMB = atLeastZero(c.MaxSizeMB)
	c.MaxBackups = atLeastZero(c.MaxBackups)
	c.MaxAgeDays = atLeastZero(c.MaxAgeDays)
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Level != nil && !validLevels[*c.Level] {
		return fmt.Errorf("logging.level: invalid %q", *c.Level)
	}
	if c.Format != nil && !validFormats[Format(*c.Format)] {
		return fmt.Errorf("logging.format: invalid %q", *c.Format)
	}
	if c.Sink != nil && !validSinks[Sink(*c.Sink)] {
		return fmt.Errorf("logging.sink: invalid %q", *c.Sink)
	}
	return nil
}
