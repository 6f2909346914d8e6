// Package cmdspec holds the declarative description of the command line:
// every command, flag and positional argument, validated against an
// embedded JSON schema.
package cmdspec

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const (
	commandsFile = "commands.yaml"
	schemaFile   = "commands.schema.json"
)

//go:embed commands.yaml commands.schema.json
var embeddedFS embed.FS

// Spec is the canonical CLI command description.
type Spec struct {
	Version     int       `yaml:"version"`
	App         AppSpec   `yaml:"app"`
	GlobalFlags []Flag    `yaml:"global_flags"`
	Commands    []Command `yaml:"commands"`
}

// AppSpec configures the top-level CLI app.
type AppSpec struct {
	Name           string `yaml:"name"`
	Summary        string `yaml:"summary"`
	DefaultCommand string `yaml:"default_command"`
	// AllowSceneShorthand lets "dragbox scene.yml" open that scene.
	AllowSceneShorthand bool `yaml:"allow_scene_shorthand"`
}

// Flag describes a CLI flag.
type Flag struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	Type        string   `yaml:"type"`
	Required    bool     `yaml:"required"`
	Default     any      `yaml:"default"`
	Enum        []string `yaml:"enum"`
	Description string   `yaml:"description"`
	Env         string   `yaml:"env"`
	Hidden      bool     `yaml:"hidden"`
}

// Arg describes a positional argument.
type Arg struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required"`
	Variadic    bool   `yaml:"variadic"`
	Description string `yaml:"description"`
}

// JSONSpec declares JSON output capability.
type JSONSpec struct {
	Supported bool `yaml:"supported"`
}

// Command describes a CLI command and its subcommands.
type Command struct {
	Name        string    `yaml:"name"`
	ID          string    `yaml:"id"`
	Summary     string    `yaml:"summary"`
	Description string    `yaml:"description"`
	Aliases     []string  `yaml:"aliases"`
	Flags       []Flag    `yaml:"flags"`
	Args        []Arg     `yaml:"args"`
	JSON        *JSONSpec `yaml:"json"`
	Hidden      bool      `yaml:"hidden"`
	Subcommands []Command `yaml:"subcommands"`
}

// LoadDefault loads the embedded description and validates it.
func LoadDefault() (*Spec, error) {
	data, err := embeddedFS.ReadFile(commandsFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded commands: %w", err)
	}
	return Parse(data)
}

// Parse loads a description from YAML bytes and validates it against the
// embedded schema.
func Parse(data []byte) (*Spec, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	doc := &Spec{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse commands yaml: %w", err)
	}
	return doc, nil
}

// schema compiles the embedded JSON schema once per process.
var schema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := embeddedFS.ReadFile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema json: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaFile, doc); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return c.Compile(schemaFile)
})

// Validate checks the YAML description against the embedded JSON schema.
// The YAML tree is round-tripped through JSON so numbers and keys take the
// shapes the validator expects; non-string keys fail that step.
func Validate(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("commands are empty")
	}
	sch, err := schema()
	if err != nil {
		return err
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("parse commands yaml: %w", err)
	}
	asJSON, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("serialize commands: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return fmt.Errorf("parse commands json: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("commands schema validation: %w", err)
	}
	return nil
}

// AllCommands walks the tree depth first, parents before children.
func (s *Spec) AllCommands() []Command {
	if s == nil {
		return nil
	}
	var out []Command
	var walk func(cmds []Command)
	walk = func(cmds []Command) {
		for _, c := range cmds {
			out = append(out, c)
			walk(c.Subcommands)
		}
	}
	walk(s.Commands)
	return out
}

// FindByID returns the command with the matching ID.
func (s *Spec) FindByID(id string) *Command {
	id = strings.TrimSpace(id)
	if id == "" || s == nil {
		return nil
	}
	for _, cmd := range s.AllCommands() {
		if cmd.ID == id {
			found := cmd
			return &found
		}
	}
	return nil
}

// IsTopLevel reports whether value names a top-level command or alias,
// ignoring case.
func (s *Spec) IsTopLevel(value string) bool {
	value = strings.TrimSpace(value)
	if s == nil || value == "" {
		return false
	}
	for _, cmd := range s.Commands {
		names := append([]string{cmd.Name}, cmd.Aliases...)
		if slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, value) }) {
			return true
		}
	}
	return false
}
