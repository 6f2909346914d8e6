// Package simulate replays scripted pointer gestures against one widget
// without a terminal and records every notification it emits.
package simulate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/rect"
)

// Script is a replay file.
type Script struct {
	Parent rect.Size        `yaml:"parent"`
	Widget config.WidgetDef `yaml:"widget"`
	Steps  []Step           `yaml:"steps"`
}

// Point is a pointer position in parent coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step is one scripted action. Exactly one of Down, Handle, Move, Up,
// Outside or Set is used per step.
type Step struct {
	// Down presses on the widget body.
	Down *Point `yaml:"down,omitempty"`
	// Handle presses on a resize grip at At.
	Handle string `yaml:"handle,omitempty"`
	At     *Point `yaml:"at,omitempty"`
	Move   *Point `yaml:"move,omitempty"`
	Up     *Point `yaml:"up,omitempty"`
	// Outside presses on the page outside the widget.
	Outside *Point `yaml:"outside,omitempty"`
	Set     *Set   `yaml:"set,omitempty"`

	// Path names the elements under a Down press, innermost first.
	Path  []string `yaml:"path,omitempty"`
	Touch bool     `yaml:"touch,omitempty"`
}

// Set is an external prop update.
type Set struct {
	X               *float64   `yaml:"x,omitempty"`
	Y               *float64   `yaml:"y,omitempty"`
	Width           *float64   `yaml:"width,omitempty"`
	Height          *float64   `yaml:"height,omitempty"`
	MinWidth        *float64   `yaml:"min_width,omitempty"`
	MinHeight       *float64   `yaml:"min_height,omitempty"`
	MaxWidth        *float64   `yaml:"max_width,omitempty"`
	MaxHeight       *float64   `yaml:"max_height,omitempty"`
	LockAspectRatio *bool      `yaml:"lock_aspect_ratio,omitempty"`
	Active          *bool      `yaml:"active,omitempty"`
	Z               *int       `yaml:"z,omitempty"`
	Parent          *rect.Size `yaml:"parent,omitempty"`
}

func (s Step) kind() (string, error) {
	var kinds []string
	if s.Down != nil {
		kinds = append(kinds, "down")
	}
	if s.Handle != "" {
		kinds = append(kinds, "handle")
	}
	if s.Move != nil {
		kinds = append(kinds, "move")
	}
	if s.Up != nil {
		kinds = append(kinds, "up")
	}
	if s.Outside != nil {
		kinds = append(kinds, "outside")
	}
	if s.Set != nil {
		kinds = append(kinds, "set")
	}
	switch len(kinds) {
	case 0:
		return "", errors.New("empty step")
	case 1:
		if kinds[0] == "handle" && s.At == nil {
			return "", errors.New("handle step needs at")
		}
		return kinds[0], nil
	default:
		return "", fmt.Errorf("step mixes %v", kinds)
	}
}

// Parse decodes and checks a script.
func Parse(data []byte) (Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, fmt.Errorf("simulate: parse script: %w", err)
	}
	if script.Parent.W <= 0 || script.Parent.H <= 0 {
		return Script{}, fmt.Errorf("simulate: parent size must be positive, got %gx%g", script.Parent.W, script.Parent.H)
	}
	for i, step := range script.Steps {
		if _, err := step.kind(); err != nil {
			return Script{}, fmt.Errorf("simulate: steps[%d]: %w", i, err)
		}
		if step.Handle != "" {
			if _, err := rect.ParseHandle(step.Handle); err != nil {
				return Script{}, fmt.Errorf("simulate: steps[%d]: %w", i, err)
			}
		}
	}
	scene := config.Scene{Widgets: []config.WidgetDef{script.Widget}}
	scene.ApplyDefaults()
	if err := scene.Validate(); err != nil {
		return Script{}, fmt.Errorf("simulate: widget: %w", err)
	}
	script.Widget = scene.Widgets[0]
	return script, nil
}

// Load reads and parses the script at path.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("simulate: read %s: %w", path, err)
	}
	return Parse(data)
}
