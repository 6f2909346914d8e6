package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/regenrek/dragbox/internal/rect"
)

const envPrefix = "DRAGBOX"

// Env holds the DRAGBOX_* overrides that apply on top of any scene file.
type Env struct {
	Config  string  `split_words:"true"`
	GridX   float64 `split_words:"true"`
	GridY   float64 `split_words:"true"`
	Contain *bool   `split_words:"true"`
}

// LoadEnv reads the overrides from the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Env{}, err
	}
	return env, nil
}

// Apply overrides the canvas settings of scene.
func (e Env) Apply(scene *Scene) {
	if scene == nil {
		return
	}
	if e.GridX > 0 || e.GridY > 0 {
		grid := scene.Canvas.Grid
		if e.GridX > 0 {
			grid.X = e.GridX
		}
		if e.GridY > 0 {
			grid.Y = e.GridY
		}
		scene.Canvas.Grid = grid
	}
	if e.Contain != nil {
		contain := *e.Contain
		scene.Canvas.Contain = &contain
	}
}

// GridOverride reports the grid forced by the environment, if any.
func (e Env) GridOverride() (rect.Grid, bool) {
	if e.GridX <= 0 && e.GridY <= 0 {
		return rect.Grid{}, false
	}
	return rect.Grid{X: e.GridX, Y: e.GridY}, true
}
