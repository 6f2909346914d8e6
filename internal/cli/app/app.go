package app

import (
	"github.com/regenrek/dragbox/internal/cli/cmdspec"
	"github.com/regenrek/dragbox/internal/cli/root"
)

// NewRunner builds the CLI runner from the embedded command description.
func NewRunner(deps root.Dependencies) (*root.Runner, error) {
	doc, err := cmdspec.LoadDefault()
	if err != nil {
		return nil, err
	}
	reg := root.NewRegistry()
	registerAll(reg)
	return root.NewRunner(doc, deps, reg)
}
