package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
)

// Runner executes the CLI using the command description and registry.
type Runner struct {
	doc  *cmdspec.Spec
	deps Dependencies
	app  *cli.Command
}

// NewRunner builds the CLI runner.
func NewRunner(doc *cmdspec.Spec, deps Dependencies, reg *Registry) (*Runner, error) {
	app, err := BuildApp(doc, deps, reg)
	if err != nil {
		return nil, err
	}
	return &Runner{doc: doc, deps: deps, app: app}, nil
}

// Run executes the CLI with the given arguments.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if r == nil || r.app == nil {
		return fmt.Errorf("runner is not initialized")
	}
	return r.app.Run(ctx, applyShorthand(r.doc, args))
}

// applyShorthand expands a bare invocation into the default command and
// "dragbox FILE" into "dragbox --config FILE canvas".
func applyShorthand(doc *cmdspec.Spec, args []string) []string {
	if doc == nil || len(args) == 0 {
		return args
	}
	defaultCmd := strings.TrimSpace(doc.App.DefaultCommand)
	if len(args) == 1 && defaultCmd != "" {
		return []string{args[0], defaultCmd}
	}
	if !doc.App.AllowSceneShorthand || defaultCmd == "" {
		return args
	}
	if len(args) == 2 && !strings.HasPrefix(args[1], "-") && !doc.IsTopLevel(args[1]) {
		return []string{args[0], "--config", args[1], defaultCmd}
	}
	return args
}
