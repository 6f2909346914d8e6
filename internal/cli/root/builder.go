package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
)

// appBuilder turns a command description into a urfave/cli tree whose
// leaves dispatch to registered handlers.
type appBuilder struct {
	doc  *cmdspec.Spec
	deps Dependencies
	reg  *Registry

	// undoEnv reverts the run-scoped environment set up in before.
	undoEnv func()
}

// BuildApp constructs a CLI app from the command description and registry.
func BuildApp(doc *cmdspec.Spec, deps Dependencies, reg *Registry) (*cli.Command, error) {
	switch {
	case doc == nil:
		return nil, errors.New("command description is nil")
	case reg == nil:
		return nil, errors.New("registry is nil")
	}
	if err := reg.EnsureHandlers(doc); err != nil {
		return nil, err
	}
	b := &appBuilder{doc: doc, deps: deps.quietDefaults(), reg: reg}

	flags, err := buildFlags(doc.GlobalFlags)
	if err != nil {
		return nil, err
	}
	app := &cli.Command{
		Name:        doc.App.Name,
		Usage:       doc.App.Summary,
		Description: doc.App.Summary,
		Flags:       flags,
		Writer:      b.deps.Stdout,
		ErrWriter:   b.deps.Stderr,
		Before:      b.before,
		After:       b.after,
		Action:      b.runDefault,
	}
	for _, spec := range doc.Commands {
		cmd, err := b.command(spec)
		if err != nil {
			return nil, err
		}
		app.Commands = append(app.Commands, cmd)
	}
	return app, nil
}

// before answers --version and applies run-scoped flags to the environment.
func (b *appBuilder) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("version") {
		fmt.Fprintf(b.deps.Stdout, "%s %s\n", b.doc.App.Name, b.deps.Version)
		return ctx, cli.Exit("", 0)
	}
	undo, err := applyRunEnvFromFlags(cmd)
	if err != nil {
		return ctx, err
	}
	b.undoEnv = undo
	return ctx, nil
}

func (b *appBuilder) after(context.Context, *cli.Command) error {
	if b.undoEnv != nil {
		b.undoEnv()
		b.undoEnv = nil
	}
	return nil
}

func (b *appBuilder) command(spec cmdspec.Command) (*cli.Command, error) {
	flags, err := buildFlags(spec.Flags)
	if err != nil {
		return nil, fmt.Errorf("flags for %s: %w", spec.ID, err)
	}
	cmd := &cli.Command{
		Name:        spec.Name,
		Aliases:     spec.Aliases,
		Usage:       spec.Summary,
		Description: spec.Description,
		Hidden:      spec.Hidden,
		Flags:       flags,
		ArgsUsage:   argsUsage(spec.Args),
		Arguments:   buildArguments(spec.Args),
	}
	for _, child := range spec.Subcommands {
		sub, err := b.command(child)
		if err != nil {
			return nil, err
		}
		cmd.Commands = append(cmd.Commands, sub)
	}
	if handler, ok := b.reg.HandlerFor(spec.ID); ok {
		cmd.Action = func(ctx context.Context, c *cli.Command) error {
			return runHandler(ctx, c, spec, b.deps, handler)
		}
	}
	return cmd, nil
}

// runDefault runs the default command against the root command, so global
// flags such as --config still apply to it.
func (b *appBuilder) runDefault(ctx context.Context, rootCmd *cli.Command) error {
	id := strings.TrimSpace(b.doc.App.DefaultCommand)
	if id == "" {
		return nil
	}
	spec := b.doc.FindByID(id)
	if spec == nil {
		return fmt.Errorf("default command %q not found", id)
	}
	handler, ok := b.reg.HandlerFor(spec.ID)
	if !ok {
		return fmt.Errorf("%w for default command %s", ErrMissingHandler, spec.ID)
	}
	return runHandler(ctx, rootCmd, *spec, b.deps, handler)
}

func runHandler(ctx context.Context, c *cli.Command, spec cmdspec.Command, deps Dependencies, handler Handler) error {
	if handler == nil {
		return nil
	}
	if err := validateArgs(spec, c); err != nil {
		return err
	}
	var args []string
	if c != nil && c.Args() != nil {
		args = c.Args().Slice()
	}
	return handler(CommandContext{
		Context: ctx,
		Args:    args,
		Spec:    spec,
		Cmd:     c,
		Deps:    deps,
		Out:     deps.Stdout,
		ErrOut:  deps.Stderr,
		Stdin:   deps.Stdin,
	})
}
