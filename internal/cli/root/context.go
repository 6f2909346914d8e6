package root

import (
	"context"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
)

// CommandContext wraps a command invocation.
type CommandContext struct {
	Context context.Context
	Args    []string
	Spec    cmdspec.Command
	Cmd     *cli.Command
	Deps    Dependencies
	Out     io.Writer
	ErrOut  io.Writer
	Stdin   io.Reader
}

// String returns a flag value, or "" when the command has no parsed flags.
func (c CommandContext) String(name string) string {
	if c.Cmd == nil {
		return ""
	}
	return c.Cmd.String(name)
}

// Bool returns a flag value, or false when the command has no parsed flags.
func (c CommandContext) Bool(name string) bool {
	if c.Cmd == nil {
		return false
	}
	return c.Cmd.Bool(name)
}

// Arg returns a named positional argument.
func (c CommandContext) Arg(name string) string {
	if c.Cmd == nil {
		return ""
	}
	return strings.TrimSpace(c.Cmd.StringArg(name))
}
