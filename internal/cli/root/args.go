package root

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
)

// buildArguments declares positionals so handlers can read them by name.
func buildArguments(args []cmdspec.Arg) []cli.Argument {
	var out []cli.Argument
	for _, a := range args {
		name := strings.TrimSpace(a.Name)
		switch {
		case a.Variadic && a.Required:
			out = append(out, &cli.StringArgs{Name: name, Min: 1, Max: -1})
		case a.Variadic:
			out = append(out, &cli.StringArgs{Name: name, Max: -1})
		default:
			out = append(out, &cli.StringArg{Name: name})
		}
	}
	return out
}

// argsUsage renders e.g. "SCRIPT [FILE] [REST...]".
func argsUsage(args []cmdspec.Arg) string {
	words := make([]string, len(args))
	for i, a := range args {
		w := strings.ToUpper(a.Name)
		if a.Variadic {
			w += "..."
		}
		if !a.Required {
			w = "[" + w + "]"
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}

// validateArgs reports the first required positional left blank. urfave/cli
// accepts a missing single arg, so the check lives here.
func validateArgs(spec cmdspec.Command, cmd *cli.Command) error {
	if cmd == nil {
		return nil
	}
	for _, a := range spec.Args {
		name := strings.TrimSpace(a.Name)
		if !a.Required || name == "" || argGiven(cmd, name, a.Variadic) {
			continue
		}
		return fmt.Errorf("missing argument %q", a.Name)
	}
	return nil
}

func argGiven(cmd *cli.Command, name string, variadic bool) bool {
	if variadic {
		return len(cmd.StringArgs(name)) > 0
	}
	return strings.TrimSpace(cmd.StringArg(name)) != ""
}
