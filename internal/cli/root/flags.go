package root

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
)

// flagMaker builds one urfave flag from its description. name is already
// trimmed and src carries the env binding, if any.
type flagMaker func(f cmdspec.Flag, name string, src cli.ValueSourceChain) cli.Flag

var flagMakers = map[string]flagMaker{
	"bool": func(f cmdspec.Flag, name string, src cli.ValueSourceChain) cli.Flag {
		def, _ := f.Default.(bool)
		return &cli.BoolFlag{Name: name, Aliases: f.Aliases, Usage: f.Description,
			Required: f.Required, Hidden: f.Hidden, Sources: src, Value: def}
	},
	"string": makeStringFlag,
	"path":   makeStringFlag,
	"enum":   makeStringFlag,
	"int": func(f cmdspec.Flag, name string, src cli.ValueSourceChain) cli.Flag {
		return &cli.IntFlag{Name: name, Aliases: f.Aliases, Usage: f.Description,
			Required: f.Required, Hidden: f.Hidden, Sources: src, Value: int(number(f.Default))}
	},
	"float": func(f cmdspec.Flag, name string, src cli.ValueSourceChain) cli.Flag {
		return &cli.FloatFlag{Name: name, Aliases: f.Aliases, Usage: f.Description,
			Required: f.Required, Hidden: f.Hidden, Sources: src, Value: number(f.Default)}
	},
	"duration": func(f cmdspec.Flag, name string, src cli.ValueSourceChain) cli.Flag {
		return &cli.DurationFlag{Name: name, Aliases: f.Aliases, Usage: f.Description,
			Required: f.Required, Hidden: f.Hidden, Sources: src, Value: durationDefault(f.Default)}
	},
}

func makeStringFlag(f cmdspec.Flag, name string, src cli.ValueSourceChain) cli.Flag {
	def, _ := f.Default.(string)
	fl := &cli.StringFlag{Name: name, Aliases: f.Aliases, Usage: f.Description,
		Required: f.Required, Hidden: f.Hidden, Sources: src, Value: def}
	if len(f.Enum) > 0 {
		fl.Validator = enumValidator(f.Enum)
	}
	return fl
}

func buildFlags(flags []cmdspec.Flag) ([]cli.Flag, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make([]cli.Flag, len(flags))
	for i, f := range flags {
		built, err := buildFlag(f)
		if err != nil {
			return nil, err
		}
		out[i] = built
	}
	return out, nil
}

func buildFlag(f cmdspec.Flag) (cli.Flag, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, fmt.Errorf("flag name is required")
	}
	mk, ok := flagMakers[strings.TrimSpace(f.Type)]
	if !ok {
		return nil, fmt.Errorf("unsupported flag type %q for %s", f.Type, name)
	}
	var src cli.ValueSourceChain
	if env := strings.TrimSpace(f.Env); env != "" {
		src = cli.EnvVars(env)
	}
	return mk(f, name, src), nil
}

func enumValidator(values []string) func(string) error {
	return func(v string) error {
		for _, allowed := range values {
			if v == allowed {
				return nil
			}
		}
		return fmt.Errorf("invalid value %q (allowed: %s)", v, strings.Join(values, ", "))
	}
}

// number reads a YAML-decoded default as a float. Anything else is zero.
func number(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f
	}
	return 0
}

// durationDefault accepts "2s" style strings or a bare number of seconds.
func durationDefault(v any) time.Duration {
	if s, ok := v.(string); ok {
		d, _ := time.ParseDuration(strings.TrimSpace(s))
		return d
	}
	if d, ok := v.(time.Duration); ok {
		return d
	}
	return time.Duration(number(v) * float64(time.Second))
}
