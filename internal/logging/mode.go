package logging

import "strings"

type Mode uint8

const (
	ModeCLI Mode = iota + 1
	// ModeTUI owns the terminal, so logs must not go to stderr.
	ModeTUI
)

// cliCommands are the subcommands that run headless.
var cliCommands = map[string]bool{
	"simulate": true,
	"scene":    true,
	"version":  true,
	"help":     true,
	"h":        true,
}

// valueFlags take a separate value argument that must be skipped.
var valueFlags = map[string]bool{
	"--config":    true,
	"-c":          true,
	"--log-level": true,
}

// ModeFromArgs picks the logging mode from the raw process arguments. The
// bare command starts the interactive canvas.
func ModeFromArgs(args []string) Mode {
	if len(args) < 2 {
		return ModeTUI
	}
	for i := 1; i < len(args); i++ {
		arg := strings.ToLower(strings.TrimSpace(args[i]))
		if arg == "" {
			continue
		}
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return ModeCLI
		}
		if strings.HasPrefix(arg, "-") {
			if valueFlags[arg] {
				i++
			}
			continue
		}
		if cliCommands[arg] {
			return ModeCLI
		}
		return ModeTUI
	}
	return ModeTUI
}

func (m Mode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	default:
		return "cli"
	}
}
