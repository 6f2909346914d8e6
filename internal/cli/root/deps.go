package root

import (
	"io"
	"os"

	"github.com/regenrek/dragbox/internal/identity"
)

// Dependencies are the process streams and build info handed to every
// handler.
type Dependencies struct {
	Version string
	AppName string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// DefaultDependencies wires the real process streams.
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Version: version,
		AppName: identity.CLIName,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// quietDefaults swaps nil outputs for io.Discard so handlers can write
// without checks. A nil Stdin reads as closed.
func (d Dependencies) quietDefaults() Dependencies {
	if d.Stdout == nil {
		d.Stdout = io.Discard
	}
	if d.Stderr == nil {
		d.Stderr = io.Discard
	}
	return d
}
