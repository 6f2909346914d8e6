package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/identity"
)

// Register binds the version command.
func Register(reg *root.Registry) {
	reg.Register("version", runVersion)
}

func runVersion(ctx root.CommandContext) error {
	name := ctx.Deps.AppName
	if name == "" {
		name = identity.CLIName
	}
	if _, err := fmt.Fprintf(ctx.Out, "%s %s\n", name, ctx.Deps.Version); err != nil {
		return err
	}
	if !ctx.Bool("verbose") {
		return nil
	}
	_, err := fmt.Fprintf(ctx.Out, "go: %s\nplatform: %s/%s\nrevision: %s\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH, revision())
	return err
}

// revision reads the VCS commit stamped into the binary, if any.
func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	rev, dirty := "unknown", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
