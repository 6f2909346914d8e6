package root

import (
	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/runenv"
)

// applyRunEnvFromFlags turns run-scoped flags into environment switches so
// the config loaders see them. The returned func undoes every switch.
func applyRunEnvFromFlags(cmd *cli.Command) (func(), error) {
	if cmd == nil || !cmd.Bool("fresh-config") {
		return func() {}, nil
	}
	return runenv.Override(runenv.FreshConfigEnv, "1")
}
