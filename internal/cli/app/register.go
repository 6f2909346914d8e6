package app

import (
	"github.com/regenrek/dragbox/internal/cli/canvas"
	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/cli/scene"
	"github.com/regenrek/dragbox/internal/cli/simulate"
	"github.com/regenrek/dragbox/internal/cli/version"
)

func registerAll(reg *root.Registry) {
	if reg == nil {
		return
	}
	canvas.Register(reg)
	simulate.Register(reg)
	scene.Register(reg)
	version.Register(reg)
}
