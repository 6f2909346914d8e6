package root

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
)

// ErrMissingHandler is wrapped when a leaf command has no handler.
var ErrMissingHandler = errors.New("missing CLI handler")

// Handler executes a command.
type Handler func(ctx CommandContext) error

// Registry maps command IDs from the command description to handlers.
type Registry struct {
	byID map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{byID: map[string]Handler{}}
}

// Register binds handler to id. Blank ids and nil handlers are ignored.
func (r *Registry) Register(id string, handler Handler) {
	if r == nil || handler == nil || strings.TrimSpace(id) == "" {
		return
	}
	r.byID[id] = handler
}

func (r *Registry) HandlerFor(id string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.byID[id]
	return h, ok
}

// EnsureHandlers fails when any leaf command of doc is unbound. Commands
// that only group subcommands need no handler.
func (r *Registry) EnsureHandlers(doc *cmdspec.Spec) error {
	if r == nil || doc == nil {
		return nil
	}
	var missing []string
	for _, cmd := range doc.AllCommands() {
		if len(cmd.Subcommands) > 0 {
			continue
		}
		if _, ok := r.byID[cmd.ID]; !ok {
			missing = append(missing, cmd.ID)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w for %s", ErrMissingHandler, strings.Join(missing, ", "))
}
