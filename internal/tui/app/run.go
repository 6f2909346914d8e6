package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/regenrek/dragbox/internal/tui/mouse"
)

type programRunner interface {
	Run() (tea.Model, error)
}

var newProgramFn = func(model tea.Model, opts ...tea.ProgramOption) programRunner {
	return tea.NewProgram(model, opts...)
}

// Run shows the canvas until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	profile := termenv.EnvColorProfile()
	lipgloss.SetColorProfile(profile)

	model := New(ctx, opts)
	defer model.Close()
	model.log.Info("app: start",
		slog.Int("widgets", len(model.widgets)),
		slog.String("scene", opts.Path),
		slog.Int("color_profile", int(profile)))

	filter := mouse.NewMotionFilter()
	p := newProgramFn(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFilter(filter.Filter),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
