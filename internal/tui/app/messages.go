package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/regenrek/dragbox/internal/config"
	"github.com/regenrek/dragbox/internal/tui/theme"
)

// ErrorMsg surfaces a failed background action in the status line.
type ErrorMsg struct {
	Err     error
	Context string // e.g. "saving scene"
}

func (e ErrorMsg) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %v", e.Context, e.Err)
	}
	return e.Err.Error()
}

// configUpdateMsg carries one result from the scene watcher.
type configUpdateMsg struct {
	Update config.Update
}

// sceneSavedMsg reports the outcome of a save.
type sceneSavedMsg struct {
	Path string
}

func waitConfigUpdate(updates <-chan config.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return nil
		}
		return configUpdateMsg{Update: update}
	}
}

func saveSceneCmd(path string, scene config.Scene) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(path, scene); err != nil {
			return ErrorMsg{Err: err, Context: "saving scene"}
		}
		return sceneSavedMsg{Path: path}
	}
}

// ===== Toast messages =====

type toastLevel = theme.Tone

const (
	toastInfo    = theme.ToneInfo
	toastSuccess = theme.ToneSuccess
	toastWarning = theme.ToneWarning
	toastError   = theme.ToneError
)

const toastTTL = 3 * time.Second

type toastMessage struct {
	Text  string
	Level toastLevel
	Until time.Time
}

func (m *Model) setToast(text string, level toastLevel) {
	m.toast = toastMessage{Text: singleLine(text), Level: level, Until: m.now().Add(toastTTL)}
}

func (m *Model) toastText() string {
	if m.toast.Text == "" || m.now().After(m.toast.Until) {
		return ""
	}
	return theme.Toast(m.toast.Level, m.toast.Text)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
