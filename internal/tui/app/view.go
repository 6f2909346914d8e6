package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/regenrek/dragbox/internal/identity"
	"github.com/regenrek/dragbox/internal/rect"
	"github.com/regenrek/dragbox/internal/tui/canvas"
	"github.com/regenrek/dragbox/internal/tui/theme"
	"github.com/regenrek/dragbox/internal/userpath"
)

func (m *Model) View() string {
	lines := make([]string, 0, 3)
	lines = append(lines, m.viewHeader())
	lines = append(lines, m.viewCanvas())
	lines = append(lines, m.viewFooter())
	return strings.Join(lines, "\n")
}

func (m *Model) viewHeader() string {
	parts := []string{theme.Title.Render(identity.BrandName)}
	if sel := m.selected(); sel != nil {
		parts = append(parts, stateBadge(sel.w.State()), theme.EventText.Render(sel.def.Title))
	}
	if m.path != "" {
		parts = append(parts, theme.StatusMuted.Render(userpath.ShortenUser(m.path)))
	}
	return fitLine(strings.Join(parts, " "), m.width)
}

func stateBadge(state rect.State) string {
	return theme.Badge(state.String())
}

func (m *Model) viewCanvas() string {
	w, h := m.canvasSize()
	if m.showHelp {
		title := theme.HelpTitle.Render("Keys")
		body := m.help.FullHelpView(m.keys.FullHelp())
		dialog := theme.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, "", "double-click a widget to toggle its aspect lock"))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dialog)
	}
	return m.renderCanvas(w, h).Render()
}

func (m *Model) renderCanvas(w, h int) *canvas.Canvas {
	c := canvas.New(w, h)
	c.Backdrop(m.grid())
	for _, sw := range m.stack() {
		box := canvas.Box{
			ID:     sw.def.ID,
			Title:  sw.def.Title,
			Rect:   sw.box(),
			Color:  sw.color,
			Active: sw.w.Active(),
			Locked: sw.w.Props().LockAspectRatio,
		}
		if box.Active {
			box.Handles = mouseHandles(sw)
		}
		c.DrawBox(box)
	}
	return c
}

func (m *Model) viewFooter() string {
	lines := make([]string, 0, footerHeight)
	lines = append(lines, fitLine(m.statusLine(), m.width))
	recent := m.events.last(eventRows)
	for i := 0; i < eventRows; i++ {
		if i >= len(recent) {
			lines = append(lines, "")
			continue
		}
		ev := recent[i]
		line := theme.EventTime.Render(ev.At.Format("15:04:05")) + " " +
			theme.EventText.Render(ev.Widget+": "+ev.Text)
		lines = append(lines, fitLine(line, m.width))
	}
	lines = append(lines, fitLine(m.help.View(m.keys), m.width))
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine() string {
	if toast := m.toastText(); toast != "" {
		return toast
	}
	grid := m.grid()
	readout := "grid " + strconv.FormatFloat(grid.X, 'f', -1, 64) + "x" + strconv.FormatFloat(grid.Y, 'f', -1, 64) +
		"  contain " + onOff(m.contained()) +
		"  widgets " + strconv.Itoa(len(m.widgets))
	if sel := m.selected(); sel != nil {
		readout = sel.def.ID + " " + formatRect(sel.w.Rect()) + "  " + readout
	}
	return theme.StatusMuted.Render(readout)
}

// fitLine truncates s to width cells. A non-positive width leaves s alone.
func fitLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
