// Package theme holds the colors and lipgloss styles of the dragbox canvas.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors.
var (
	Accent      = lipgloss.Color("#3B82F6")
	AccentAlt   = lipgloss.Color("#22C55E")
	AccentFocus = lipgloss.Color("#F9F871")

	TextPrimary   = lipgloss.Color("#F8FAFC")
	TextSecondary = lipgloss.Color("#CBD5E1")
	TextMuted     = lipgloss.Color("#94A3B8")
	TextDim       = lipgloss.Color("#64748B")

	Surface    = lipgloss.Color("#1A1A1A")
	SurfaceAlt = lipgloss.Color("#242424")
	Border     = lipgloss.Color("#3A3A3A")
	CanvasDot  = lipgloss.Color("#2A2A2A")
)

// Palette colors widgets that do not name their own color.
var Palette = []lipgloss.Color{
	"#7AA2F7", "#E0AF68", "#9ECE6A", "#BB9AF7", "#F7768E", "#7DCFFF",
}

// WidgetColor returns the configured color, or the palette entry at index
// when none is set.
func WidgetColor(configured string, index int) lipgloss.Color {
	if c := strings.TrimSpace(configured); c != "" {
		return lipgloss.Color(c)
	}
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func pill(text, back lipgloss.TerminalColor, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Bold(bold).Foreground(text).Background(back).Padding(0, 1)
}

// Chrome.
var (
	Title       = pill(TextPrimary, Accent, true)
	HelpTitle   = pill(TextPrimary, Accent, true).MarginBottom(1)
	StatusMuted = fg(TextMuted)
	Dialog      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Background(Surface).
			Foreground(TextPrimary).
			Padding(1, 2)
	EventTime = fg(TextDim)
	EventText = fg(TextSecondary)
)

// Canvas cells.
var (
	Frame       = fg(Border)
	FrameActive = fg(AccentFocus).Bold(true)
	Handle      = lipgloss.NewStyle().Foreground(Surface).Background(AccentFocus)
	Backdrop    = fg(CanvasDot)
)

var (
	badgeIdle = pill(TextMuted, SurfaceAlt, false)
	badges    = map[string]lipgloss.Style{
		"dragging": pill(TextPrimary, Accent, true),
		"resizing": pill(Surface, AccentAlt, true),
	}
)

// Badge renders a widget interaction state label. Unknown states use the
// idle look.
func Badge(state string) string {
	style, ok := badges[state]
	if !ok {
		style = badgeIdle
	}
	return style.Render(state)
}

// Tone selects the color and marker of a transient message.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
)

var tones = map[Tone]struct {
	mark  string
	color lipgloss.AdaptiveColor
}{
	ToneInfo:    {"ℹ", lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}},
	ToneSuccess: {"✓", lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"}},
	ToneWarning: {"⚠", lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}},
	ToneError:   {"✗", lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}},
}

// Toast renders msg with the marker and color of tone.
func Toast(tone Tone, msg string) string {
	t, ok := tones[tone]
	if !ok {
		t = tones[ToneInfo]
	}
	return fg(t.color).Render(t.mark + " " + msg)
}
