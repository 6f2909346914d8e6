package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit       key.Binding
	toggleLock key.Binding
	contain    key.Binding
	grid       key.Binding
	next       key.Binding
	prev       key.Binding
	deselect   key.Binding
	save       key.Binding
	toggleHelp key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		toggleLock: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "lock aspect"),
		),
		contain: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "containment"),
		),
		grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid 1/2/4"),
		),
		next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save scene"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.toggleLock, k.grid, k.save, k.toggleHelp, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.deselect},
		{k.toggleLock, k.contain, k.grid},
		{k.save, k.toggleHelp, k.quit},
	}
}
