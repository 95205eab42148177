package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	switchPan key.Binding
	toggle    key.Binding
	toggleAll key.Binding
	refresh   key.Binding
	del       key.Binding
	confirm   key.Binding
	cancel    key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		switchPan: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch list"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "check"),
		),
		toggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r", "refresh"),
		),
		del: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete checked"),
		),
		confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.switchPan, k.up, k.down, k.toggle, k.toggleAll, k.refresh, k.del, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.switchPan, k.up, k.down},
		{k.toggle, k.toggleAll},
		{k.refresh, k.del, k.confirm, k.cancel, k.quit},
	}
}
