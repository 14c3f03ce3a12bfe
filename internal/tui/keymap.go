package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Form navigation
	NextField  key.Binding
	PrevField  key.Binding
	PrevOption key.Binding
	NextOption key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	// Actions
	Add     key.Binding
	Clear   key.Binding
	Summary key.Binding
	Dismiss key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab/↑", "previous field"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous category"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next category"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll list up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll list down"),
		),

		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "add expense"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("Ctrl+X", "clear fields"),
		),
		Summary: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "summary"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("Enter/Esc", "close"),
		),

		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Add}
	if k.Clear.Enabled() {
		bindings = append(bindings, k.Clear)
	}
	return append(bindings, k.Summary, k.NextField, k.Quit)
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.PrevOption, k.NextOption},
		{k.Add, k.Clear, k.Summary},
		{k.PageUp, k.PageDown, k.Quit, k.ForceQuit},
	}
}
