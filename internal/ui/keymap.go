package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings that act on the picker itself. Navigation
// and search keys are not listed here: they are translated wholesale into
// prompt key events so that typed runes can reach the search text.
type KeyMap struct {
	Accept key.Binding
	Cancel key.Binding
	Copy   key.Binding
	Pager  key.Binding
	Help   key.Binding

	// Display-only entries for the help footer.
	Navigate key.Binding
	Jump     key.Binding
	Page     key.Binding
	Search   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "view in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "more help"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys("home", "end"),
			key.WithHelp("home/end", "first/last"),
		),
		Page: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "page"),
		),
		Search: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("type", "search"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Accept, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Jump, k.Page},
		{k.Search, k.Accept, k.Cancel},
		{k.Copy, k.Pager, k.Help},
	}
}
