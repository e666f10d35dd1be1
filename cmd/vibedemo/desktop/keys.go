package desktop

import "github.com/charmbracelet/bubbles/key"

// keyMap is the desktop's global shortcut table. Bindings that only make
// sense in one variant are disabled by applyScript.
type keyMap struct {
	Quit      key.Binding
	Enter     key.Binding
	Up        key.Binding
	Down      key.Binding
	Clear     key.Binding
	Reset     key.Binding
	Projects  key.Binding
	Terminal  key.Binding
	Search    key.Binding
	Messaging key.Binding
	Customize key.Binding
	Share     key.Binding
	Close     key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		// k and j only apply while no text field has focus.
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart demo"),
		),
		Projects: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "projects"),
		),
		Terminal: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "terminal"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "search"),
		),
		Messaging: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "messages"),
		),
		Customize: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "customize sandbox"),
		),
		Share: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy share link"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
	}
}

// applyScript enables the guided-only shortcuts when the script has them.
func (k *keyMap) applyScript(overlays, customize bool) {
	k.Search.SetEnabled(overlays)
	k.Messaging.SetEnabled(overlays)
	k.Share.SetEnabled(overlays)
	k.Close.SetEnabled(overlays)
	k.Customize.SetEnabled(customize)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Up, k.Down, k.Projects, k.Terminal, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Up, k.Down, k.Clear},
		{k.Projects, k.Terminal, k.Search, k.Messaging},
		{k.Customize, k.Share, k.Close},
		{k.Reset, k.Help, k.Quit},
	}
}
