package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings; it also feeds the footer help
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Home           key.Binding
	End            key.Binding
	ToggleSelect   key.Binding
	SelectAll      key.Binding
	ClearSelection key.Binding
	ToggleStar     key.Binding
	OpenURL        key.Binding
	Refresh        key.Binding
	Filter         key.Binding
	CycleSort      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:         key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:           key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "top")),
		End:            key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "bottom")),
		ToggleSelect:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select")),
		SelectAll:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearSelection: key.NewBinding(key.WithKeys("A", "esc"), key.WithHelp("A/esc", "clear")),
		ToggleStar:     key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "star/unstar")),
		OpenURL:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Refresh:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Filter:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		CycleSort:      key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleSelect, k.ToggleStar, k.OpenURL, k.Filter, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.ToggleSelect, k.SelectAll, k.ClearSelection},
		{k.ToggleStar, k.OpenURL, k.Refresh},
		{k.Filter, k.CycleSort, k.Help, k.Quit},
	}
}
