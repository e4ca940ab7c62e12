package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all key bindings for the application.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Open      key.Binding
	Export    key.Binding
	Reload    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	// Category filter
	NextCategory key.Binding
	PrevCategory key.Binding
	AllCategory  key.Binding

	// Sort
	SortProgress key.Binding
	SortRecent   key.Binding
	SortTitle    key.Binding
	SortCycle    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open course"),
		),
		Export: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("c", "tab", "right", "l"),
			key.WithHelp("c/tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("C", "shift+tab", "left", "h"),
			key.WithHelp("C", "previous category"),
		),
		AllCategory: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all categories"),
		),
		SortProgress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sort: progress"),
		),
		SortRecent: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort: recent"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort: title"),
		),
		SortCycle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
	}
}
