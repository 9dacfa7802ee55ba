package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the picker board.
type KeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	// Input focus
	Submit     key.Binding
	PickInput  key.Binding
	LeaveInput key.Binding

	// Card focus
	FocusInput key.Binding
	Remove     key.Binding
	Pick       key.Binding
	ClearAll   key.Binding
	Cancel     key.Binding
	Copy       key.Binding
	LookUp     key.Binding
	Find       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next card"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "row down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add option"),
		),
		PickInput: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "pick for me"),
		),
		LeaveInput: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "go to cards"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("tab", "i", "a"),
			key.WithHelp("i/tab", "add options"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d/x", "remove card"),
		),
		Pick: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pick for me"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop thinking"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy pick"),
		),
		LookUp: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "look up pick"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find option"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
