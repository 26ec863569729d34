package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the program reacts to. Clock bindings are
// active while the modal is closed; modal bindings while it is open.
type keyMap struct {
	Open key.Binding
	Quit key.Binding

	Up       key.Binding
	Down     key.Binding
	First    key.Binding
	Last     key.Binding
	Confirm  key.Binding
	Escape   key.Binding
	Cancel   key.Binding
	Close    key.Binding
	Backdrop key.Binding
}

//nolint:gochecknoglobals // Key bindings are read-only package configuration
var keys = keyMap{
	Open: key.NewBinding(key.WithKeys("t", "enter"), key.WithHelp("t", "change timezone")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
	Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
	Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Cancel:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
	Close:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
	Backdrop: key.NewBinding(key.WithKeys("q")),
}

// clockHelp implements help.KeyMap for the closed state.
type clockHelp struct{ k keyMap }

func (h clockHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Open, h.k.Quit}
}

func (h clockHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// modalHelp implements help.KeyMap for the open state.
type modalHelp struct{ k keyMap }

func (h modalHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Confirm, h.k.Cancel, h.k.Escape}
}

func (h modalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.First, h.k.Last},
		{h.k.Confirm, h.k.Cancel, h.k.Close, h.k.Escape},
	}
}
