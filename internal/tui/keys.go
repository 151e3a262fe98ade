package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down     key.Binding
	Select       key.Binding
	Toggle       key.Binding
	Delete       key.Binding
	DeleteNow    key.Binding
	Add          key.Binding
	Clear        key.Binding
	Undo         key.Binding
	UndoAnywhere key.Binding
	Quit         key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "select")),
		Toggle:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "multi-select")),
		Delete:       key.NewBinding(key.WithKeys("delete", "backspace", "d"), key.WithHelp("del", "delete selected")),
		DeleteNow:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete item")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Clear:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Undo:         key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		UndoAnywhere: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// listHelp and dialogHelp implement help.KeyMap for the two focus modes.
type listHelp struct{ k keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Select, h.k.Toggle, h.k.Delete, h.k.DeleteNow, h.k.Add, h.k.UndoAnywhere, h.k.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down},
		{h.k.Select, h.k.Toggle, h.k.Clear},
		{h.k.Delete, h.k.DeleteNow},
		{h.k.Add, h.k.Undo, h.k.UndoAnywhere, h.k.Quit},
	}
}

type dialogHelp struct{ k keyMap }

func (h dialogHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.Cancel, h.k.UndoAnywhere}
}

func (h dialogHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
