package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds terminal keys to editor commands.
type KeyMap struct {
	Up, Down, Left, Right                     key.Binding
	DrawUp, DrawDown, DrawLeft, DrawRight     key.Binding
	Confirm, UndoLast, ClearAll, Cancel, Quit key.Binding

	Yank, ExportPNG, ExportText, Help key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "move left")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "move right")),

		DrawUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K/shift+↑", "draw up")),
		DrawDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J/shift+↓", "draw down")),
		DrawLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H/shift+←", "draw left")),
		DrawRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L/shift+→", "draw right")),

		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit / select / deselect")),
		UndoLast: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "remove last rectangle")),
		ClearAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "remove all rectangles")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drawing / deselect")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save and quit")),

		Yank:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection to clipboard")),
		ExportPNG:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export PNG")),
		ExportText: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "export text")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

// HelpBindings lists the bindings shown on the help screen, in order.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right,
		k.DrawUp, k.DrawDown, k.DrawLeft, k.DrawRight,
		k.Confirm, k.UndoLast, k.ClearAll, k.Cancel,
		k.Yank, k.ExportPNG, k.ExportText, k.Help, k.Quit,
	}
}
