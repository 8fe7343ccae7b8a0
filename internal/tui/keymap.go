// Package tui provides the terminal date picker.
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap contains all key bindings for the picker.
type keyMap struct {
	// Cursor movement
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding

	// Jumps
	Today    key.Binding
	Selected key.Binding

	// Actions
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
	Help   key.Binding
}

// defaultKeyMap returns Vim-style bindings. cancelLabel is shown as the help
// text for the cancel key; an empty label hides it from the help line.
func defaultKeyMap(cancelLabel string) keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev day")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev week")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),

		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Selected: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "selected")),

		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", cancelLabel)),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Select, k.Today, k.Selected, k.Copy}
	if k.Cancel.Help().Desc != "" {
		bindings = append(bindings, k.Cancel)
	}
	return append(bindings, k.Help)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		k.ShortHelp(),
	}
}
