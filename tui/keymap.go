package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// navigation mode
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	Insert    key.Binding
	Toggle    key.Binding
	Save      key.Binding
	Copy      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// line-edit mode
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	// Terminals deliver Ctrl+Backspace as ctrl+h; ctrl+w and alt+backspace
	// are the usual shell spellings.
	WordErase key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
		Insert:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "done/undo")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete")),
		WordErase: key.NewBinding(key.WithKeys("ctrl+h", "ctrl+w", "alt+backspace"), key.WithHelp("ctrl+bksp", "delete word")),
	}
}

func (k keyMap) navigateHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Tab, k.Insert, k.Toggle, k.Save, k.Copy, k.Quit}
}

func (k keyMap) insertHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel, k.Backspace, k.WordErase}
}
