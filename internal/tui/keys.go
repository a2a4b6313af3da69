package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings shown in the help bar.
type keyMap struct {
	NextPane key.Binding
	PrevPane key.Binding
	Toggle   key.Binding
	Expand   key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Confirm  key.Binding
	Delete   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Expand:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/jump")),
		Undo:     key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Confirm:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "confirm & close")),
		Delete:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete profile")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "close")),
	}
}

// shortHelp is the one-line help bar rendered at the bottom.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.NextPane, k.Toggle, k.Undo, k.Redo, k.Confirm, k.Delete, k.Quit,
	}
}
