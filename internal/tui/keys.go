package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Calculate key.Binding
	NextOp    key.Binding
	PrevOp    key.Binding
	Reset     key.Binding
	Sample    key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		NextOp:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "operation")),
		PrevOp:    key.NewBinding(key.WithKeys("shift+tab")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Sample:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "sample")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.NextOp, k.Reset, k.Sample, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
