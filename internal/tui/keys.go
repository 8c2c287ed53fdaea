package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Enter  key.Binding
	Escape key.Binding
	CtrlC  key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+d"),
	),
}
