package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Recommend key.Binding
	Analyze   key.Binding
	Reload    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Recommend: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "recommend")),
		Analyze:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "analyze")),
		Reload:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "reload jobs")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Recommend, k.Analyze, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Recommend, k.Analyze, k.Reload}, {k.Next, k.Prev, k.Quit}}
}
