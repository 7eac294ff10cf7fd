package update

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the shell and workspace react to
type KeyMap struct {
	Quit        key.Binding
	Submit      key.Binding
	Clear       key.Binding
	Settings    key.Binding
	Close       key.Binding
	SwitchFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Dismiss     key.Binding
	Menu        key.Binding
	Complete    key.Binding
	About       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "process")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Settings:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Dismiss:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "dismiss")),
		Menu:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "menu")),
		Complete:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "complete")),
		About:       key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "about")),
	}
}
