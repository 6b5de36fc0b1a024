package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the viewer handles itself. Line and page
// scrolling are handled by the viewport's own bindings.
type KeyMap struct {
	GotoTop    key.Binding
	GotoBottom key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
