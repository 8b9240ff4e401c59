// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings of the form.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full key list.
	Help key.Binding

	// Next and Prev move focus between fields.
	Next key.Binding
	Prev key.Binding

	// Up and Down move the dropdown highlight.
	Up   key.Binding
	Down key.Binding

	// Select commits the highlighted item.
	Select key.Binding

	// Close hides the dropdown.
	Close key.Binding

	// Search runs a search for the focused field now.
	Search key.Binding

	// Clear resets the focused field.
	Clear key.Binding

	// Submit validates every field.
	Submit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "search now"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "validate"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Help, k.Quit}
}

// DropdownHelp returns the bindings shown while a dropdown is open.
func (k *KeyMap) DropdownHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Close}
}

// FullHelp returns the full list of keybindings for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Close},
		{k.Next, k.Prev, k.Search, k.Clear},
		{k.Submit, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
