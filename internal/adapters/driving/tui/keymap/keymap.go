// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
// Printable keys belong to the focused input, so commands use control keys.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Next moves focus to the next input.
	Next key.Binding

	// Prev moves focus to the previous input.
	Prev key.Binding

	// Up moves the dropdown cursor up.
	Up key.Binding

	// Down moves the dropdown cursor down.
	Down key.Binding

	// Select picks the highlighted row, or searches when no dropdown is open.
	Select key.Binding

	// Dismiss closes the dropdown.
	Dismiss key.Binding

	// Voice starts a push-to-talk capture for the taxi card.
	Voice key.Binding

	// Calculate runs the probability calculation.
	Calculate key.Binding

	// ClearTaxi resets the taxi card.
	ClearTaxi key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
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
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Voice: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "voice"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "probability"),
		),
		ClearTaxi: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear taxi"),
		),
	}
}

// ShortHelp returns the hints shown while no dropdown is open.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Voice, k.Calculate, k.Quit}
}

// DropdownHelp returns the hints shown while a dropdown is open.
func (k *KeyMap) DropdownHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Dismiss}
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
