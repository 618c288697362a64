// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
)

// DefaultCharLimit bounds every card input.
const DefaultCharLimit = 128

// Field wraps a bubbles textinput with a card label.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewField creates an unfocused input labelled label.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = DefaultCharLimit
	ti.Width = 24

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     24,
	}
}

// Init initialises the input.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input.
// changed reports whether the value differs afterwards.
func (f *Field) Update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	before := f.textinput.Value()
	f.textinput, cmd = f.textinput.Update(msg)
	return cmd, f.textinput.Value() != before
}

// View renders the labelled input.
func (f *Field) View() string {
	input := f.styles.InputField.Render(f.textinput.View())
	if f.label == "" {
		return input
	}
	label := f.styles.Muted.Render(f.label + " ")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue replaces the value and moves the cursor to the end.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
	f.textinput.CursorEnd()
}

// Sync replaces the value only when it differs from value.
// Typing in progress keeps its cursor position.
func (f *Field) Sync(value string) {
	if f.textinput.Value() != value {
		f.SetValue(value)
	}
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input.
func (f *Field) SetWidth(width int) {
	f.width = width
	// Account for label and padding
	inputWidth := width - lipgloss.Width(f.label) - 6
	if inputWidth < 8 {
		inputWidth = 8
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// SetPlaceholder replaces the placeholder text.
func (f *Field) SetPlaceholder(p string) {
	f.textinput.Placeholder = p
}
