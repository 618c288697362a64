// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// Bar displays the focused card, the ambient status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	focus    string
	ambient  domain.AmbientStatus
	dropdown bool
	busy     bool
	active   bool
	spinner  spinner.Model
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(s.Theme().Primary)),
		),
		width: 80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner while activity is shown.
// Other state is set via the Set methods.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(tick)
	return s, cmd
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	dot := lipgloss.NewStyle().Foreground(s.styles.AmbientColor(s.ambient)).Render("●")
	text := fmt.Sprintf("%s %s", dot, s.focus)
	if s.active {
		text += " " + s.spinner.View()
	}
	if s.busy {
		text += s.styles.Muted.Render(" · voice")
	}
	return text
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.dropdown {
		bindings = s.keymap.DropdownHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// SetFocus names the focused card.
func (s *Bar) SetFocus(name string) {
	s.focus = name
}

// Focus returns the focused card name.
func (s *Bar) Focus() string {
	return s.focus
}

// SetAmbient sets the page-wide status indicator.
func (s *Bar) SetAmbient(a domain.AmbientStatus) {
	s.ambient = a
}

// Ambient returns the shown ambient status.
func (s *Bar) Ambient() domain.AmbientStatus {
	return s.ambient
}

// SetDropdown switches the hints to dropdown navigation.
func (s *Bar) SetDropdown(open bool) {
	s.dropdown = open
}

// SetVoiceBusy marks a running voice capture.
func (s *Bar) SetVoiceBusy(busy bool) {
	s.busy = busy
}

// SetActivity shows or hides the spinner. It returns the first tick
// when the spinner starts.
func (s *Bar) SetActivity(active bool) tea.Cmd {
	start := active && !s.active
	s.active = active
	if start {
		return s.spinner.Tick
	}
	return nil
}

// Active reports whether the spinner is shown.
func (s *Bar) Active() bool {
	return s.active
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
