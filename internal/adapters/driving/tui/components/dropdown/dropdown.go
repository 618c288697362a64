// Package dropdown renders the autocomplete list under a card input.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// DefaultVisible is how many rows fit under a card.
const DefaultVisible = 6

// Dropdown displays session items with a cursor.
// The cursor resets whenever a new generation arrives.
type Dropdown struct {
	items      []domain.DropdownItem
	generation uint64
	open       bool
	selected   int
	visible    int
	width      int
	styles     *styles.Styles
}

// New creates an empty, closed dropdown.
func New(s *styles.Styles) *Dropdown {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Dropdown{
		visible: DefaultVisible,
		width:   30,
		styles:  s,
	}
}

// SetView mirrors a session view.
func (d *Dropdown) SetView(v domain.SessionView) {
	if v.Generation != d.generation {
		d.selected = 0
	}
	d.generation = v.Generation
	d.items = v.Items
	d.open = v.DropdownOpen()
	if d.selected >= len(d.items) {
		d.selected = 0
	}
}

// Open reports whether the dropdown is visible.
func (d *Dropdown) Open() bool {
	return d.open
}

// Generation returns the generation of the shown items.
func (d *Dropdown) Generation() uint64 {
	return d.generation
}

// Selected returns the cursor index.
func (d *Dropdown) Selected() int {
	return d.selected
}

// MoveUp moves the cursor up, stopping at the first row.
func (d *Dropdown) MoveUp() {
	if d.selected > 0 {
		d.selected--
	}
}

// MoveDown moves the cursor down, stopping at the last row.
func (d *Dropdown) MoveDown() {
	if d.selected < len(d.items)-1 {
		d.selected++
	}
}

// SetWidth sets the render width.
func (d *Dropdown) SetWidth(width int) {
	d.width = width
}

// View renders the visible rows, or nothing when closed.
func (d *Dropdown) View() string {
	if !d.open {
		return ""
	}

	start := 0
	if d.selected >= d.visible {
		start = d.selected - d.visible + 1
	}
	end := start + d.visible
	if end > len(d.items) {
		end = len(d.items)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, d.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

func (d *Dropdown) renderItem(i int) string {
	item := d.items[i]
	title := truncate(item.Title, d.width-4)

	if i == d.selected {
		return d.styles.Selected.Render("> " + title)
	}
	line := d.styles.Normal.Render("  " + title)
	if item.Subtitle != "" {
		room := d.width - lipgloss.Width(line) - 3
		if room > 4 {
			line += " " + d.styles.Muted.Render(truncate(item.Subtitle, room))
		}
	}
	return line
}

func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	r := []rune(s)
	if lipgloss.Width(s) <= n {
		return s
	}
	for len(r) > 0 && lipgloss.Width(string(r))+3 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
