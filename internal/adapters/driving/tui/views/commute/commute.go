// Package commute renders the arrival probability card body.
package commute

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// View renders a commute report.
type View struct {
	styles *styles.Styles
}

// New creates a commute card view.
func New(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// Render returns the card body. A nil report renders nothing.
func (v *View) Render(r *domain.CommuteReport) string {
	if r == nil {
		return ""
	}

	lines := []string{v.styles.Normal.Render(r.Summary)}
	for _, m := range r.Lines {
		lines = append(lines, v.renderLine(m))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderLine(m domain.ModeLine) string {
	line := fmt.Sprintf("%-6s %s", m.Label, v.styles.Headline.Render(fmt.Sprintf("%4s", m.Percent)))
	if m.Mean != "" {
		line += " " + v.styles.Muted.Render(m.Mean)
	}
	if m.Note != "" {
		line += " " + v.styles.Muted.Render(m.Note)
	}
	return line
}
