// Package bus renders the bus arrivals card body.
package bus

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// View renders a bus panel.
type View struct {
	styles *styles.Styles
}

// New creates a bus card view.
func New(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// Render returns the card body.
func (v *View) Render(p domain.BusPanel, ok bool, l *domain.Labels) string {
	if !ok {
		return v.styles.Headline.Render(l.Placeholder)
	}

	lines := []string{
		v.styles.Normal.Render(p.StopName),
		v.styles.Headline.Render(p.ETA),
	}
	if p.Empty != "" {
		return strings.Join(append(lines, v.styles.Muted.Render(p.Empty)), "\n")
	}
	for _, r := range p.Rows {
		lines = append(lines, v.renderRow(r))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderRow(r domain.BusRow) string {
	route := fmt.Sprintf("%-6s", r.Route)
	if r.Direction == "" {
		return route + " " + v.styles.Normal.Render(r.ETA)
	}
	return route + " " + v.styles.Muted.Render(r.Direction) + " " + v.styles.Normal.Render(r.ETA)
}
