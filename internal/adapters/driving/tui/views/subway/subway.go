// Package subway renders the subway timetable card body.
package subway

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// View renders a subway panel with both directions side by side.
type View struct {
	styles *styles.Styles
}

// New creates a subway card view.
func New(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// Render returns the card body.
func (v *View) Render(p domain.SubwayPanel, ok bool, l *domain.Labels) string {
	if !ok {
		return v.styles.Headline.Render(l.Placeholder)
	}

	header := v.styles.Normal.Render(p.Station) + " " + v.styles.Muted.Render(p.DayType)
	up := v.renderDirection(l.UpLabel, p.Up)
	down := v.renderDirection(l.DownLabel, p.Down)

	return strings.Join([]string{
		header,
		v.styles.Headline.Render(p.NextTrain),
		lipgloss.JoinHorizontal(lipgloss.Top, up, "   ", down),
	}, "\n")
}

func (v *View) renderDirection(title string, d domain.SubwayDirectionPanel) string {
	lines := []string{v.styles.Title.Render(title)}
	if d.Empty != "" {
		lines = append(lines, v.styles.Muted.Render(d.Empty))
		return strings.Join(lines, "\n")
	}
	for _, r := range d.Rows {
		lines = append(lines, r.Time+" "+v.styles.Muted.Render(r.Destination)+" "+v.styles.Normal.Render(r.ETA))
	}
	return strings.Join(lines, "\n")
}
