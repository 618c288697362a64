// Package taxi renders the taxi estimate card body.
package taxi

import (
	"strings"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// View renders a taxi panel.
type View struct {
	styles *styles.Styles
}

// New creates a taxi card view.
func New(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// Render returns the card body. Without a panel every value reads as the placeholder.
func (v *View) Render(p domain.TaxiPanel, ok bool, l *domain.Labels) string {
	if !ok {
		return strings.Join([]string{
			v.styles.Muted.Render(l.Placeholder),
			v.styles.Headline.Render(l.Placeholder),
			v.styles.Muted.Render(l.Placeholder),
		}, "\n")
	}

	fare := p.Fare
	if p.Distance != "" {
		fare += " " + v.styles.Muted.Render("("+p.Distance+")")
	}
	return strings.Join([]string{
		v.styles.Normal.Render(p.Destination),
		v.styles.Headline.Render(p.Duration),
		fare,
	}, "\n")
}
