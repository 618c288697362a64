package driving

import (
	"context"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// Dashboard owns every session of the mirror page.
type Dashboard interface {
	// Taxi is the primary destination picker.
	Taxi() PanelSession[domain.TaxiPanel]

	// Bus is the bus stop picker.
	Bus() PanelSession[domain.BusPanel]

	// Subway is the subway station picker.
	Subway() PanelSession[domain.SubwayPanel]

	// CommuteDest is the destination picker of the probability card.
	CommuteDest() SearchSession

	// Commute runs probability calculations.
	Commute() CommuteService

	// Voice runs push-to-talk searches into the taxi session.
	Voice() VoiceService

	// Lookup answers one-shot queries with the active labels.
	Lookup() LookupService

	// Session returns the session for a domain, or nil.
	Session(d domain.SearchDomain) SearchSession

	// LoadDefaults renders the server's default subway station.
	LoadDefaults(ctx context.Context) error

	// ClearTaxi resets the taxi panel to its empty state.
	ClearTaxi()

	// Touch records user activity. Pings are throttled.
	Touch(ctx context.Context)

	// Subscribe registers fn to run after any session changes state.
	// fn runs on the goroutine that made the change.
	Subscribe(fn func(domain.SearchDomain))

	// Labels returns the active strings.
	Labels() *domain.Labels

	// SetLabels swaps the active strings.
	SetLabels(l *domain.Labels)
}
