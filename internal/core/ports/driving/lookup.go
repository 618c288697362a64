package driving

import (
	"context"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// LookupService answers one-shot transit queries without touching any
// session. Rendered panels use the active labels.
type LookupService interface {
	// Places returns the candidates for a place query of at least two characters.
	Places(ctx context.Context, query string) ([]domain.Place, error)

	// Taxi returns the rendered estimate for a chosen place.
	Taxi(ctx context.Context, place domain.Place) (domain.TaxiPanel, error)

	// BusStops returns the stops matching a non-empty query.
	BusStops(ctx context.Context, query string) ([]domain.BusStop, error)

	// BusArrivals returns the rendered arrivals at a stop.
	BusArrivals(ctx context.Context, stop domain.BusStop) (domain.BusPanel, error)

	// SubwayStations returns the stations matching a non-empty query.
	SubwayStations(ctx context.Context, query string) ([]domain.SubwayStation, error)

	// SubwaySchedule returns the rendered timetable of a station.
	SubwaySchedule(ctx context.Context, station domain.SubwayStation) (domain.SubwayPanel, error)

	// Commute validates the inputs and returns the rendered probability report.
	Commute(ctx context.Context, arriveHHMM string, dest domain.Destination) (*domain.CommuteReport, error)
}
