package driven

import (
	"context"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// Backend is the transit and commute service behind the dashboard.
// Every method is one JSON round trip.
//
// Implementations return *domain.BackendError for ok:false replies and
// an error matching domain.ErrConnection for transport or decode failures.
// An empty result list with no error field is not an error.
type Backend interface {
	// SearchPlaces looks up destination candidates. The reply carries a
	// taxi estimate for the best match when the server could route it.
	SearchPlaces(ctx context.Context, query string) (*domain.PlaceSearch, error)

	// SearchBusStops looks up bus stop candidates.
	SearchBusStops(ctx context.Context, query string) ([]domain.BusStop, error)

	// BusArrivals fetches upcoming buses at a stop. nodeName may be empty.
	BusArrivals(ctx context.Context, nodeID, nodeName string) (*domain.BusArrivals, error)

	// SearchSubwayStations looks up subway station candidates.
	SearchSubwayStations(ctx context.Context, query string) ([]domain.SubwayStation, error)

	// SubwaySchedule fetches the departures of one station.
	SubwaySchedule(ctx context.Context, stationID string) (*domain.SubwaySchedule, error)

	// DefaultSubwayStation fetches the server-configured station and its
	// schedule. Station is nil when the server has none configured.
	DefaultSubwayStation(ctx context.Context) (*domain.DefaultStation, error)

	// VoiceDestination captures speech on the server and searches places
	// for the recognized text. A failed lookup still returns the result
	// alongside the error when any text was recognized.
	VoiceDestination(ctx context.Context, req domain.VoiceRequest) (*domain.VoiceResult, error)

	// CommuteProbability estimates per-mode on-time probabilities.
	CommuteProbability(ctx context.Context, req domain.CommuteRequest) (*domain.CommuteResponse, error)

	// Interaction records user activity. The reply is not inspected.
	Interaction(ctx context.Context) error
}
