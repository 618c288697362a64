package mcp

import (
	"context"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
)

var _ driving.LookupService = (*mockLookup)(nil)

// mockLookup is a mock implementation of driving.LookupService.
// Unset funcs return zero values.
type mockLookup struct {
	placesFunc   func(ctx context.Context, query string) ([]domain.Place, error)
	taxiFunc     func(ctx context.Context, place domain.Place) (domain.TaxiPanel, error)
	stopsFunc    func(ctx context.Context, query string) ([]domain.BusStop, error)
	arrivalsFunc func(ctx context.Context, stop domain.BusStop) (domain.BusPanel, error)
	stationsFunc func(ctx context.Context, query string) ([]domain.SubwayStation, error)
	scheduleFunc func(ctx context.Context, station domain.SubwayStation) (domain.SubwayPanel, error)
	commuteFunc  func(ctx context.Context, arrive string, dest domain.Destination) (*domain.CommuteReport, error)
}

func (m *mockLookup) Places(ctx context.Context, query string) ([]domain.Place, error) {
	if m.placesFunc != nil {
		return m.placesFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockLookup) Taxi(ctx context.Context, place domain.Place) (domain.TaxiPanel, error) {
	if m.taxiFunc != nil {
		return m.taxiFunc(ctx, place)
	}
	return domain.TaxiPanel{}, nil
}

func (m *mockLookup) BusStops(ctx context.Context, query string) ([]domain.BusStop, error) {
	if m.stopsFunc != nil {
		return m.stopsFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockLookup) BusArrivals(ctx context.Context, stop domain.BusStop) (domain.BusPanel, error) {
	if m.arrivalsFunc != nil {
		return m.arrivalsFunc(ctx, stop)
	}
	return domain.BusPanel{}, nil
}

func (m *mockLookup) SubwayStations(ctx context.Context, query string) ([]domain.SubwayStation, error) {
	if m.stationsFunc != nil {
		return m.stationsFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockLookup) SubwaySchedule(ctx context.Context, station domain.SubwayStation) (domain.SubwayPanel, error) {
	if m.scheduleFunc != nil {
		return m.scheduleFunc(ctx, station)
	}
	return domain.SubwayPanel{}, nil
}

func (m *mockLookup) Commute(
	ctx context.Context, arrive string, dest domain.Destination,
) (*domain.CommuteReport, error) {
	if m.commuteFunc != nil {
		return m.commuteFunc(ctx, arrive, dest)
	}
	return &domain.CommuteReport{}, nil
}
