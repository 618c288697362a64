package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
)

// Ensure MockBackend implements the interface.
var _ driven.Backend = (*MockBackend)(nil)

// MockBackend implements driven.Backend with overridable funcs.
// Unset funcs return empty replies. Calls are recorded by method name.
type MockBackend struct {
	SearchPlacesFunc         func(ctx context.Context, query string) (*domain.PlaceSearch, error)
	SearchBusStopsFunc       func(ctx context.Context, query string) ([]domain.BusStop, error)
	BusArrivalsFunc          func(ctx context.Context, nodeID, nodeName string) (*domain.BusArrivals, error)
	SearchSubwayStationsFunc func(ctx context.Context, query string) ([]domain.SubwayStation, error)
	SubwayScheduleFunc       func(ctx context.Context, stationID string) (*domain.SubwaySchedule, error)
	DefaultSubwayStationFunc func(ctx context.Context) (*domain.DefaultStation, error)
	VoiceDestinationFunc     func(ctx context.Context, req domain.VoiceRequest) (*domain.VoiceResult, error)
	CommuteProbabilityFunc   func(ctx context.Context, req domain.CommuteRequest) (*domain.CommuteResponse, error)
	InteractionFunc          func(ctx context.Context) error

	mu    sync.Mutex
	calls []string
}

func (m *MockBackend) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the recorded method names in call order.
func (m *MockBackend) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times name was called.
func (m *MockBackend) CallCount(name string) int {
	n := 0
	for _, c := range m.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (m *MockBackend) SearchPlaces(ctx context.Context, query string) (*domain.PlaceSearch, error) {
	m.record("SearchPlaces")
	if m.SearchPlacesFunc != nil {
		return m.SearchPlacesFunc(ctx, query)
	}
	return &domain.PlaceSearch{}, nil
}

func (m *MockBackend) SearchBusStops(ctx context.Context, query string) ([]domain.BusStop, error) {
	m.record("SearchBusStops")
	if m.SearchBusStopsFunc != nil {
		return m.SearchBusStopsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockBackend) BusArrivals(ctx context.Context, nodeID, nodeName string) (*domain.BusArrivals, error) {
	m.record("BusArrivals")
	if m.BusArrivalsFunc != nil {
		return m.BusArrivalsFunc(ctx, nodeID, nodeName)
	}
	return &domain.BusArrivals{}, nil
}

func (m *MockBackend) SearchSubwayStations(ctx context.Context, query string) ([]domain.SubwayStation, error) {
	m.record("SearchSubwayStations")
	if m.SearchSubwayStationsFunc != nil {
		return m.SearchSubwayStationsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockBackend) SubwaySchedule(ctx context.Context, stationID string) (*domain.SubwaySchedule, error) {
	m.record("SubwaySchedule")
	if m.SubwayScheduleFunc != nil {
		return m.SubwayScheduleFunc(ctx, stationID)
	}
	return &domain.SubwaySchedule{}, nil
}

func (m *MockBackend) DefaultSubwayStation(ctx context.Context) (*domain.DefaultStation, error) {
	m.record("DefaultSubwayStation")
	if m.DefaultSubwayStationFunc != nil {
		return m.DefaultSubwayStationFunc(ctx)
	}
	return &domain.DefaultStation{}, nil
}

func (m *MockBackend) VoiceDestination(ctx context.Context, req domain.VoiceRequest) (*domain.VoiceResult, error) {
	m.record("VoiceDestination")
	if m.VoiceDestinationFunc != nil {
		return m.VoiceDestinationFunc(ctx, req)
	}
	return &domain.VoiceResult{}, nil
}

func (m *MockBackend) CommuteProbability(
	ctx context.Context, req domain.CommuteRequest,
) (*domain.CommuteResponse, error) {
	m.record("CommuteProbability")
	if m.CommuteProbabilityFunc != nil {
		return m.CommuteProbabilityFunc(ctx, req)
	}
	return &domain.CommuteResponse{}, nil
}

func (m *MockBackend) Interaction(ctx context.Context) error {
	m.record("Interaction")
	if m.InteractionFunc != nil {
		return m.InteractionFunc(ctx)
	}
	return nil
}

// Fixtures shared by the service tests.

func ptrInt(v int) *int { return &v }

func ptrFloat(v float64) *float64 { return &v }

func ptrBool(v bool) *bool { return &v }

var gangnamPlaces = []domain.Place{
	{Name: "강남역", Address: "서울 강남구 강남대로 396", Lat: 37.4979, Lon: 127.0276},
	{Name: "강남구청", Address: "서울 강남구 학동로 426", Lat: 37.5172, Lon: 127.0473},
}
