package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

func newTestServer(t *testing.T, l *mockLookup) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Lookup: l}, "")
	require.NoError(t, err)
	return server
}

func TestServer_handleSearchPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("returns candidates", func(t *testing.T) {
		server := newTestServer(t, &mockLookup{
			placesFunc: func(_ context.Context, q string) ([]domain.Place, error) {
				assert.Equal(t, "강남", q)
				return []domain.Place{{Name: "강남역", Address: "서울", Lat: 37.49, Lon: 127.02}}, nil
			},
		})

		_, out, err := server.handleSearchPlaces(ctx, nil, QueryInput{Query: "강남"})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, PlaceOutput{Name: "강남역", Address: "서울", Lat: 37.49, Lon: 127.02}, out.Places[0])
	})

	t.Run("short query error propagates", func(t *testing.T) {
		server := newTestServer(t, &mockLookup{
			placesFunc: func(context.Context, string) ([]domain.Place, error) {
				return nil, domain.ErrQueryTooShort
			},
		})

		_, _, err := server.handleSearchPlaces(ctx, nil, QueryInput{Query: "강"})

		assert.ErrorIs(t, err, domain.ErrQueryTooShort)
	})
}

func TestServer_handleTaxiEstimate(t *testing.T) {
	var got domain.Place
	server := newTestServer(t, &mockLookup{
		taxiFunc: func(_ context.Context, p domain.Place) (domain.TaxiPanel, error) {
			got = p
			return domain.TaxiPanel{Destination: p.Name, Duration: "23분"}, nil
		},
	})

	_, out, err := server.handleTaxiEstimate(context.Background(), nil, TaxiInput{Name: "강남역", Lat: 1, Lon: 2})

	require.NoError(t, err)
	assert.Equal(t, domain.Place{Name: "강남역", Lat: 1, Lon: 2}, got)
	assert.Equal(t, "23분", out.Duration)
}

func TestServer_handleBusTools(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockLookup{
		stopsFunc: func(context.Context, string) ([]domain.BusStop, error) {
			return []domain.BusStop{{NodeID: "N1", NodeName: "역삼역", NodeNo: "22001"}}, nil
		},
		arrivalsFunc: func(_ context.Context, s domain.BusStop) (domain.BusPanel, error) {
			return domain.BusPanel{StopName: s.NodeName + " (#" + s.NodeNo.String() + ")"}, nil
		},
	})

	_, stops, err := server.handleSearchBusStops(ctx, nil, QueryInput{Query: "역"})
	require.NoError(t, err)
	require.Equal(t, 1, stops.Count)
	assert.Equal(t, "22001", stops.Stops[0].NodeNo)

	_, panel, err := server.handleBusArrivals(ctx, nil, ArrivalsInput{NodeID: "N1", NodeName: "역삼역", NodeNo: "22001"})
	require.NoError(t, err)
	assert.Equal(t, "역삼역 (#22001)", panel.StopName)
}

func TestServer_handleSubwayTools(t *testing.T) {
	ctx := context.Background()
	var got domain.SubwayStation
	server := newTestServer(t, &mockLookup{
		stationsFunc: func(context.Context, string) ([]domain.SubwayStation, error) {
			return []domain.SubwayStation{{ID: "S1", Name: "강남", RouteName: "2호선"}}, nil
		},
		scheduleFunc: func(_ context.Context, st domain.SubwayStation) (domain.SubwayPanel, error) {
			got = st
			return domain.SubwayPanel{Station: st.Name}, nil
		},
	})

	_, stations, err := server.handleSearchSubwayStations(ctx, nil, QueryInput{Query: "강"})
	require.NoError(t, err)
	assert.Equal(t, StationOutput{ID: "S1", Name: "강남", Route: "2호선"}, stations.Stations[0])

	_, _, err = server.handleSubwaySchedule(ctx, nil, ScheduleInput{ID: "S1"})
	require.NoError(t, err)
	assert.Equal(t, "S1", got.Name, "missing name falls back to the id")
}

func TestServer_handleCommuteProbability(t *testing.T) {
	ctx := context.Background()

	t.Run("returns report", func(t *testing.T) {
		server := newTestServer(t, &mockLookup{
			commuteFunc: func(_ context.Context, arrive string, dest domain.Destination) (*domain.CommuteReport, error) {
				assert.Equal(t, "09:00", arrive)
				assert.Equal(t, domain.Destination{Name: "서면역", Lat: 35.1, Lon: 129.0}, dest)
				return &domain.CommuteReport{
					Summary: "summary",
					Ambient: domain.AmbientWarning,
					Lines:   []domain.ModeLine{{Mode: domain.ModeTaxi, Percent: "75%"}},
				}, nil
			},
		})

		_, out, err := server.handleCommuteProbability(ctx, nil,
			CommuteInput{Arrive: "09:00", Name: "서면역", Lat: 35.1, Lon: 129.0})

		require.NoError(t, err)
		assert.Equal(t, "warning", out.Ambient)
		assert.Equal(t, "75%", out.Modes[0].Percent)
	})

	t.Run("validation error propagates", func(t *testing.T) {
		server := newTestServer(t, &mockLookup{
			commuteFunc: func(context.Context, string, domain.Destination) (*domain.CommuteReport, error) {
				return nil, domain.ErrMissingDestination
			},
		})

		_, _, err := server.handleCommuteProbability(ctx, nil, CommuteInput{Arrive: "09:00"})

		assert.ErrorIs(t, err, domain.ErrMissingDestination)
	})
}
