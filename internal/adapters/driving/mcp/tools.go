package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// QueryInput is the input schema for the search tools.
type QueryInput struct {
	Query string `json:"query" jsonschema:"free-text name to look up"`
}

// PlaceOutput is one place candidate.
type PlaceOutput struct {
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// PlacesOutput is the output schema for search_places.
type PlacesOutput struct {
	Places []PlaceOutput `json:"places"`
	Count  int           `json:"count"`
}

// TaxiInput is the input schema for taxi_estimate.
type TaxiInput struct {
	Name string  `json:"name" jsonschema:"place name as returned by search_places"`
	Lat  float64 `json:"lat" jsonschema:"place latitude"`
	Lon  float64 `json:"lon" jsonschema:"place longitude"`
}

// StopOutput is one bus stop candidate.
type StopOutput struct {
	NodeID   string `json:"node_id"`
	NodeName string `json:"node_name,omitempty"`
	NodeNo   string `json:"node_no,omitempty"`
}

// StopsOutput is the output schema for search_bus_stops.
type StopsOutput struct {
	Stops []StopOutput `json:"stops"`
	Count int          `json:"count"`
}

// ArrivalsInput is the input schema for bus_arrivals.
type ArrivalsInput struct {
	NodeID   string `json:"node_id" jsonschema:"stop id as returned by search_bus_stops"`
	NodeName string `json:"node_name,omitempty" jsonschema:"stop name, used for display"`
	NodeNo   string `json:"node_no,omitempty" jsonschema:"stop number, used for display"`
}

// StationOutput is one subway station candidate.
type StationOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Route string `json:"route,omitempty"`
}

// StationsOutput is the output schema for search_subway_stations.
type StationsOutput struct {
	Stations []StationOutput `json:"stations"`
	Count    int             `json:"count"`
}

// ScheduleInput is the input schema for subway_schedule.
type ScheduleInput struct {
	ID    string `json:"id" jsonschema:"station id as returned by search_subway_stations"`
	Name  string `json:"name,omitempty" jsonschema:"station name, used for display"`
	Route string `json:"route,omitempty" jsonschema:"line name, used for display"`
}

// CommuteInput is the input schema for commute_probability.
type CommuteInput struct {
	Arrive string  `json:"arrive" jsonschema:"desired arrival time as HH:MM"`
	Name   string  `json:"name,omitempty" jsonschema:"destination name"`
	Lat    float64 `json:"lat" jsonschema:"destination latitude, non-zero"`
	Lon    float64 `json:"lon" jsonschema:"destination longitude, non-zero"`
}

// CommuteOutput is the output schema for commute_probability.
type CommuteOutput struct {
	Summary string            `json:"summary"`
	Ambient string            `json:"ambient"`
	Modes   []domain.ModeLine `json:"modes"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_places",
		Description: "Find destination candidates with coordinates",
	}, s.handleSearchPlaces)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "taxi_estimate",
		Description: "Estimate taxi duration, fare and distance to a place",
	}, s.handleTaxiEstimate)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_bus_stops",
		Description: "Find bus stops by name",
	}, s.handleSearchBusStops)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bus_arrivals",
		Description: "List upcoming bus arrivals at a stop",
	}, s.handleBusArrivals)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_subway_stations",
		Description: "Find subway stations by name",
	}, s.handleSearchSubwayStations)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "subway_schedule",
		Description: "Show the next departures in both directions at a station",
	}, s.handleSubwaySchedule)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "commute_probability",
		Description: "Estimate the chance of arriving on time by taxi, bus and subway",
	}, s.handleCommuteProbability)
}

func (s *Server) handleSearchPlaces(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, PlacesOutput, error) {
	places, err := s.ports.Lookup.Places(ctx, input.Query)
	if err != nil {
		return nil, PlacesOutput{}, err
	}

	output := PlacesOutput{
		Places: make([]PlaceOutput, len(places)),
		Count:  len(places),
	}
	for i, p := range places {
		output.Places[i] = PlaceOutput{Name: p.Name, Address: p.Address, Lat: p.Lat, Lon: p.Lon}
	}
	return nil, output, nil
}

func (s *Server) handleTaxiEstimate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TaxiInput,
) (*mcp.CallToolResult, domain.TaxiPanel, error) {
	panel, err := s.ports.Lookup.Taxi(ctx, domain.Place{Name: input.Name, Lat: input.Lat, Lon: input.Lon})
	if err != nil {
		return nil, domain.TaxiPanel{}, err
	}
	return nil, panel, nil
}

func (s *Server) handleSearchBusStops(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, StopsOutput, error) {
	stops, err := s.ports.Lookup.BusStops(ctx, input.Query)
	if err != nil {
		return nil, StopsOutput{}, err
	}

	output := StopsOutput{
		Stops: make([]StopOutput, len(stops)),
		Count: len(stops),
	}
	for i, st := range stops {
		output.Stops[i] = StopOutput{NodeID: st.NodeID, NodeName: st.NodeName, NodeNo: st.NodeNo.String()}
	}
	return nil, output, nil
}

func (s *Server) handleBusArrivals(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ArrivalsInput,
) (*mcp.CallToolResult, domain.BusPanel, error) {
	stop := domain.BusStop{
		NodeID:   input.NodeID,
		NodeName: input.NodeName,
		NodeNo:   domain.FlexString(input.NodeNo),
	}
	panel, err := s.ports.Lookup.BusArrivals(ctx, stop)
	if err != nil {
		return nil, domain.BusPanel{}, err
	}
	return nil, panel, nil
}

func (s *Server) handleSearchSubwayStations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, StationsOutput, error) {
	stations, err := s.ports.Lookup.SubwayStations(ctx, input.Query)
	if err != nil {
		return nil, StationsOutput{}, err
	}

	output := StationsOutput{
		Stations: make([]StationOutput, len(stations)),
		Count:    len(stations),
	}
	for i, st := range stations {
		output.Stations[i] = StationOutput{ID: st.ID, Name: st.Name, Route: st.RouteName}
	}
	return nil, output, nil
}

func (s *Server) handleSubwaySchedule(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScheduleInput,
) (*mcp.CallToolResult, domain.SubwayPanel, error) {
	station := domain.SubwayStation{ID: input.ID, Name: input.Name, RouteName: input.Route}
	if station.Name == "" {
		station.Name = input.ID
	}
	panel, err := s.ports.Lookup.SubwaySchedule(ctx, station)
	if err != nil {
		return nil, domain.SubwayPanel{}, err
	}
	return nil, panel, nil
}

func (s *Server) handleCommuteProbability(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CommuteInput,
) (*mcp.CallToolResult, CommuteOutput, error) {
	dest := domain.Destination{Name: input.Name, Lat: input.Lat, Lon: input.Lon}
	report, err := s.ports.Lookup.Commute(ctx, input.Arrive, dest)
	if err != nil {
		return nil, CommuteOutput{}, err
	}
	return nil, CommuteOutput{
		Summary: report.Summary,
		Ambient: report.Ambient.String(),
		Modes:   report.Lines,
	}, nil
}
