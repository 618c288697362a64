package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for mirror resources.
	uriScheme = "smartmirror://"
)

// registerResources registers the live panel templates.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "bus/{nodeId}/arrivals",
		Name:        "bus-arrivals",
		Description: "Upcoming arrivals at a bus stop",
		MIMEType:    "application/json",
	}, s.handleBusResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "subway/{stationId}/schedule",
		Name:        "subway-schedule",
		Description: "Next departures at a subway station",
		MIMEType:    "application/json",
	}, s.handleSubwayResource)
}

// handleBusResource renders the arrivals panel of smartmirror://bus/{nodeId}/arrivals.
func (s *Server) handleBusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	nodeID := extractID(req.Params.URI, "bus/", "/arrivals")
	if nodeID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	panel, err := s.ports.Lookup.BusArrivals(ctx, domain.BusStop{NodeID: nodeID})
	if err != nil {
		return nil, fmt.Errorf("loading arrivals: %w", err)
	}
	return jsonResource(req.Params.URI, panel)
}

// handleSubwayResource renders the timetable of smartmirror://subway/{stationId}/schedule.
func (s *Server) handleSubwayResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stationID := extractID(req.Params.URI, "subway/", "/schedule")
	if stationID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	panel, err := s.ports.Lookup.SubwaySchedule(ctx, domain.SubwayStation{ID: stationID, Name: stationID})
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	return jsonResource(req.Params.URI, panel)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractID returns the segment between uriScheme+prefix and suffix,
// or "" when the URI does not have that shape.
func extractID(uri, prefix, suffix string) string {
	prefix = uriScheme + prefix
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	rest := strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(rest, suffix) {
		return ""
	}
	id := strings.TrimSuffix(rest, suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
