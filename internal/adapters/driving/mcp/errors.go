// Package mcp provides an MCP (Model Context Protocol) server adapter for the mirror.
// It lets AI assistants query places, bus arrivals, subway timetables and
// arrival probabilities through the same services as the dashboard.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
