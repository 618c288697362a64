package mcp

import (
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Lookup answers one-shot transit queries.
	Lookup driving.LookupService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
