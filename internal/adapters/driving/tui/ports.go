// Package tui provides the interactive terminal mirror page.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Dashboard owns every search session, the probability card and voice.
	Dashboard driving.Dashboard
}

// NewPorts creates a new Ports aggregate.
func NewPorts(dashboard driving.Dashboard) *Ports {
	return &Ports{Dashboard: dashboard}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dashboard == nil {
		return ErrMissingDashboard
	}
	return nil
}
