// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// SessionChanged is sent whenever a dashboard session changes state.
// The model re-reads the session view when it arrives.
type SessionChanged struct {
	Domain domain.SearchDomain
}

// SearchCompleted signals that an immediate search returned.
type SearchCompleted struct {
	Domain domain.SearchDomain
	Err    error
}

// SelectCompleted signals that a dropdown selection and its detail lookup finished.
type SelectCompleted struct {
	Domain domain.SearchDomain

	// Accepted is false when the selection quoted a stale dropdown.
	Accepted bool
	Err      error
}

// CommuteCompleted signals that a probability calculation finished.
type CommuteCompleted struct {
	Report *domain.CommuteReport
	Err    error
}

// VoiceCompleted signals that a voice capture finished.
type VoiceCompleted struct {
	Err error
}

// DefaultsLoaded signals that the default subway station was fetched.
type DefaultsLoaded struct {
	Err error
}

// Focus identifies which input currently receives keystrokes.
type Focus int

const (
	// FocusTaxi is the taxi destination input.
	FocusTaxi Focus = iota
	// FocusBus is the bus stop input.
	FocusBus
	// FocusSubway is the subway station input.
	FocusSubway
	// FocusCommuteDest is the destination input of the probability card.
	FocusCommuteDest
	// FocusArrival is the arrival time input of the probability card.
	FocusArrival

	focusCount
)

// Next returns the focus after f, wrapping around.
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the focus before f, wrapping around.
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// Domain returns the search domain of f. The arrival input has none.
func (f Focus) Domain() (domain.SearchDomain, bool) {
	switch f {
	case FocusTaxi:
		return domain.DomainTaxi, true
	case FocusBus:
		return domain.DomainBus, true
	case FocusSubway:
		return domain.DomainSubway, true
	case FocusCommuteDest:
		return domain.DomainCommuteDest, true
	default:
		return "", false
	}
}

// FocusFor returns the focus owning d.
func FocusFor(d domain.SearchDomain) Focus {
	switch d {
	case domain.DomainBus:
		return FocusBus
	case domain.DomainSubway:
		return FocusSubway
	case domain.DomainCommuteDest:
		return FocusCommuteDest
	default:
		return FocusTaxi
	}
}

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusTaxi:
		return "taxi"
	case FocusBus:
		return "bus"
	case FocusSubway:
		return "subway"
	case FocusCommuteDest:
		return "commute-dest"
	case FocusArrival:
		return "arrival"
	default:
		return "unknown"
	}
}
