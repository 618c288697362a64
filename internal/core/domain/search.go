package domain

import (
	"strings"
	"unicode/utf8"
)

// SearchDomain tags which autocomplete box a query belongs to.
type SearchDomain string

// Available search domains. Each has its own session, cache and dropdown.
const (
	// DomainTaxi is the primary taxi destination picker.
	DomainTaxi SearchDomain = "taxi"

	// DomainBus is the bus stop picker.
	DomainBus SearchDomain = "bus"

	// DomainSubway is the subway station picker.
	DomainSubway SearchDomain = "subway"

	// DomainCommuteDest is the destination picker of the probability card.
	// It is independent of DomainTaxi.
	DomainCommuteDest SearchDomain = "commute-dest"
)

// AllDomains lists every search domain in display order.
func AllDomains() []SearchDomain {
	return []SearchDomain{DomainTaxi, DomainBus, DomainSubway, DomainCommuteDest}
}

// IsValid returns true if the domain is recognised.
func (d SearchDomain) IsValid() bool {
	switch d {
	case DomainTaxi, DomainBus, DomainSubway, DomainCommuteDest:
		return true
	default:
		return false
	}
}

// MinQueryLength returns the minimum trimmed query length, in characters,
// that may reach the backend. Place searches need 2, stop and station
// searches need 1.
func (d SearchDomain) MinQueryLength() int {
	switch d {
	case DomainBus, DomainSubway:
		return 1
	default:
		return 2
	}
}

// String returns the string representation.
func (d SearchDomain) String() string {
	return string(d)
}

// SearchQuery is a trimmed free-text query bound to a domain.
type SearchQuery struct {
	Text   string
	Domain SearchDomain
}

// NewSearchQuery trims text and tags it with the domain.
func NewSearchQuery(d SearchDomain, text string) SearchQuery {
	return SearchQuery{Text: strings.TrimSpace(text), Domain: d}
}

// Length returns the query length in characters.
func (q SearchQuery) Length() int {
	return utf8.RuneCountInString(q.Text)
}

// Searchable reports whether the query meets the domain threshold.
func (q SearchQuery) Searchable() bool {
	return q.Length() >= q.Domain.MinQueryLength()
}

// SessionState is the state of a domain search session.
type SessionState int

const (
	// StateIdle means no dropdown and no pending work.
	StateIdle SessionState = iota
	// StateDebouncing means a search is armed but has not fired.
	StateDebouncing
	// StateSearching means a search request is in flight.
	StateSearching
	// StateShowingResults means the dropdown is open over a current cache.
	StateShowingResults
)

// String returns the string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateSearching:
		return "searching"
	case StateShowingResults:
		return "showing_results"
	default:
		return "unknown"
	}
}

// DropdownItem is one rendered row of an autocomplete dropdown.
type DropdownItem struct {
	Title    string
	Subtitle string
}

// SessionView is a point-in-time copy of a session for rendering.
type SessionView struct {
	Domain SearchDomain
	State  SessionState

	// Input is the current text of the session's input box.
	Input string

	// Items mirrors the cached results, in backend order.
	Items []DropdownItem

	// Generation identifies the cache that produced Items.
	// Selections must quote it back.
	Generation uint64

	// Status is the session's status-area text.
	Status string
}

// DropdownOpen reports whether the dropdown is visible.
func (v SessionView) DropdownOpen() bool {
	return v.State == StateShowingResults && len(v.Items) > 0
}
