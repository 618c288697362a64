// Package domain defines the core entities of the smart mirror dashboard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Place, BusStop, SubwayStation: records returned by autocomplete searches
//   - TaxiInfo, BusArrivals, SubwaySchedule: detail responses for a selection
//   - ProbabilityResult, CommuteResponse: on-time estimates per travel mode
//   - AmbientStatus: the page-wide good/warning/critical signal
//   - TaxiPanel, BusPanel, SubwayPanel, CommuteReport: render view-models
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
