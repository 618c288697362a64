package driving

import (
	"context"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// CommuteService computes the on-time report for the chosen destination.
type CommuteService interface {
	// Calculate validates the arrival time (HH:MM) and the selected
	// destination, then requests per-mode probabilities. Validation
	// failures never reach the backend.
	Calculate(ctx context.Context, arriveHHMM string) (*domain.CommuteReport, error)

	// Destination returns the destination the next calculation will use.
	Destination() domain.Destination

	// Report returns the latest report and status text.
	Report() (report *domain.CommuteReport, status string)

	// Ambient returns the current page-wide status.
	Ambient() domain.AmbientStatus
}
