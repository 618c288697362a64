package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// Ensure CommuteAggregator implements the interface.
var _ driving.CommuteService = (*CommuteAggregator)(nil)

// CommuteAggregator turns per-mode probability estimates into the
// probability card and the ambient status.
type CommuteAggregator struct {
	backend driven.Backend
	labels  *LabelBox
	ambient *AmbientHolder
	notify  func()
	log     logger.Scoped

	mu     sync.Mutex
	dest   domain.Destination
	token  uint64
	report *domain.CommuteReport
	status string
}

// NewCommuteAggregator creates an aggregator writing to ambient.
// notify is optional and runs after every state change.
func NewCommuteAggregator(
	backend driven.Backend, labels *LabelBox, ambient *AmbientHolder, notify func(),
) *CommuteAggregator {
	if labels == nil {
		labels = NewLabelBox(nil)
	}
	if ambient == nil {
		ambient = NewAmbientHolder()
	}
	return &CommuteAggregator{
		backend: backend,
		labels:  labels,
		ambient: ambient,
		notify:  notify,
		log:     logger.For("commute"),
	}
}

// SetDestination stores the place picked in the probability card.
// It stays until the next selection overwrites it.
func (a *CommuteAggregator) SetDestination(p domain.Place) {
	a.mu.Lock()
	a.dest = domain.Destination{Name: p.Name, Lat: p.Lat, Lon: p.Lon}
	a.mu.Unlock()
	a.log.Debug("destination %q (%f,%f)", p.Name, p.Lat, p.Lon)
}

// Destination returns the destination the next calculation will use.
func (a *CommuteAggregator) Destination() domain.Destination {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dest
}

// Report returns the latest report and status text.
func (a *CommuteAggregator) Report() (*domain.CommuteReport, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.report, a.status
}

// Ambient returns the current page-wide status.
func (a *CommuteAggregator) Ambient() domain.AmbientStatus {
	return a.ambient.Get()
}

// Calculate validates the inputs and requests per-mode probabilities.
// On success the ambient status is replaced; on failure it is kept.
func (a *CommuteAggregator) Calculate(ctx context.Context, arriveHHMM string) (*domain.CommuteReport, error) {
	labels := a.labels.Get()
	arrive := strings.TrimSpace(arriveHHMM)

	a.mu.Lock()
	dest := a.dest
	if err := validateCommute(arrive, dest); err != nil {
		a.status = validationStatus(labels, err)
		a.mu.Unlock()
		a.fire()
		return nil, err
	}
	if dest.Name == "" {
		dest.Name = labels.DefaultDestination
	}
	a.token++
	token := a.token
	a.status = labels.Calculating
	a.mu.Unlock()
	a.fire()

	logger.Section("Commute Probability")
	a.log.Debug("arrive=%s dest=%q token=%d", arrive, dest.Name, token)
	resp, err := a.backend.CommuteProbability(ctx, domain.CommuteRequest{ArriveHHMM: arrive, Dest: dest})

	a.mu.Lock()
	if token != a.token {
		a.mu.Unlock()
		a.log.Debug("dropped stale probability token=%d", token)
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		a.status = probabilityErrorStatus(labels, err)
		a.mu.Unlock()
		a.fire()
		a.log.Warn("probability request failed: %v", err)
		return nil, err
	}
	report := RenderCommute(labels, resp)
	a.report = &report
	a.status = ""
	a.ambient.replace(report.Ambient)
	a.mu.Unlock()
	a.fire()

	a.log.Info("ambient=%s", report.Ambient)
	return &report, nil
}

func (a *CommuteAggregator) fire() {
	if a.notify != nil {
		a.notify()
	}
}

func validateCommute(arrive string, dest domain.Destination) error {
	if arrive == "" {
		return domain.ErrMissingArrivalTime
	}
	if _, err := time.Parse("15:04", arrive); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidArrivalTime, arrive)
	}
	if dest.Lat == 0 || dest.Lon == 0 {
		return domain.ErrMissingDestination
	}
	return nil
}

func validationStatus(l *domain.Labels, err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingArrivalTime):
		return l.SelectArrivalTime
	case errors.Is(err, domain.ErrInvalidArrivalTime):
		return l.InvalidArrivalTime
	default:
		return l.SelectDestination
	}
}

func probabilityErrorStatus(l *domain.Labels, err error) string {
	if msg, ok := domain.BackendMessage(err); ok {
		return fmt.Sprintf(l.ErrorFormat, msg)
	}
	return fmt.Sprintf(l.RequestFailedFormat, domain.CauseText(err))
}
