package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
)

// Ensure Lookup implements the interface.
var _ driving.LookupService = (*Lookup)(nil)

// Stop and station searches return static data and are reused for
// StaticSearchTTL. Live panels are never cached.
const (
	StaticSearchTTL     = 10 * time.Minute
	staticSearchCleanup = 20 * time.Minute
)

// Lookup runs stateless queries against the backend.
// It shares thresholds, validation and rendering with the sessions.
type Lookup struct {
	backend driven.Backend
	labels  *LabelBox
	static  *cache.Cache
}

// NewLookup creates a Lookup. A nil labels box uses Korean.
func NewLookup(backend driven.Backend, labels *LabelBox) *Lookup {
	if labels == nil {
		labels = NewLabelBox(nil)
	}
	return &Lookup{
		backend: backend,
		labels:  labels,
		static:  cache.New(StaticSearchTTL, staticSearchCleanup),
	}
}

// Places returns the candidates for a place query.
func (l *Lookup) Places(ctx context.Context, query string) ([]domain.Place, error) {
	q := domain.NewSearchQuery(domain.DomainTaxi, query)
	if !q.Searchable() {
		return nil, domain.ErrQueryTooShort
	}
	res, err := l.backend.SearchPlaces(ctx, q.Text)
	if err != nil {
		return nil, err
	}
	return res.Places, nil
}

// Taxi re-queries by place name and renders the attached estimate.
func (l *Lookup) Taxi(ctx context.Context, place domain.Place) (domain.TaxiPanel, error) {
	return l.taxi(ctx, place, l.labels.Get())
}

func (l *Lookup) taxi(ctx context.Context, place domain.Place, labels *domain.Labels) (domain.TaxiPanel, error) {
	res, err := l.backend.SearchPlaces(ctx, place.Name)
	if err != nil {
		return domain.TaxiPanel{}, err
	}
	return RenderTaxi(labels, place, res.Taxi), nil
}

// BusStops returns the stops matching query.
func (l *Lookup) BusStops(ctx context.Context, query string) ([]domain.BusStop, error) {
	q := domain.NewSearchQuery(domain.DomainBus, query)
	if !q.Searchable() {
		return nil, domain.ErrQueryTooShort
	}
	return cached(l.static, "bus:"+q.Text, func() ([]domain.BusStop, error) {
		return l.backend.SearchBusStops(ctx, q.Text)
	})
}

// BusArrivals renders the arrivals at stop.
func (l *Lookup) BusArrivals(ctx context.Context, stop domain.BusStop) (domain.BusPanel, error) {
	return l.bus(ctx, stop, l.labels.Get())
}

func (l *Lookup) bus(ctx context.Context, stop domain.BusStop, labels *domain.Labels) (domain.BusPanel, error) {
	arr, err := l.backend.BusArrivals(ctx, stop.NodeID, stop.NodeName)
	if err != nil {
		return domain.BusPanel{}, err
	}
	return RenderBus(labels, stop, arr), nil
}

// SubwayStations returns the stations matching query.
func (l *Lookup) SubwayStations(ctx context.Context, query string) ([]domain.SubwayStation, error) {
	q := domain.NewSearchQuery(domain.DomainSubway, query)
	if !q.Searchable() {
		return nil, domain.ErrQueryTooShort
	}
	return cached(l.static, "subway:"+q.Text, func() ([]domain.SubwayStation, error) {
		return l.backend.SearchSubwayStations(ctx, q.Text)
	})
}

// SubwaySchedule renders the timetable of station.
func (l *Lookup) SubwaySchedule(ctx context.Context, station domain.SubwayStation) (domain.SubwayPanel, error) {
	return l.subway(ctx, station, l.labels.Get())
}

func (l *Lookup) subway(
	ctx context.Context, station domain.SubwayStation, labels *domain.Labels,
) (domain.SubwayPanel, error) {
	sched, err := l.backend.SubwaySchedule(ctx, station.ID)
	if err != nil {
		return domain.SubwayPanel{}, err
	}
	return RenderSubway(labels, station, sched), nil
}

// Commute validates the inputs and renders the probability report.
// Validation failures never reach the backend.
func (l *Lookup) Commute(ctx context.Context, arriveHHMM string, dest domain.Destination) (*domain.CommuteReport, error) {
	labels := l.labels.Get()
	arrive := strings.TrimSpace(arriveHHMM)
	if err := validateCommute(arrive, dest); err != nil {
		return nil, err
	}
	if dest.Name == "" {
		dest.Name = labels.DefaultDestination
	}
	resp, err := l.backend.CommuteProbability(ctx, domain.CommuteRequest{ArriveHHMM: arrive, Dest: dest})
	if err != nil {
		return nil, err
	}
	report := RenderCommute(labels, resp)
	return &report, nil
}

// cached returns a copy of the list stored under key, or fetches and stores
// it. Errors are not cached.
func cached[T any](c *cache.Cache, key string, fetch func() ([]T, error)) ([]T, error) {
	if v, ok := c.Get(key); ok {
		return slices.Clone(v.([]T)), nil
	}
	items, err := fetch()
	if err != nil {
		return nil, err
	}
	c.SetDefault(key, slices.Clone(items))
	return items, nil
}
