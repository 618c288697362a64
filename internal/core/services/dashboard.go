package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
	"github.com/custodia-labs/smartmirror-cli/internal/debounce"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// Ensure Dashboard implements the interface.
var _ driving.Dashboard = (*Dashboard)(nil)

// DefaultInteractionInterval is the minimum gap between activity pings.
const DefaultInteractionInterval = 5 * time.Second

// DashboardConfig configures a Dashboard.
type DashboardConfig struct {
	Backend driven.Backend

	// Labels is the initial locale. Nil uses Korean.
	Labels *domain.Labels

	// Debounce is the search quiet interval. Zero uses DefaultDebounce.
	Debounce time.Duration

	// After arms debounce timers. Nil uses real timers.
	After debounce.AfterFunc

	// Context is the parent of debounced searches.
	Context context.Context

	Voice domain.VoiceRequest

	// InteractionInterval throttles activity pings. Zero uses the default.
	InteractionInterval time.Duration
}

// Dashboard is the controller owning every session of the mirror page.
// Sessions never share caches; the ambient status lives only here.
type Dashboard struct {
	backend driven.Backend
	labels  *LabelBox
	lookup  *Lookup
	ambient *AmbientHolder
	log     logger.Scoped

	taxi        *Session[domain.Place, domain.TaxiPanel]
	bus         *Session[domain.BusStop, domain.BusPanel]
	subway      *Session[domain.SubwayStation, domain.SubwayPanel]
	commuteDest *Session[domain.Place, struct{}]
	commute     *CommuteAggregator
	voice       *VoiceSession

	ping    *rate.Sometimes
	pingsWG sync.WaitGroup

	subMu sync.RWMutex
	subs  []func(domain.SearchDomain)
}

// NewDashboard wires the four sessions, the aggregator and the voice session.
func NewDashboard(cfg DashboardConfig) *Dashboard {
	interval := cfg.InteractionInterval
	if interval <= 0 {
		interval = DefaultInteractionInterval
	}
	d := &Dashboard{
		backend: cfg.Backend,
		labels:  NewLabelBox(cfg.Labels),
		ambient: NewAmbientHolder(),
		log:     logger.For("dashboard"),
		ping:    &rate.Sometimes{Interval: interval},
	}
	d.lookup = NewLookup(cfg.Backend, d.labels)

	d.taxi = NewSession(SessionConfig[domain.Place, domain.TaxiPanel]{
		Domain:  domain.DomainTaxi,
		Delay:   cfg.Debounce,
		Search:  d.searchPlaces,
		Detail:  d.lookup.taxi,
		Item:    placeItem,
		Labels:  d.labels,
		After:   cfg.After,
		Context: cfg.Context,
		Notify:  d.publish,
	})
	d.bus = NewSession(SessionConfig[domain.BusStop, domain.BusPanel]{
		Domain:  domain.DomainBus,
		Delay:   cfg.Debounce,
		Search:  cfg.Backend.SearchBusStops,
		Detail:  d.lookup.bus,
		Item:    d.stopItem,
		Labels:  d.labels,
		After:   cfg.After,
		Context: cfg.Context,
		Notify:  d.publish,
	})
	d.subway = NewSession(SessionConfig[domain.SubwayStation, domain.SubwayPanel]{
		Domain:  domain.DomainSubway,
		Delay:   cfg.Debounce,
		Search:  cfg.Backend.SearchSubwayStations,
		Detail:  d.lookup.subway,
		Item:    stationItem,
		Labels:  d.labels,
		After:   cfg.After,
		Context: cfg.Context,
		Notify:  d.publish,
	})
	d.commute = NewCommuteAggregator(cfg.Backend, d.labels, d.ambient, func() {
		d.publish(domain.DomainCommuteDest)
	})
	d.commuteDest = NewSession(SessionConfig[domain.Place, struct{}]{
		Domain:    domain.DomainCommuteDest,
		Delay:     cfg.Debounce,
		Search:    d.searchPlaces,
		Item:      placeItem,
		KeepInput: func(p domain.Place) string { return p.Name },
		OnSelect:  d.commute.SetDestination,
		Labels:    d.labels,
		After:     cfg.After,
		Context:   cfg.Context,
		Notify:    d.publish,
	})
	d.voice = NewVoiceSession(cfg.Backend, d.taxi, d.labels, cfg.Voice)
	return d
}

// Taxi is the primary destination picker.
func (d *Dashboard) Taxi() driving.PanelSession[domain.TaxiPanel] { return d.taxi }

// Bus is the bus stop picker.
func (d *Dashboard) Bus() driving.PanelSession[domain.BusPanel] { return d.bus }

// Subway is the subway station picker.
func (d *Dashboard) Subway() driving.PanelSession[domain.SubwayPanel] { return d.subway }

// CommuteDest is the destination picker of the probability card.
func (d *Dashboard) CommuteDest() driving.SearchSession { return d.commuteDest }

// Commute runs probability calculations.
func (d *Dashboard) Commute() driving.CommuteService { return d.commute }

// Voice runs push-to-talk searches into the taxi session.
func (d *Dashboard) Voice() driving.VoiceService { return d.voice }

// Lookup answers one-shot queries with the dashboard's labels.
func (d *Dashboard) Lookup() driving.LookupService { return d.lookup }

// Session returns the session for a domain, or nil.
func (d *Dashboard) Session(sd domain.SearchDomain) driving.SearchSession {
	switch sd {
	case domain.DomainTaxi:
		return d.taxi
	case domain.DomainBus:
		return d.bus
	case domain.DomainSubway:
		return d.subway
	case domain.DomainCommuteDest:
		return d.commuteDest
	default:
		return nil
	}
}

// LoadDefaults renders the server's default subway station.
func (d *Dashboard) LoadDefaults(ctx context.Context) error {
	res, err := d.backend.DefaultSubwayStation(ctx)
	if err != nil {
		d.log.Warn("default station: %v", err)
		d.subway.SetStatus(d.labels.Get().StationLoadFailed)
		return err
	}
	if res == nil || res.Station == nil {
		d.log.Debug("no default station configured")
		return nil
	}
	d.subway.SetPanel(RenderSubway(d.labels.Get(), *res.Station, &res.Schedule))
	return nil
}

// ClearTaxi resets the taxi panel to its empty state.
func (d *Dashboard) ClearTaxi() {
	d.taxi.ClearPanel()
}

// Touch records user activity. At most one ping is sent per interval;
// the ping is not awaited and its reply is ignored.
func (d *Dashboard) Touch(ctx context.Context) {
	d.ping.Do(func() {
		d.pingsWG.Add(1)
		go func() {
			defer d.pingsWG.Done()
			if err := d.backend.Interaction(context.WithoutCancel(ctx)); err != nil {
				d.log.Debug("interaction ping: %v", err)
			}
		}()
	})
}

// WaitPings blocks until every sent activity ping has returned.
func (d *Dashboard) WaitPings() {
	d.pingsWG.Wait()
}

// Subscribe registers fn to run after any session changes state.
func (d *Dashboard) Subscribe(fn func(domain.SearchDomain)) {
	d.subMu.Lock()
	defer d.subMu.Unlock()
	d.subs = append(d.subs, fn)
}

// Labels returns the active strings.
func (d *Dashboard) Labels() *domain.Labels {
	return d.labels.Get()
}

// SetLabels swaps the active strings for every session.
func (d *Dashboard) SetLabels(l *domain.Labels) {
	d.labels.Set(l)
	d.log.Info("locale=%s", d.labels.Get().Locale)
	for _, sd := range domain.AllDomains() {
		d.publish(sd)
	}
}

func (d *Dashboard) publish(sd domain.SearchDomain) {
	d.subMu.RLock()
	subs := make([]func(domain.SearchDomain), len(d.subs))
	copy(subs, d.subs)
	d.subMu.RUnlock()
	for _, fn := range subs {
		fn(sd)
	}
}

func (d *Dashboard) searchPlaces(ctx context.Context, q string) ([]domain.Place, error) {
	res, err := d.backend.SearchPlaces(ctx, q)
	if err != nil {
		return nil, err
	}
	return res.Places, nil
}

func placeItem(p domain.Place) domain.DropdownItem {
	return domain.DropdownItem{Title: p.Name, Subtitle: p.Address}
}

func (d *Dashboard) stopItem(s domain.BusStop) domain.DropdownItem {
	item := domain.DropdownItem{Title: s.NodeName}
	if item.Title == "" {
		item.Title = d.labels.Get().UnnamedStop
	}
	if s.NodeNo != "" {
		item.Subtitle = "#" + s.NodeNo.String()
	}
	return item
}

func stationItem(st domain.SubwayStation) domain.DropdownItem {
	return domain.DropdownItem{Title: StationTitle(st)}
}
