package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driving"
	"github.com/custodia-labs/smartmirror-cli/internal/debounce"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// DefaultDebounce is the quiet interval before a typed query is searched.
const DefaultDebounce = 300 * time.Millisecond

// SearchFunc runs a domain search.
type SearchFunc[T any] func(ctx context.Context, query string) ([]T, error)

// DetailFunc looks up and renders the detail of a selected result.
type DetailFunc[T, P any] func(ctx context.Context, item T, labels *domain.Labels) (P, error)

// SessionConfig configures a Session.
type SessionConfig[T, P any] struct {
	Domain domain.SearchDomain

	// Delay is the debounce interval. Zero uses DefaultDebounce.
	Delay time.Duration

	Search SearchFunc[T]

	// Detail is optional. Without it a selection only runs OnSelect.
	Detail DetailFunc[T, P]

	// Item renders a result as a dropdown row.
	Item func(T) domain.DropdownItem

	// KeepInput, when set, returns the text left in the input after a
	// selection. Otherwise the input is cleared.
	KeepInput func(T) string

	// OnSelect runs after a valid selection, before any detail lookup.
	OnSelect func(T)

	Labels *LabelBox

	// After arms debounce timers. Nil uses real timers.
	After debounce.AfterFunc

	// Context is the parent of debounced searches. Nil uses Background.
	Context context.Context

	// Notify runs after every state change, outside the session lock.
	Notify func(domain.SearchDomain)
}

// Ensure Session implements the panel port.
var _ driving.PanelSession[domain.TaxiPanel] = (*Session[domain.Place, domain.TaxiPanel])(nil)

// Session is one autocomplete box: input, debounce timer, result cache,
// dropdown and the detail panel fed by selections.
//
// Every backend reply is checked against the session's latest request
// token; a reply for a superseded request is dropped without touching
// state and reported as domain.ErrStaleResponse.
type Session[T, P any] struct {
	cfg       SessionConfig[T, P]
	debouncer *debounce.Debouncer
	log       logger.Scoped

	mu          sync.Mutex
	state       domain.SessionState
	input       string
	results     []T
	gen         uint64
	searchToken uint64
	detailToken uint64
	status      string
	panel       P
	hasPanel    bool
}

// NewSession creates a Session in the Idle state.
func NewSession[T, P any](cfg SessionConfig[T, P]) *Session[T, P] {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDebounce
	}
	if cfg.Labels == nil {
		cfg.Labels = NewLabelBox(nil)
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	return &Session[T, P]{
		cfg:       cfg,
		debouncer: debounce.New(cfg.After),
		log:       logger.For("session/" + cfg.Domain.String()),
	}
}

// Domain returns the session's search domain.
func (s *Session[T, P]) Domain() domain.SearchDomain {
	return s.cfg.Domain
}

// OnInput handles a change of the input text.
func (s *Session[T, P]) OnInput(text string) {
	q := domain.NewSearchQuery(s.cfg.Domain, text)

	s.mu.Lock()
	s.input = text
	if !q.Searchable() {
		s.debouncer.CancelPending()
		s.searchToken++
		s.clearLocked()
		s.state = domain.StateIdle
		s.mu.Unlock()
		s.log.Debug("query %q below threshold, idle", q.Text)
		s.notify()
		return
	}
	s.state = domain.StateDebouncing
	s.debouncer.Schedule(s.cfg.Delay, func() {
		if err := s.Search(s.cfg.Context, q.Text); err != nil && !errors.Is(err, domain.ErrStaleResponse) {
			s.log.Debug("debounced search %q: %v", q.Text, err)
		}
	})
	s.mu.Unlock()
	s.notify()
}

// Search issues the domain search for query.
func (s *Session[T, P]) Search(ctx context.Context, query string) error {
	q := domain.NewSearchQuery(s.cfg.Domain, query)
	if !q.Searchable() {
		return domain.ErrQueryTooShort
	}

	s.mu.Lock()
	s.debouncer.CancelPending()
	s.searchToken++
	token := s.searchToken
	s.state = domain.StateSearching
	s.mu.Unlock()
	s.notify()

	s.log.Debug("search %q token=%d", q.Text, token)
	results, err := s.cfg.Search(ctx, q.Text)

	s.mu.Lock()
	if token != s.searchToken {
		s.mu.Unlock()
		s.log.Debug("dropped stale search %q token=%d", q.Text, token)
		return domain.ErrStaleResponse
	}
	labels := s.cfg.Labels.Get()
	switch {
	case err != nil:
		s.clearLocked()
		s.state = domain.StateIdle
		s.status = searchErrorStatus(labels, err)
	case len(results) == 0:
		s.clearLocked()
		s.state = domain.StateIdle
		s.status = labels.NoResults
	default:
		s.results = results
		s.gen++
		s.state = domain.StateShowingResults
		s.status = fmt.Sprintf(labels.ResultCountFormat, len(results))
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		s.log.Warn("search %q failed: %v", q.Text, err)
	}
	return err
}

// Select picks the index-th result of the cache identified by generation.
func (s *Session[T, P]) Select(ctx context.Context, generation uint64, index int) (bool, error) {
	s.mu.Lock()
	if generation != s.gen || index < 0 || index >= len(s.results) {
		s.mu.Unlock()
		s.log.Debug("ignored selection gen=%d index=%d", generation, index)
		return false, nil
	}
	item := s.results[index]
	s.debouncer.CancelPending()
	s.searchToken++
	s.input = ""
	if s.cfg.KeepInput != nil {
		s.input = s.cfg.KeepInput(item)
	}
	s.clearLocked()
	s.state = domain.StateIdle
	s.detailToken++
	token := s.detailToken
	labels := s.cfg.Labels.Get()
	if s.cfg.Detail != nil {
		s.status = labels.Loading
	}
	s.mu.Unlock()

	if s.cfg.OnSelect != nil {
		s.cfg.OnSelect(item)
	}
	s.notify()

	if s.cfg.Detail == nil {
		return true, nil
	}

	panel, err := s.cfg.Detail(ctx, item, labels)

	s.mu.Lock()
	if token != s.detailToken {
		s.mu.Unlock()
		s.log.Debug("dropped stale detail token=%d", token)
		return true, domain.ErrStaleResponse
	}
	if err != nil {
		s.status = detailErrorStatus(labels, err)
	} else {
		s.panel = panel
		s.hasPanel = true
		s.status = ""
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		s.log.Warn("detail lookup failed: %v", err)
	}
	return true, err
}

// Dismiss hides the dropdown and clears the cache. A pending or in-flight
// search is superseded so its reply cannot reopen the dropdown.
func (s *Session[T, P]) Dismiss() {
	s.mu.Lock()
	if len(s.results) == 0 && s.state == domain.StateIdle {
		s.mu.Unlock()
		return
	}
	s.debouncer.CancelPending()
	s.searchToken++
	s.clearLocked()
	s.state = domain.StateIdle
	s.mu.Unlock()
	s.notify()
}

// ShowResults replaces the cache with results obtained outside the
// debounced search path and opens the dropdown when any exist.
// In-flight searches are superseded.
func (s *Session[T, P]) ShowResults(results []T) {
	s.mu.Lock()
	s.debouncer.CancelPending()
	s.searchToken++
	s.clearLocked()
	s.state = domain.StateIdle
	if len(results) > 0 {
		s.results = results
		s.state = domain.StateShowingResults
	}
	s.mu.Unlock()
	s.notify()
}

// SetInput replaces the input text without scheduling a search.
func (s *Session[T, P]) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()
	s.notify()
}

// SetStatus replaces the status-area text.
func (s *Session[T, P]) SetStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.notify()
}

// SetPanel replaces the panel and supersedes any in-flight detail lookup.
func (s *Session[T, P]) SetPanel(p P) {
	s.mu.Lock()
	s.detailToken++
	s.panel = p
	s.hasPanel = true
	s.mu.Unlock()
	s.notify()
}

// ClearPanel drops the panel and supersedes any in-flight detail lookup.
func (s *Session[T, P]) ClearPanel() {
	s.mu.Lock()
	s.detailToken++
	var zero P
	s.panel = zero
	s.hasPanel = false
	s.status = ""
	s.mu.Unlock()
	s.notify()
}

// Panel returns the latest rendered panel.
func (s *Session[T, P]) Panel() (P, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel, s.hasPanel
}

// Results returns a copy of the current cache.
func (s *Session[T, P]) Results() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.results))
	copy(out, s.results)
	return out
}

// View returns a snapshot for rendering.
func (s *Session[T, P]) View() domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.DropdownItem, len(s.results))
	for i, r := range s.results {
		items[i] = s.cfg.Item(r)
	}
	return domain.SessionView{
		Domain:     s.cfg.Domain,
		State:      s.state,
		Input:      s.input,
		Items:      items,
		Generation: s.gen,
		Status:     s.status,
	}
}

// clearLocked empties the cache and retires its generation.
func (s *Session[T, P]) clearLocked() {
	if len(s.results) > 0 {
		s.results = nil
	}
	s.gen++
}

func (s *Session[T, P]) notify() {
	if s.cfg.Notify != nil {
		s.cfg.Notify(s.cfg.Domain)
	}
}

func searchErrorStatus(l *domain.Labels, err error) string {
	if msg, ok := domain.BackendMessage(err); ok {
		return msg
	}
	return fmt.Sprintf(l.SearchErrorFormat, domain.CauseText(err))
}

func detailErrorStatus(l *domain.Labels, err error) string {
	if msg, ok := domain.BackendMessage(err); ok {
		return fmt.Sprintf(l.ErrorFormat, msg)
	}
	if errors.Is(err, domain.ErrConnection) {
		return fmt.Sprintf(l.ConnectionErrorFormat, domain.CauseText(err))
	}
	return fmt.Sprintf(l.ErrorFormat, err.Error())
}

