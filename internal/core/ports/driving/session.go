package driving

import (
	"context"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// SearchSession is one debounced autocomplete box.
type SearchSession interface {
	// Domain returns the session's search domain.
	Domain() domain.SearchDomain

	// OnInput handles a change of the input text. Queries below the domain
	// threshold close the dropdown; others re-arm the debounce timer.
	OnInput(text string)

	// Search runs a search immediately, bypassing the debounce timer.
	// It returns domain.ErrStaleResponse when a newer search superseded it.
	Search(ctx context.Context, query string) error

	// Select picks the index-th result of the cache identified by
	// generation and runs the detail lookup. A stale generation or an
	// out-of-range index is a no-op and returns false.
	Select(ctx context.Context, generation uint64, index int) (bool, error)

	// Dismiss hides the dropdown and clears the cache. It is idempotent.
	Dismiss()

	// View returns a snapshot for rendering.
	View() domain.SessionView
}

// PanelSession is a SearchSession whose selections render a panel.
type PanelSession[P any] interface {
	SearchSession

	// Panel returns the latest rendered panel and whether one exists.
	Panel() (P, bool)
}
