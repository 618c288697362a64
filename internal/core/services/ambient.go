package services

import (
	"sync"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// AmbientHolder is the single owner of the page-wide status.
// Only the commute aggregator writes it, always by full replacement.
type AmbientHolder struct {
	mu     sync.RWMutex
	status domain.AmbientStatus
}

// NewAmbientHolder creates an unset holder.
func NewAmbientHolder() *AmbientHolder {
	return &AmbientHolder{}
}

// Get returns the current status.
func (h *AmbientHolder) Get() domain.AmbientStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// replace clears the previous status and applies s.
// It reports whether the status changed.
func (h *AmbientHolder) replace(s domain.AmbientStatus) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	changed := h.status != s
	h.status = s
	return changed
}
