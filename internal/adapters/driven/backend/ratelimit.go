package backend

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRatePerSecond is the steady request rate.
	DefaultRatePerSecond = 10

	// DefaultBurst is the number of requests allowed back to back.
	DefaultBurst = 5

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// Limiter throttles requests with a token bucket and honours
// Retry-After on 429 and 503 replies.
type Limiter struct {
	bucket *rate.Limiter

	mu          sync.Mutex
	pausedUntil time.Time
	now         func() time.Time
}

// NewLimiter creates a limiter. A non-positive perSecond disables throttling.
func NewLimiter(perSecond float64, burst int) *Limiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		bucket: rate.NewLimiter(limit, burst),
		now:    time.Now,
	}
}

// Wait blocks until a request may be sent.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	until := l.pausedUntil
	l.mu.Unlock()

	if d := until.Sub(l.now()); d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	return l.bucket.Wait(ctx)
}

// Observe records a server back-off request from resp.
func (l *Limiter) Observe(resp *http.Response) {
	if resp == nil {
		return
	}
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return
	}
	seconds, err := strconv.Atoi(resp.Header.Get(HeaderRetryAfter))
	if err != nil || seconds <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	until := l.now().Add(time.Duration(seconds) * time.Second)
	if until.After(l.pausedUntil) {
		l.pausedUntil = until
	}
}

// PausedUntil returns the end of the current server back-off.
func (l *Limiter) PausedUntil() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pausedUntil
}
