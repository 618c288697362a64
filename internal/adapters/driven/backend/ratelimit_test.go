package backend

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_ObserveRetryAfter(t *testing.T) {
	now := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	l := NewLimiter(-1, 1)
	l.now = func() time.Time { return now }

	tests := []struct {
		name   string
		status int
		header string
		want   time.Time
	}{
		{"ok ignored", http.StatusOK, "30", time.Time{}},
		{"bad header ignored", http.StatusTooManyRequests, "soon", time.Time{}},
		{"too many requests", http.StatusTooManyRequests, "30", now.Add(30 * time.Second)},
		{"shorter pause keeps longer", http.StatusServiceUnavailable, "5", now.Add(30 * time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			resp.Header.Set(HeaderRetryAfter, tt.header)

			l.Observe(resp)

			assert.Equal(t, tt.want, l.PausedUntil())
		})
	}
}

func TestLimiter_WaitHonoursContext(t *testing.T) {
	l := NewLimiter(-1, 1)
	l.Observe(&http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{HeaderRetryAfter: []string{"60"}},
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLimiter_Unthrottled(t *testing.T) {
	l := NewLimiter(-1, 0)

	for i := 0; i < 100; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}
	l.Observe(nil)
}
