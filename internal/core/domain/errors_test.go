package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrQueryTooShort", ErrQueryTooShort},
		{"ErrMissingArrivalTime", ErrMissingArrivalTime},
		{"ErrInvalidArrivalTime", ErrInvalidArrivalTime},
		{"ErrMissingDestination", ErrMissingDestination},
		{"ErrStaleResponse", ErrStaleResponse},
		{"ErrConnection", ErrConnection},
		{"ErrMalformedResponse", ErrMalformedResponse},
		{"ErrVoiceBusy", ErrVoiceBusy},
		{"ErrNoDetail", ErrNoDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestBackendError(t *testing.T) {
	err := fmt.Errorf("search: %w", NewBackendError("검색 결과 없음"))

	msg, ok := BackendMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "검색 결과 없음", msg)
	assert.Equal(t, "unknown", NewBackendError("").Message)

	_, ok = BackendMessage(errors.New("plain"))
	assert.False(t, ok)
}

func TestTransportError_MatchesConnection(t *testing.T) {
	cause := fmt.Errorf("%w: unexpected EOF", ErrMalformedResponse)
	err := &TransportError{Op: "search_bus_stop", Err: cause}

	assert.True(t, errors.Is(err, ErrConnection))
	assert.True(t, errors.Is(err, ErrMalformedResponse))
	assert.Equal(t, "search_bus_stop: malformed response: unexpected EOF", err.Error())
	assert.Equal(t, "malformed response: unexpected EOF", CauseText(err))
	assert.Equal(t, "plain", CauseText(errors.New("plain")))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrQueryTooShort))
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", ErrMissingDestination)))
	assert.False(t, IsValidation(ErrConnection))
	assert.False(t, IsValidation(NewBackendError("x")))
}
