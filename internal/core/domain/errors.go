package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent input validation and coordination failures.
// Backend-reported failures use BackendError instead.
var (
	// ErrQueryTooShort indicates the trimmed query is below the domain threshold.
	ErrQueryTooShort = errors.New("query too short")

	// ErrMissingArrivalTime indicates no arrival time was chosen.
	ErrMissingArrivalTime = errors.New("arrival time required")

	// ErrInvalidArrivalTime indicates the arrival time is not HH:MM.
	ErrInvalidArrivalTime = errors.New("arrival time must be HH:MM")

	// ErrMissingDestination indicates the destination has no coordinates yet.
	ErrMissingDestination = errors.New("destination not selected")

	// ErrStaleResponse indicates a reply arrived after a newer request was issued.
	// The reply is dropped without touching session state.
	ErrStaleResponse = errors.New("stale response")

	// ErrConnection indicates a transport failure talking to the backend.
	ErrConnection = errors.New("connection error")

	// ErrMalformedResponse indicates the backend reply could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrVoiceBusy indicates a voice capture is already running.
	ErrVoiceBusy = errors.New("voice capture in progress")

	// ErrNoDetail indicates the session has no detail lookup configured.
	ErrNoDetail = errors.New("no detail lookup")
)

// BackendError is an ok:false reply carrying the server's error text.
type BackendError struct {
	// Message is the server-provided error, surfaced verbatim.
	Message string
}

// Error implements error.
func (e *BackendError) Error() string {
	if e.Message == "" {
		return "backend error"
	}
	return e.Message
}

// NewBackendError creates a BackendError, defaulting an empty message to "unknown".
func NewBackendError(msg string) *BackendError {
	if msg == "" {
		msg = "unknown"
	}
	return &BackendError{Message: msg}
}

// BackendMessage extracts the server text from err when it is a BackendError.
func BackendMessage(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Message, true
	}
	return "", false
}

// IsValidation reports whether err is a local input-validation error.
// Validation errors never reach the backend.
func IsValidation(err error) bool {
	return errors.Is(err, ErrQueryTooShort) ||
		errors.Is(err, ErrMissingArrivalTime) ||
		errors.Is(err, ErrInvalidArrivalTime) ||
		errors.Is(err, ErrMissingDestination)
}

// TransportError is a network or decode failure at the call site.
// It matches ErrConnection with errors.Is and unwraps to the cause.
type TransportError struct {
	// Op names the backend call, e.g. "search_destination".
	Op string

	// Err is the underlying failure.
	Err error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrConnection as a match.
func (e *TransportError) Is(target error) bool {
	return target == ErrConnection
}

// CauseText returns the user-facing cause of a transport failure.
func CauseText(err error) string {
	var te *TransportError
	if errors.As(err, &te) && te.Err != nil {
		return te.Err.Error()
	}
	return err.Error()
}
