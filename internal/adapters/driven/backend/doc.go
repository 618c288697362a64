// Package backend provides the HTTP/JSON client for the mirror's transit,
// commute and voice service.
//
// Every call is a single request. Replies with ok:false become
// *domain.BackendError; network failures, non-JSON bodies and unexpected
// status codes become *domain.TransportError, which matches
// domain.ErrConnection. Requests are throttled by a token bucket and carry
// an X-Request-ID header for correlation with server logs.
package backend
