// Package apperr defines the error taxonomy shared by services and handlers.
//
// Services wrap storage and validation failures with one of the sentinel
// kinds below; handlers translate the kind into an HTTP status with
// StatusFor and never let a storage error escape as a panic.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized covers missing, malformed, forged, or expired tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers a valid token with an insufficient role, or an
	// identity mismatch on self-service endpoints.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidArgument covers malformed identifiers and missing required
	// fields, detected before any write is attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPersistence covers a failed operation against the document store.
	ErrPersistence = errors.New("persistence failure")

	// ErrNotFound covers a referenced entity that is absent. Read paths may
	// choose to respond with an empty result instead of surfacing it.
	ErrNotFound = errors.New("not found")
)

// StatusFor maps an error chain to the HTTP status the API contract
// promises. Unknown errors map to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
