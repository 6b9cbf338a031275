package sessions

import (
	"errors"
	"net/http"
)

// Domain errors for session operations.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")
)

// MapHTTPStatus maps session domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrNoSession) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
