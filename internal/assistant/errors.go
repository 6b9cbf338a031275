package assistant

import (
	"errors"
	"net/http"
)

// Domain errors for assistant operations.
var (
	ErrEmptyQuestion    = errors.New("question must not be empty")
	ErrCompletionFailed = errors.New("completion request failed")
)

// MapHTTPStatus maps assistant domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyQuestion) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrCompletionFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
