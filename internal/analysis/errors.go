package analysis

import (
	"errors"
	"net/http"
)

// Domain errors for analysis operations.
var (
	ErrNoContract       = errors.New("no contract loaded")
	ErrInvalidRequest   = errors.New("invalid request body")
	ErrEmptyRecipient   = errors.New("recipient must not be empty")
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrTransmission     = errors.New("report transmission failed")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoContract) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrEmptyRecipient) || errors.Is(err, ErrInvalidRecipient) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrTransmission) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
