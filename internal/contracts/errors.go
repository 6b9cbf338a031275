package contracts

import (
	"errors"
	"net/http"
)

// Domain errors for contract intake operations.
var (
	ErrInvalidFile  = errors.New("invalid file")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrNotPDF       = errors.New("file is not a valid PDF document")
)

// MapHTTPStatus maps contract domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) || errors.Is(err, ErrNotPDF) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
