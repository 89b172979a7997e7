package auth

import (
	"errors"
	"net/http"
)

var (
	ErrProfileNotFound = errors.New("Profile not found")
	ErrInvalidBody     = errors.New("invalid request body")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
// Platform failures are reported as 400.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrProfileNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
