package images

import (
	"errors"
	"net/http"
)

var (
	ErrNoFilePart     = errors.New("No file part")
	ErrNoSelectedFile = errors.New("No selected file")
	ErrFileTooLarge   = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus converts upload errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
