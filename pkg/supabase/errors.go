package supabase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrNoRows indicates the platform returned an empty result where a row was expected.
var ErrNoRows = errors.New("no rows returned")

// Error is a failure reported by the platform with an HTTP status of 400 or above.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var messageFields = []string{"message", "msg", "error_description", "error"}

func newError(status int, body []byte) *Error {
	if gjson.ValidBytes(body) {
		for _, field := range gjson.GetManyBytes(body, messageFields...) {
			if field.Type == gjson.String && field.Str != "" {
				return &Error{Status: status, Message: field.Str}
			}
		}
	}

	return &Error{
		Status:  status,
		Message: fmt.Sprintf("supabase error %d: %s", status, http.StatusText(status)),
	}
}

// StatusOf returns the platform status carried by err, or 0 when err is not a platform error.
func StatusOf(err error) int {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Status
	}
	return 0
}
