// Package decode reads JSON request bodies into untyped objects and
// converts them into typed values.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrEmptyBody   = errors.New("request body is empty")
	ErrInvalidBody = errors.New("request body is not valid JSON")
	ErrNotObject   = errors.New("request body must be a JSON object")
)

// Object reads r's body as a single JSON object.
func Object(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return nil, ErrEmptyBody
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyBody
	}
	if !json.Valid(data) {
		return nil, ErrInvalidBody
	}
	if data[0] != '{' {
		return nil, ErrNotObject
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return obj, nil
}

// FromMap converts a decoded JSON object into T.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
