// Package middleware provides composable HTTP middleware and the stack that applies it.
package middleware

import "net/http"

// System holds an ordered middleware stack.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type middleware struct {
	stack []func(http.Handler) http.Handler
}

// New creates an empty middleware stack.
func New() System {
	return &middleware{
		stack: []func(http.Handler) http.Handler{},
	}
}

// Use appends mw to the stack. The first registered middleware is the outermost.
func (m *middleware) Use(mw func(http.Handler) http.Handler) {
	m.stack = append(m.stack, mw)
}

// Apply wraps handler with every registered middleware.
func (m *middleware) Apply(handler http.Handler) http.Handler {
	for i := len(m.stack) - 1; i >= 0; i-- {
		handler = m.stack[i](handler)
	}
	return handler
}

// StatusWriter records the status code written through it.
type StatusWriter struct {
	http.ResponseWriter
	Status  int
	written bool
}

// NewStatusWriter wraps w with a default status of 200.
func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	return &StatusWriter{ResponseWriter: w, Status: http.StatusOK}
}

func (sw *StatusWriter) WriteHeader(code int) {
	if sw.written {
		return
	}
	sw.Status = code
	sw.written = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *StatusWriter) Write(b []byte) (int, error) {
	if !sw.written {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// Written reports whether a status has been sent.
func (sw *StatusWriter) Written() bool {
	return sw.written
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sw *StatusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
