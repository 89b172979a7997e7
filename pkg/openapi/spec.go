package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Version is the OpenAPI version emitted by NewSpec.
const Version = "3.1.0"

// NewSpec creates a document with the shared components and no paths.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    Version,
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddTag declares a tag once. A later call fills in a missing description.
func (s *Spec) AddTag(name, description string) {
	for _, t := range s.Tags {
		if t.Name == name {
			if t.Description == "" {
				t.Description = description
			}
			return
		}
	}
	s.Tags = append(s.Tags, &Tag{Name: name, Description: description})
}

// AddOperation attaches op to path under method.
func (s *Spec) AddOperation(method, path string, op *Operation) error {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	default:
		return fmt.Errorf("unsupported method %q for %s", method, path)
	}
	return nil
}

// MarshalJSON encodes the document with indentation.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON writes the encoded document to path, creating parent directories.
func WriteJSON(spec *Spec, path string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create openapi directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write openapi document: %w", err)
	}
	return nil
}

// ServeSpec serves a pre-encoded document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", mediaJSON+"; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
