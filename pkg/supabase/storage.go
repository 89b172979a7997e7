package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Storage is the object storage surface of the platform.
type Storage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (*Object, error)
}

var _ Storage = (*Client)(nil)

// Object identifies an uploaded blob.
type Object struct {
	ID       string `json:"id,omitempty"`
	Path     string `json:"path"`
	FullPath string `json:"full_path"`
}

func (c *Client) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (*Object, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket required")
	}
	if path == "" {
		return nil, fmt.Errorf("object path required")
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.url(objectPath(bucket, path)), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s/%s: %w", bucket, path, err)
	}

	var body struct {
		ID  string `json:"Id"`
		Key string `json:"Key"`
	}
	if len(resp.body) > 0 {
		if err := json.Unmarshal(resp.body, &body); err != nil {
			return nil, fmt.Errorf("decode upload response: %w", err)
		}
	}
	if body.Key == "" {
		body.Key = bucket + "/" + path
	}

	return &Object{ID: body.ID, Path: path, FullPath: body.Key}, nil
}

// PublicURL returns the public URL of an object in a public bucket.
func (c *Client) PublicURL(bucket, path string) string {
	return c.url("/storage/v1/object/public/" + url.PathEscape(bucket) + "/" + escapePath(path))
}

func objectPath(bucket, path string) string {
	return "/storage/v1/object/" + url.PathEscape(bucket) + "/" + escapePath(path)
}

func escapePath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
