// Package supabase provides a thin REST client for the hosted platform that
// owns authentication, table storage, remote procedures and object storage.
// Resource packages depend on the Database, Auth and Storage interfaces;
// Client implements all three over the platform's HTTP APIs.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/antique-feed/pkg/lifecycle"
)

const maxResponseBytes = 8 << 20

// Client is a Supabase REST API client sharing one pooled http.Client.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client from a finalized configuration.
func New(cfg *Config, logger *slog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("url required")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("key required")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxConnsPerHost = cfg.MaxConns
	transport.MaxIdleConns = cfg.MaxIdleConns
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConns

	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.URL,
		key:     cfg.Key,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger.With("system", "supabase"),
	}, nil
}

// Start registers the client's shutdown hook with the coordinator.
func (c *Client) Start(lc *lifecycle.Coordinator) error {
	c.logger.Info("platform client configured", "url", c.baseURL)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		c.http.CloseIdleConnections()
		c.logger.Info("platform connections closed")
	})

	return nil
}

// response is a fully read platform response.
type response struct {
	status int
	body   []byte
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, url string, v any) (*http.Request, error) {
	if v == nil {
		return c.newRequest(ctx, method, url, nil)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}

	req, err := c.newRequest(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (c *Client) do(req *http.Request) (*response, error) {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("platform request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 400 {
		return nil, newError(resp.StatusCode, body)
	}

	return &response{status: resp.StatusCode, body: body}, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}
