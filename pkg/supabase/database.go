package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Database is the table and procedure surface of the platform.
type Database interface {
	// Select returns the rows matching q.
	Select(ctx context.Context, q *Query) ([]Record, error)

	// Insert inserts rec into table and returns the inserted representation.
	Insert(ctx context.Context, table string, rec Record) ([]Record, error)

	// Update applies rec to the rows matching q's filters and returns them.
	Update(ctx context.Context, q *Query, rec Record) ([]Record, error)

	// RPC invokes the named remote procedure and returns its raw JSON result.
	RPC(ctx context.Context, fn string, params Record) (json.RawMessage, error)
}

var _ Database = (*Client)(nil)

// First returns the first row or ErrNoRows.
func First(rows []Record) (Record, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows[0], nil
}

func (c *Client) Select(ctx context.Context, q *Query) ([]Record, error) {
	return c.rows(ctx, http.MethodGet, q.table, q.Encode(), nil)
}

func (c *Client) Insert(ctx context.Context, table string, rec Record) ([]Record, error) {
	if rec == nil {
		rec = Record{}
	}
	return c.rows(ctx, http.MethodPost, table, nil, rec)
}

func (c *Client) Update(ctx context.Context, q *Query, rec Record) ([]Record, error) {
	if rec == nil {
		rec = Record{}
	}
	return c.rows(ctx, http.MethodPatch, q.table, q.filterValues(), rec)
}

func (c *Client) RPC(ctx context.Context, fn string, params Record) (json.RawMessage, error) {
	if fn == "" {
		return nil, fmt.Errorf("function name required")
	}
	if params == nil {
		params = Record{}
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.url("/rest/v1/rpc/"+url.PathEscape(fn)), params)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc %s: %w", fn, err)
	}

	if len(resp.body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(resp.body) {
		return nil, fmt.Errorf("rpc %s: invalid JSON response", fn)
	}
	return json.RawMessage(resp.body), nil
}

func (c *Client) rows(ctx context.Context, method, table string, params url.Values, body any) ([]Record, error) {
	if table == "" {
		return nil, fmt.Errorf("table required")
	}

	target := c.url("/rest/v1/" + url.PathEscape(table))
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := c.newJSONRequest(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if len(resp.body) == 0 {
		return []Record{}, nil
	}

	var rows []Record
	if err := json.Unmarshal(resp.body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	if rows == nil {
		rows = []Record{}
	}
	return rows, nil
}
