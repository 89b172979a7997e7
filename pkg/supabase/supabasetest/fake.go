// Package supabasetest provides recording in-memory implementations of the
// platform interfaces for handler and system tests.
package supabasetest

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// Call records one invocation against a fake.
type Call struct {
	Op     string
	Table  string
	Fn     string
	Params url.Values
	Record supabase.Record
}

// Database returns Rows or RPCResult for every call, or Err when set.
type Database struct {
	Rows      []supabase.Record
	RPCResult json.RawMessage
	Err       error

	mu    sync.Mutex
	calls []Call
}

var _ supabase.Database = (*Database)(nil)

func (d *Database) Select(ctx context.Context, q *supabase.Query) ([]supabase.Record, error) {
	d.record(Call{Op: "select", Table: q.Table(), Params: q.Encode()})
	return d.rows()
}

func (d *Database) Insert(ctx context.Context, table string, rec supabase.Record) ([]supabase.Record, error) {
	d.record(Call{Op: "insert", Table: table, Record: rec})
	return d.rows()
}

func (d *Database) Update(ctx context.Context, q *supabase.Query, rec supabase.Record) ([]supabase.Record, error) {
	d.record(Call{Op: "update", Table: q.Table(), Params: q.Encode(), Record: rec})
	return d.rows()
}

func (d *Database) RPC(ctx context.Context, fn string, params supabase.Record) (json.RawMessage, error) {
	d.record(Call{Op: "rpc", Fn: fn, Record: params})
	if d.Err != nil {
		return nil, d.Err
	}
	if d.RPCResult == nil {
		return json.RawMessage("null"), nil
	}
	return d.RPCResult, nil
}

// Calls returns a copy of the recorded calls.
func (d *Database) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// LastCall returns the most recent call, or the zero Call when none was made.
func (d *Database) LastCall() Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.calls) == 0 {
		return Call{}
	}
	return d.calls[len(d.calls)-1]
}

func (d *Database) record(c Call) {
	d.mu.Lock()
	d.calls = append(d.calls, c)
	d.mu.Unlock()
}

func (d *Database) rows() ([]supabase.Record, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	if d.Rows == nil {
		return []supabase.Record{}, nil
	}
	return d.Rows, nil
}

// Auth returns Session for sign-up and sign-in, or Err when set.
type Auth struct {
	Session *supabase.Session
	Err     error

	mu          sync.Mutex
	Credentials []supabase.Credentials
	Tokens      []string
}

var _ supabase.Auth = (*Auth)(nil)

func (a *Auth) SignUp(ctx context.Context, creds supabase.Credentials) (*supabase.Session, error) {
	return a.authenticate(creds)
}

func (a *Auth) SignIn(ctx context.Context, creds supabase.Credentials) (*supabase.Session, error) {
	return a.authenticate(creds)
}

func (a *Auth) SignOut(ctx context.Context, accessToken string) error {
	a.mu.Lock()
	a.Tokens = append(a.Tokens, accessToken)
	a.mu.Unlock()
	return a.Err
}

func (a *Auth) authenticate(creds supabase.Credentials) (*supabase.Session, error) {
	a.mu.Lock()
	a.Credentials = append(a.Credentials, creds)
	a.mu.Unlock()

	if a.Err != nil {
		return nil, a.Err
	}
	if a.Session == nil {
		return &supabase.Session{User: supabase.Record{}}, nil
	}
	return a.Session, nil
}

// Upload records one object upload.
type Upload struct {
	Bucket      string
	Path        string
	Data        []byte
	ContentType string
}

// Storage accepts every upload, or fails with Err when set.
type Storage struct {
	Err error

	mu      sync.Mutex
	Uploads []Upload
}

var _ supabase.Storage = (*Storage)(nil)

func (s *Storage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (*supabase.Object, error) {
	s.mu.Lock()
	s.Uploads = append(s.Uploads, Upload{Bucket: bucket, Path: path, Data: data, ContentType: contentType})
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return &supabase.Object{Path: path, FullPath: bucket + "/" + path}, nil
}
