// Package query parses list options shared by the filtering endpoints and
// applies them to platform queries.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

var (
	ErrInvalidDirection = errors.New("order_direction must be asc or desc")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
)

// Options holds ordering and limit criteria for list queries.
type Options struct {
	OrderBy    string
	Descending bool
	Limit      int
}

// OptionsFromQuery extracts list options from URL query parameters.
// Direction defaults to ascending and is only meaningful with order_by.
func OptionsFromQuery(values url.Values) (Options, error) {
	var o Options

	o.OrderBy = strings.TrimSpace(values.Get("order_by"))

	if d := strings.TrimSpace(values.Get("order_direction")); d != "" {
		switch strings.ToLower(d) {
		case "asc":
		case "desc":
			o.Descending = true
		default:
			return Options{}, fmt.Errorf("%w: %q", ErrInvalidDirection, d)
		}
	}

	if l := strings.TrimSpace(values.Get("limit")); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			return Options{}, fmt.Errorf("%w: %q", ErrInvalidLimit, l)
		}
		o.Limit = n
	}

	return o, nil
}

// Apply adds ordering and limit clauses to q.
func (o Options) Apply(q *supabase.Query) *supabase.Query {
	if o.OrderBy != "" {
		q.Order(o.OrderBy, !o.Descending)
	}
	return q.Limit(o.Limit)
}

// Optional returns a pointer to the named parameter, or nil when it is absent or empty.
func Optional(values url.Values, key string) *string {
	if v := values.Get(key); v != "" {
		return &v
	}
	return nil
}
