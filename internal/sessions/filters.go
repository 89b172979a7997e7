package sessions

import (
	"net/url"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// Filters contains optional equality criteria for live session queries.
type Filters struct {
	ID       *string
	Status   *string
	SellerID *string
}

// FiltersFromQuery extracts live session filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		ID:       query.Optional(values, "id"),
		Status:   query.Optional(values, "status"),
		SellerID: query.Optional(values, "seller_id"),
	}
}

// Apply adds filter conditions to the platform query.
func (f Filters) Apply(q *supabase.Query) *supabase.Query {
	return q.
		WhereEq("id", f.ID).
		WhereEq("status", f.Status).
		WhereEq("seller_id", f.SellerID)
}
