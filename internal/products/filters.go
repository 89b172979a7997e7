package products

import (
	"net/url"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// Filters contains optional equality criteria for product queries.
type Filters struct {
	ID        *string
	SessionID *string
	SellerID  *string
	Status    *string
}

// FiltersFromQuery extracts product filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		ID:        query.Optional(values, "id"),
		SessionID: query.Optional(values, "session_id"),
		SellerID:  query.Optional(values, "seller_id"),
		Status:    query.Optional(values, "status"),
	}
}

func (f Filters) Apply(q *supabase.Query) *supabase.Query {
	return q.
		WhereEq("id", f.ID).
		WhereEq("session_id", f.SessionID).
		WhereEq("seller_id", f.SellerID).
		WhereEq("status", f.Status)
}
