package products

import (
	"context"
	"encoding/json"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// System defines product listing and reservation operations.
type System interface {
	Create(ctx context.Context, data supabase.Record) (supabase.Record, error)
	List(ctx context.Context, filters Filters, opts query.Options) ([]supabase.Record, error)
	Reserve(ctx context.Context, id string) (json.RawMessage, error)
	UpdateStatus(ctx context.Context, id, status string) (json.RawMessage, error)
}
