package sessions

import (
	"context"
	"encoding/json"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// System defines live session operations.
type System interface {
	Create(ctx context.Context, data supabase.Record) (supabase.Record, error)
	List(ctx context.Context, filters Filters, opts query.Options) ([]supabase.Record, error)

	// End closes the session through the end_live_session procedure and
	// returns the procedure result unchanged.
	End(ctx context.Context, id string) (json.RawMessage, error)
}
