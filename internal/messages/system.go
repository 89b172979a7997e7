package messages

import (
	"context"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// System defines live session chat operations.
type System interface {
	// List returns the messages posted to a session.
	List(ctx context.Context, sessionID string, opts query.Options) ([]supabase.Record, error)
	Send(ctx context.Context, data supabase.Record) (supabase.Record, error)
}
