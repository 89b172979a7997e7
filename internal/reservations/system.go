package reservations

import (
	"context"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// System defines reservation operations.
type System interface {
	Create(ctx context.Context, data supabase.Record) (supabase.Record, error)
}
