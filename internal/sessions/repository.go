package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const (
	table     = "live_sessions"
	endSessFn = "end_live_session"
)

type repo struct {
	db     supabase.Database
	logger *slog.Logger
}

// New creates the live session system.
func New(db supabase.Database, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "sessions"),
	}
}

func (r *repo) Create(ctx context.Context, data supabase.Record) (supabase.Record, error) {
	rows, err := r.db.Insert(ctx, table, data)
	if err != nil {
		return nil, err
	}

	row, err := supabase.First(rows)
	if err != nil {
		return nil, fmt.Errorf("create live session: %w", err)
	}

	r.logger.Info("live session created", "id", row["id"])
	return row, nil
}

func (r *repo) List(ctx context.Context, filters Filters, opts query.Options) ([]supabase.Record, error) {
	q := filters.Apply(supabase.From(table))
	return r.db.Select(ctx, opts.Apply(q))
}

func (r *repo) End(ctx context.Context, id string) (json.RawMessage, error) {
	result, err := r.db.RPC(ctx, endSessFn, supabase.Record{"session_id": id})
	if err != nil {
		return nil, err
	}

	r.logger.Info("live session ended", "id", id)
	return result, nil
}
