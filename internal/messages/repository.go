package messages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const table = "session_messages"

type repo struct {
	db     supabase.Database
	logger *slog.Logger
}

func New(db supabase.Database, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "messages"),
	}
}

func (r *repo) List(ctx context.Context, sessionID string, opts query.Options) ([]supabase.Record, error) {
	q := supabase.From(table).Eq("session_id", sessionID)
	return r.db.Select(ctx, opts.Apply(q))
}

func (r *repo) Send(ctx context.Context, data supabase.Record) (supabase.Record, error) {
	rows, err := r.db.Insert(ctx, table, data)
	if err != nil {
		return nil, err
	}

	row, err := supabase.First(rows)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	r.logger.Debug("message sent", "session_id", row["session_id"])
	return row, nil
}
