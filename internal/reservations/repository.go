package reservations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const table = "reservations"

type repo struct {
	db     supabase.Database
	logger *slog.Logger
}

func New(db supabase.Database, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "reservations"),
	}
}

func (r *repo) Create(ctx context.Context, data supabase.Record) (supabase.Record, error) {
	rows, err := r.db.Insert(ctx, table, data)
	if err != nil {
		return nil, err
	}

	row, err := supabase.First(rows)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	r.logger.Info("reservation created", "id", row["id"], "product_id", row["product_id"])
	return row, nil
}
