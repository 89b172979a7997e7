package products

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const (
	table          = "products"
	reserveFn      = "reserve_product"
	updateStatusFn = "update_product_status"
)

type repo struct {
	db     supabase.Database
	logger *slog.Logger
}

// New creates the product system.
func New(db supabase.Database, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "products"),
	}
}

func (r *repo) Create(ctx context.Context, data supabase.Record) (supabase.Record, error) {
	rows, err := r.db.Insert(ctx, table, data)
	if err != nil {
		return nil, err
	}

	row, err := supabase.First(rows)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	r.logger.Info("product created", "id", row["id"], "session_id", row["session_id"])
	return row, nil
}

func (r *repo) List(ctx context.Context, filters Filters, opts query.Options) ([]supabase.Record, error) {
	q := filters.Apply(supabase.From(table))
	return r.db.Select(ctx, opts.Apply(q))
}

func (r *repo) Reserve(ctx context.Context, id string) (json.RawMessage, error) {
	return r.db.RPC(ctx, reserveFn, supabase.Record{"product_id": id})
}

func (r *repo) UpdateStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	result, err := r.db.RPC(ctx, updateStatusFn, supabase.Record{
		"product_id": id,
		"status":     status,
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("product status updated", "id", id, "status", status)
	return result, nil
}
