package images

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/JaimeStill/antique-feed/pkg/storage"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

type repo struct {
	store       supabase.Storage
	bucket      string
	uniqueNames bool
	logger      *slog.Logger
}

// New creates the image system writing to the configured bucket.
func New(store supabase.Storage, cfg *storage.Config, logger *slog.Logger) System {
	return &repo{
		store:       store,
		bucket:      cfg.Bucket,
		uniqueNames: cfg.UniqueNames,
		logger:      logger.With("system", "images"),
	}
}

func (r *repo) Upload(ctx context.Context, filename string, data []byte, contentType string) (*supabase.Object, error) {
	path := r.objectPath(filename)

	obj, err := r.store.Upload(ctx, r.bucket, path, data, contentType)
	if err != nil {
		return nil, err
	}

	r.logger.Info("image uploaded",
		"bucket", r.bucket,
		"path", obj.Path,
		"content_type", contentType,
		"size", len(data),
	)
	return obj, nil
}

// objectPath keeps the client filename unless unique names are enabled,
// in which case only the extension survives.
func (r *repo) objectPath(filename string) string {
	if !r.uniqueNames {
		return filename
	}
	return uuid.NewString() + filepath.Ext(filename)
}
