package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const profilesTable = "profiles"

type repo struct {
	auth   supabase.Auth
	db     supabase.Database
	logger *slog.Logger
}

// New creates the auth system over the platform auth and database surfaces.
func New(auth supabase.Auth, db supabase.Database, logger *slog.Logger) System {
	return &repo{
		auth:   auth,
		db:     db,
		logger: logger.With("system", "auth"),
	}
}

func (r *repo) SignUp(ctx context.Context, creds Credentials) (supabase.Record, error) {
	session, err := r.auth.SignUp(ctx, creds.platform())
	if err != nil {
		return nil, err
	}
	r.logger.Info("user signed up", "user_id", session.User["id"])
	return userOf(session), nil
}

func (r *repo) SignIn(ctx context.Context, creds Credentials) (supabase.Record, error) {
	session, err := r.auth.SignIn(ctx, creds.platform())
	if err != nil {
		return nil, err
	}
	return userOf(session), nil
}

func (r *repo) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return r.auth.SignOut(ctx, accessToken)
}

func (r *repo) Profile(ctx context.Context, userID string) (supabase.Record, error) {
	rows, err := r.db.Select(ctx, supabase.From(profilesTable).Eq("user_id", userID))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrProfileNotFound
	}
	return rows[0], nil
}

func (r *repo) UpdateProfile(ctx context.Context, userID string, data supabase.Record) (supabase.Record, error) {
	rows, err := r.db.Update(ctx, supabase.From(profilesTable).Eq("user_id", userID), data)
	if err != nil {
		return nil, err
	}
	row, err := supabase.First(rows)
	if err != nil {
		return nil, fmt.Errorf("update profile %s: %w", userID, err)
	}
	return row, nil
}

func userOf(session *supabase.Session) supabase.Record {
	if session.User == nil {
		return supabase.Record{}
	}
	return session.User
}
