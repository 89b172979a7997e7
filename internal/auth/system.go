package auth

import (
	"context"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// System defines account and profile operations backed by the platform.
type System interface {
	SignUp(ctx context.Context, creds Credentials) (supabase.Record, error)
	SignIn(ctx context.Context, creds Credentials) (supabase.Record, error)

	// SignOut revokes the session for accessToken. An empty token is a no-op.
	SignOut(ctx context.Context, accessToken string) error

	// Profile returns the profile whose user_id is userID, or ErrProfileNotFound.
	Profile(ctx context.Context, userID string) (supabase.Record, error)
	UpdateProfile(ctx context.Context, userID string, data supabase.Record) (supabase.Record, error)
}
