package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Auth is the authentication surface of the platform.
type Auth interface {
	SignUp(ctx context.Context, creds Credentials) (*Session, error)
	SignIn(ctx context.Context, creds Credentials) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

var _ Auth = (*Client)(nil)

// Credentials identify a user by email and password.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a sign-up or sign-in.
// Token fields are empty when sign-up awaits email confirmation.
type Session struct {
	AccessToken  string `json:"access_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         Record `json:"user"`
}

func (c *Client) SignUp(ctx context.Context, creds Credentials) (*Session, error) {
	return c.authenticate(ctx, "/auth/v1/signup", creds)
}

func (c *Client) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	return c.authenticate(ctx, "/auth/v1/token?grant_type=password", creds)
}

// SignOut revokes the session identified by accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return fmt.Errorf("access token required")
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.url("/auth/v1/logout"), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (c *Client) authenticate(ctx context.Context, path string, creds Credentials) (*Session, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.url(path), creds)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return parseSession(resp.body)
}

// parseSession accepts both a session object and the bare user object the
// platform returns when sign-up requires email confirmation.
func parseSession(body []byte) (*Session, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode session: invalid JSON response")
	}

	var session Session
	if user := gjson.GetBytes(body, "user"); user.IsObject() {
		if err := json.Unmarshal(body, &session); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		return &session, nil
	}

	if err := json.Unmarshal(body, &session.User); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &session, nil
}
