// Package services contains the application services of the Nado Quest
// client: the authentication flow binding the auth API to the session
// store, and the family provider that synchronizes membership state
// after authentication.
package services

import (
	"context"

	"github.com/nadocloud/nadoquest/internal/client/api"
	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/client/state"
)

// AuthAPI is the slice of the API client the auth flow needs.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResult, error)
	Register(ctx context.Context, req api.RegisterRequest) (api.RegisterResponse, error)
}

// AuthFlow orchestrates login, registration, and logout between the
// backend and the session store.
type AuthFlow struct {
	auth     AuthAPI
	sessions *state.SessionStore
}

// NewAuthFlow binds the auth API to the session store.
func NewAuthFlow(auth AuthAPI, sessions *state.SessionStore) *AuthFlow {
	return &AuthFlow{auth: auth, sessions: sessions}
}

// Login authenticates and, on success, atomically stores token and user.
// On failure the session is left untouched and the error propagates.
func (a *AuthFlow) Login(ctx context.Context, email, password string) error {
	res, err := a.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return a.sessions.SetAuth(ctx, res.Token, res.User)
}

// Register creates an account. It does not authenticate: the caller logs
// in afterwards (or uses SetAuth when another flow already holds a token).
func (a *AuthFlow) Register(ctx context.Context, email, password, name string) (string, error) {
	resp, err := a.auth.Register(ctx, api.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// SetAuth stores an already-obtained token and user, for flows that
// authenticate out of band (e.g. post-registration auto-login).
func (a *AuthFlow) SetAuth(ctx context.Context, token string, user models.User) error {
	return a.sessions.SetAuth(ctx, token, user)
}

// Logout clears the session.
func (a *AuthFlow) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
