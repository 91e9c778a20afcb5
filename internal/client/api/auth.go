package api

import (
	"context"
	"net/http"

	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/common"
)

// AuthAPI groups the authentication endpoints.
type AuthAPI struct {
	c *Client
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse tolerates both token field spellings the backend has
// shipped: "access_token" and the older "token".
type loginResponse struct {
	AccessToken string      `json:"access_token"`
	Token       string      `json:"token"`
	User        models.User `json:"user"`
}

// LoginResult carries the resolved token and user of a successful login.
type LoginResult struct {
	Token string
	User  models.User
}

// Login exchanges credentials for a token. An OK response with no token
// in either field is rejected with common.ErrEmptyToken.
func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var resp loginResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return LoginResult{}, err
	}

	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		return LoginResult{}, common.ErrEmptyToken
	}
	return LoginResult{Token: token, User: resp.User}, nil
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

// Register creates an account. It does not authenticate the caller.
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	err := a.c.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp)
	return resp, err
}
