package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/devpair/internal/client/models"
)

// Login exchanges credentials for a token pair and the user record.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp models.AuthResponse
	if err := c.post(ctx, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil)
}

// Me returns the user owning the attached access token.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Refresh exchanges refreshToken for a new access token. The refresh token
// is sent as the bearer credential of this call only.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/auth/refresh",
		out:    &resp,
		bearer: refreshToken,
	})
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}
