package client

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}
	var out User
	if err := c.do(ctx, call{op: "register", method: http.MethodPost, path: "/api/auth/register", body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, call{op: "login", method: http.MethodPost, path: "/api/auth/login", body: body, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
