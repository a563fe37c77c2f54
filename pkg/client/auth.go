package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type authResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Login authenticates against the server and returns the verified user.
// Persisting the identity is the caller's decision, so a failed login cannot
// disturb the current session.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Register(ctx context.Context, username, password, role string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, registerRequest{Username: username, Password: password, Role: role}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var resp struct {
		Users []User `json:"users"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/users", nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}
