package api

import (
	"context"

	"scriptcraft-client/internal/core"
)

// Register creates a new account and returns the created profile.
func (c *Client) Register(ctx context.Context, req core.RegisterRequest) (core.UserInfo, error) {
	var user core.UserInfo
	err := c.post(ctx, "/auth/register", req, &user)
	return user, err
}

// Login exchanges credentials for a bearer token and the user's profile.
func (c *Client) Login(ctx context.Context, req core.LoginRequest) (core.LoginResult, error) {
	var result core.LoginResult
	err := c.post(ctx, "/auth/login", req, &result)
	return result, err
}

// GetUserProfile fetches the profile of the logged-in user.
func (c *Client) GetUserProfile(ctx context.Context) (core.UserInfo, error) {
	var user core.UserInfo
	err := c.get(ctx, "/auth/profile", nil, &user)
	return user, err
}
