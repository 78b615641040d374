// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"net/url"
)

// Login authenticates against user-service and returns the bearer
// token for subsequent requests. Sent unauthenticated.
func (client *Client) Login(ctx context.Context, credentials Credentials) (*LoginResult, error) {
	if credentials.UserID == "" || credentials.Password == "" {
		return nil, fmt.Errorf("booking: user ID and password are required")
	}

	var result LoginResult
	if err := client.post(ctx, "/user-service/login", credentials, &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("booking: login response contained no token")
	}
	return &result, nil
}

// Register creates a new account. The password confirmation must be
// validated by the caller before this is issued; a mismatch is a local
// validation failure, not a network round trip.
func (client *Client) Register(ctx context.Context, registration Registration) error {
	if registration.Password != registration.PasswordConfirmation {
		return fmt.Errorf("booking: password confirmation does not match")
	}
	return client.post(ctx, "/user-service/register", registration, nil)
}

// ListUsers returns all registered users. Admin-only.
func (client *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := client.get(ctx, "/user-service/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user by ID. Admin-only.
func (client *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var result User
	if err := client.get(ctx, "/user-service/users/"+url.PathEscape(userID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser removes a user account. Admin-only.
func (client *Client) DeleteUser(ctx context.Context, userID string) error {
	return client.delete(ctx, "/user-service/users/"+url.PathEscape(userID))
}
