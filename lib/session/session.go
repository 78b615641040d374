// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

// Package session persists the user's authentication state for the
// reservation backend. The session file plays the role the browser
// front-end gave to local storage: the bearer token plus the implied
// logged-in flag. Unlike local storage it is not ambient: the loaded
// Session is injected into the transport client as its TokenSource and
// into the UI as its logged-in signal, with an explicit lifecycle (set
// on login success, cleared on logout or when the backend rejects the
// credential).
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session holds the authenticated user's identity and bearer token.
type Session struct {
	// UserID is the account identifier the token was issued for.
	UserID string `json:"user_id"`

	// AccessToken is the opaque bearer token attached to protected
	// requests. Its validation is entirely server-side.
	AccessToken string `json:"token"`
}

// Token implements booking.TokenSource.
func (session *Session) Token() string {
	if session == nil {
		return ""
	}
	return session.AccessToken
}

// FilePath returns the path of the session file. Checks the
// LABRESERVE_SESSION_FILE environment variable first, then falls back
// to ~/.config/labreserve/session.json.
func FilePath() string {
	if envPath := os.Getenv("LABRESERVE_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Last-ditch fallback when the home directory is unknown.
			return filepath.Join("/tmp", "labreserve-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "labreserve", "session.json")
}

// Load reads the session from the well-known path. Returns (nil, nil)
// when no session exists: an absent session is the logged-out state,
// not an error.
func Load() (*Session, error) {
	return LoadFrom(FilePath())
}

// LoadFrom reads a session from a specific file path.
func LoadFrom(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var loaded Session
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if loaded.AccessToken == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}

	return &loaded, nil
}

// Save writes the session to the well-known path. The parent directory
// is created with mode 0700 and the file written 0600, since the file
// contains the access token.
func Save(current *Session) error {
	return SaveTo(current, FilePath())
}

// SaveTo writes a session to a specific file path.
func SaveTo(current *Session, path string) error {
	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}

	return nil
}

// Clear removes the session file. Removing an already-absent session
// is not an error.
func Clear() error {
	return ClearAt(FilePath())
}

// ClearAt removes a session file at a specific path.
func ClearAt(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}
