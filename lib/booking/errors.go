// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the reservation backend.
// The backend returns JSON error bodies with a "message" field; when
// the body is not in that shape the raw body text is used instead.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the server-supplied error description. May be empty
	// when the server returned no body.
	Message string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("booking: HTTP %d: %s", err.StatusCode, err.Message)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsUnauthorized reports whether err is a 401 response. Callers treat
// this as an expired or invalid session and tear the session down.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 401
}

// IsConflict reports whether err is a 409 response. The backend uses
// conflicts for reservation races (slot already reserved by someone
// else between fetch and action).
func IsConflict(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 409
}

// IsTimeout reports whether err is a request that hit the client's
// fixed per-request deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// ServerMessage extracts the server-supplied message from an error
// chain. Returns "" for transport failures and for server errors
// without a message, in which case callers fall back to a fixed
// per-action string.
func ServerMessage(err error) string {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError.Message
	}
	return ""
}
