// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// defaultTimeout bounds every request. The backend has no streaming
// endpoints, so a single fixed deadline is enough; deadline expiry
// surfaces as a "request timed out" error rather than whatever the
// transport default would produce.
const defaultTimeout = 15 * time.Second

// maxResponseBytes caps response body reads. Booking snapshots are
// small; anything past this is a misbehaving server.
const maxResponseBytes = 8 << 20

// TokenSource supplies the bearer credential for outbound requests.
// An empty token means the request is sent unauthenticated. Sessions
// are injected through this interface rather than read from ambient
// global state, so the credential lifecycle (login, logout, expiry)
// stays with the owner of the session file.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token. Useful in
// tests and for one-shot CLI calls made right after login.
type StaticToken string

// Token returns the fixed token value.
func (token StaticToken) Token() string { return string(token) }

// Config holds configuration for creating a reservation backend Client.
type Config struct {
	// BaseURL is the root URL of the reservation backend. Required.
	// Must use HTTPS.
	BaseURL string

	// TokenSource supplies the bearer token attached to requests.
	// Optional: a nil source sends every request unauthenticated.
	TokenSource TokenSource

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Timeout is the per-request deadline. Defaults to 15 seconds.
	Timeout time.Duration

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the reservation backend with automatic
// bearer authentication and normalized error handling. It performs no
// retries and interprets status codes only as success or failure; the
// caller decides what a failure means for on-screen state.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	timeout     time.Duration
	logger      *slog.Logger
}

// NewClient creates a reservation backend client from the given
// configuration. Returns an error if the base URL is missing or not
// HTTPS.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("booking: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("booking: API client requires HTTPS (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		tokenSource: config.TokenSource,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

// do executes one request against the backend. The path is relative to
// the base URL and must match the service contract exactly. A non-nil
// requestBody is JSON-encoded. Returns the raw response body; non-2xx
// responses return an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("booking: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	url := client.baseURL + path
	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("booking: creating request: %w", err)
	}

	if client.tokenSource != nil {
		if token := client.tokenSource.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("booking: %s %s: request timed out after %s: %w",
				method, path, client.timeout, context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("booking: %s %s: %w", method, url, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("booking: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiError := parseAPIError(response.StatusCode, body)
		client.logger.Debug("backend request failed",
			"method", method,
			"path", path,
			"status", response.StatusCode,
			"message", apiError.Message,
		)
		return nil, apiError
	}

	return body, nil
}

// get executes a GET request and decodes the JSON response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(body, result)
}

// post executes a POST request, decoding the response into result when
// result is non-nil.
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		return decode(body, result)
	}
	return nil
}

// put executes a PUT request, discarding any response body. The
// reservation transitions (make, cancel) are PUTs whose interesting
// outcome is only success or the error message.
func (client *Client) put(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodPut, path, nil)
	return err
}

// delete executes a DELETE request, discarding any response body.
func (client *Client) delete(ctx context.Context, path string) error {
	_, err := client.do(ctx, http.MethodDelete, path, nil)
	return err
}

// decode unmarshals a response body into result, tolerating an empty
// body (some write endpoints return 200 with no content).
func decode(body []byte, result any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("booking: decoding response: %w", err)
	}
	return nil
}

// parseAPIError builds an APIError from a status code and response
// body. The backend's error shape is {"message": "..."}; anything else
// is passed through as raw text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}

	return apiError
}
