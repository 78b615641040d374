// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

// Package booking is a typed HTTP client for the laboratory reservation
// backend. The backend is a composite of three services behind one
// origin: booking-service (inventory and reservations), generate-service
// (bulk inventory creation), and user-service (authentication and user
// management). All request and response bodies are JSON.
//
// The client holds no reservation state: callers own the fetched
// snapshots and decide when to re-fetch. Authentication is a bearer
// token supplied by an injected [TokenSource]; when the source yields
// an empty token the request is sent unauthenticated and the server
// decides what that caller may see.
//
// Non-2xx responses are normalized into [*APIError] carrying the status
// code and the server's "message" field, so upstream components never
// inspect raw transport errors.
package booking
