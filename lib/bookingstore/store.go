// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingstore

import "github.com/labreserve/labreserve/lib/booking"

// ListStore holds the latest known snapshot of one remote list
// (bookings or users) together with its loading and error state.
//
// The store moves through a small state machine: idle, then Loading
// after Begin, then Ready or Errored after Resolve. Entering Loading
// discards the previous snapshot immediately, so the UI shows a loading
// state rather than stale data. In-flight fetches are never aborted;
// instead each fetch carries a sequence number and Resolve ignores any
// response that is not from the most recently issued fetch.
//
// Not safe for concurrent use: the store is confined to the UI event
// loop.
type ListStore[T any] struct {
	// fallbackError is shown when a fetch fails without a
	// server-supplied message.
	fallbackError string

	seq      uint64
	started  bool
	loading  bool
	errorMsg string
	snapshot []T
}

// NewListStore creates an idle store. fallbackError is the generic
// failure message used when the server supplies none.
func NewListStore[T any](fallbackError string) *ListStore[T] {
	return &ListStore[T]{fallbackError: fallbackError}
}

// Begin enters the Loading state and returns the sequence number the
// eventual Resolve call must present. The previous snapshot and error
// are cleared now, not when the response lands.
func (store *ListStore[T]) Begin() uint64 {
	store.seq++
	store.started = true
	store.loading = true
	store.errorMsg = ""
	store.snapshot = nil
	return store.seq
}

// Resolve applies a fetch result. Returns false when the result
// belongs to a superseded fetch (a newer Begin happened after it was
// issued), in which case the store is left untouched and the caller
// should drop the data.
func (store *ListStore[T]) Resolve(seq uint64, items []T, err error) bool {
	if seq != store.seq {
		return false
	}

	store.loading = false
	if err != nil {
		store.snapshot = nil
		store.errorMsg = booking.ServerMessage(err)
		if store.errorMsg == "" {
			store.errorMsg = store.fallbackError
		}
		return true
	}

	store.snapshot = items
	store.errorMsg = ""
	return true
}

// Snapshot returns the items from the last applied successful fetch.
// Nil while loading, after a failure, or before the first fetch.
func (store *ListStore[T]) Snapshot() []T {
	return store.snapshot
}

// Loading reports whether a fetch is outstanding.
func (store *ListStore[T]) Loading() bool {
	return store.loading
}

// ErrorMessage returns the failure message from the last applied
// fetch, or "" when the store is loading or holds a good snapshot.
func (store *ListStore[T]) ErrorMessage() string {
	return store.errorMsg
}

// Started reports whether a fetch has ever been issued. The UI uses
// this to distinguish "not yet opened" from "loaded an empty list".
func (store *ListStore[T]) Started() bool {
	return store.started
}
