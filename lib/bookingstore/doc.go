// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingstore holds the client-side reservation state: the
// fetched snapshot with its loading/error flags, the derived filtered
// view, and the gate that serializes user-initiated mutations.
//
// The types here are passive and UI-framework-free. They are driven by
// a single-threaded event loop (the bubbletea Update function in
// [bookingui]); nothing in this package starts goroutines or performs
// network calls. The loop calls [ListStore.Begin] when a fetch is
// issued and [ListStore.Resolve] when its response arrives, and the
// store's sequence numbers decide whether that response still matters.
// A response from a superseded fetch is discarded, so a slow old
// request can never overwrite a newer snapshot.
//
// Visual truth always comes from the last applied fetch: successful
// mutations do not patch the snapshot locally, they trigger exactly
// one re-fetch through the [ActionGate] outcome.
package bookingstore
