// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingui implements the terminal user interface for the
// laboratory reservation client. Built on bubbletea (Elm
// architecture), it renders four tabs mirroring the reservation
// system's screens: availability, the caller's own reservations, and
// the admin booking and user views.
//
// The package is a pure consumer of [bookingstore]: every snapshot,
// loading flag, and error it displays comes from a ListStore, every
// mutation goes through the ActionGate, and nothing here touches the
// snapshot directly. Network calls run as bubbletea commands; their
// results come back as messages into Update, which is the single
// thread of state mutation.
//
// Data flow:
//
//	[reservation backend]
//	        | (booking.Client, as tea.Cmd)
//	  [bookingstore] <- sequence-gated Resolve
//	        |
//	    [Model] <- bubbletea event loop
//	        |
//	  [terminal output]
package bookingui
