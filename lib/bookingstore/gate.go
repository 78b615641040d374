// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingstore

import (
	"errors"

	"github.com/labreserve/labreserve/lib/booking"
)

// ErrNoTarget is returned by [ActionGate.Begin] when no booking or
// user is selected. The caller must not issue a network call.
var ErrNoTarget = errors.New("no target selected")

// ErrBusy is returned by [ActionGate.Begin] while a previous action is
// still unresolved. This is the double-submit guard: the UI disables
// its controls, and even if an event slips through the gate refuses.
var ErrBusy = errors.New("another action is still in progress")

// ActionKind identifies a mutating user action.
type ActionKind int

const (
	// ActionReserve transitions a booking from available to reserved.
	ActionReserve ActionKind = iota
	// ActionCancel transitions a booking from reserved to available.
	ActionCancel
	// ActionDelete removes a booking slot entirely (admin).
	ActionDelete
	// ActionDeleteUser removes a user account (admin).
	ActionDeleteUser
)

// RequiresConfirmation reports whether the action is destructive and
// must pass an explicit confirmation step before any network call.
func (kind ActionKind) RequiresConfirmation() bool {
	switch kind {
	case ActionCancel, ActionDelete, ActionDeleteUser:
		return true
	}
	return false
}

// successNotice is the user-visible message for a completed action.
func (kind ActionKind) successNotice() string {
	switch kind {
	case ActionReserve:
		return "Reservation confirmed."
	case ActionCancel:
		return "Reservation cancelled."
	case ActionDelete:
		return "Booking deleted."
	case ActionDeleteUser:
		return "User deleted."
	}
	return "Done."
}

// fallbackNotice is the user-visible failure message when the server
// supplied none.
func (kind ActionKind) fallbackNotice() string {
	switch kind {
	case ActionReserve:
		return "Lab is already reserved."
	case ActionCancel:
		return "No reservation to cancel."
	case ActionDelete:
		return "Failed to delete booking."
	case ActionDeleteUser:
		return "Failed to delete user."
	}
	return "Action failed."
}

// Outcome describes a resolved action for the UI: what to show and
// whether to re-fetch.
type Outcome struct {
	Kind   ActionKind
	Target string

	// Success is true when the backend accepted the action.
	Success bool

	// Notice is the user-visible result message. On failure this is
	// the server's message verbatim when present, else the fixed
	// per-kind fallback.
	Notice string

	// Refresh is true exactly when the action succeeded: the store
	// must be re-fetched once. There is no optimistic local mutation;
	// the next snapshot is the visual truth.
	Refresh bool

	// Unauthorized is true when the backend rejected the caller's
	// credential. The owner of the session should tear it down.
	Unauthorized bool
}

// ActionGate serializes mutating actions. At most one action is in
// flight at a time; Begin admits an action and Resolve retires it.
// Like the stores, the gate is confined to the UI event loop.
type ActionGate struct {
	pending bool
	kind    ActionKind
	target  string
}

// Begin admits an action against the given target. Fails with
// ErrNoTarget on an empty target and ErrBusy while a previous action
// is unresolved; in both cases no network call may be issued.
func (gate *ActionGate) Begin(kind ActionKind, target string) error {
	if target == "" {
		return ErrNoTarget
	}
	if gate.pending {
		return ErrBusy
	}
	gate.pending = true
	gate.kind = kind
	gate.target = target
	return nil
}

// Pending reports whether an action is in flight. The UI disables its
// action controls while this is true.
func (gate *ActionGate) Pending() bool {
	return gate.pending
}

// Resolve retires the in-flight action with the transport result and
// returns the outcome for the UI. Calling Resolve with no pending
// action returns a zero Outcome; this only happens on programmer
// error, and the zero value is inert (no notice, no refresh).
func (gate *ActionGate) Resolve(err error) Outcome {
	if !gate.pending {
		return Outcome{}
	}

	outcome := Outcome{Kind: gate.kind, Target: gate.target}
	gate.pending = false
	gate.target = ""

	if err == nil {
		outcome.Success = true
		outcome.Refresh = true
		outcome.Notice = outcome.Kind.successNotice()
		return outcome
	}

	outcome.Notice = booking.ServerMessage(err)
	if outcome.Notice == "" {
		outcome.Notice = outcome.Kind.fallbackNotice()
	}
	outcome.Unauthorized = booking.IsUnauthorized(err)
	return outcome
}
