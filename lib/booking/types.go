// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package booking

// Booking is one schedulable laboratory slot as reported by
// booking-service. The inventory is pre-generated server-side; clients
// only flip slots between available and reserved (or, for admins,
// delete them). ID is stable across fetches and is the sole key for
// list reconciliation and selection state.
type Booking struct {
	// ID is the opaque unique booking identifier ("bookingId" on the
	// wire).
	ID string `json:"bookingId"`

	// Date is the calendar date of the slot, as the server formats it.
	Date string `json:"bookingDate"`

	// Time is the time-of-day of the slot.
	Time string `json:"bookingTime"`

	// ClassRoom is the laboratory/room label.
	ClassRoom string `json:"bookingClassRoom"`

	// Priority is an integer rank (observed range 1-5). The client
	// treats it as an opaque sortable/filterable value.
	Priority int `json:"priority"`

	// Disable is the wire name of the availability flag. The backend's
	// naming is inverted relative to its meaning: true means the slot
	// is available, false means it is reserved. Use [Booking.Available]
	// instead of reading this field; rendering code must never say
	// "disabled".
	Disable bool `json:"disable"`

	// ReservedBy identifies the reserving user. Empty when the slot is
	// unreserved (the server sends null).
	ReservedBy string `json:"reservedBy"`
}

// Available reports whether the slot can currently be reserved. This is
// the canonical reading of the wire "disable" flag.
func (b Booking) Available() bool {
	return b.Disable
}

// Credentials is the login request body for user-service.
type Credentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Registration is the account creation request body for user-service.
// The server validates the password confirmation again, but callers
// should reject a mismatch locally before issuing the request.
type Registration struct {
	UserID               string `json:"userId"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// LoginResult is the successful login response: the bearer token that
// asserts the caller's identity on subsequent requests.
type LoginResult struct {
	Token string `json:"token"`
}

// User is one account as reported by user-service.
type User struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// GenerateResult is the response from a bulk inventory generation
// request. The server decides the actual count within the requested
// range.
type GenerateResult struct {
	Message        string `json:"message"`
	TotalGenerated int    `json:"totalGenerated"`
}
