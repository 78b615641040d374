// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"fmt"
	"net/url"
)

// ListBookings returns the full booking inventory. No pagination: the
// backend returns the complete snapshot, and callers replace their
// in-memory copy wholesale on every successful fetch.
func (client *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.get(ctx, "/booking-service/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// MyReservations returns the bookings reserved by the caller. The
// caller's identity is derived server-side from the bearer token;
// requires authentication.
func (client *Client) MyReservations(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.get(ctx, "/booking-service/my-reservations", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking returns a single booking by ID.
func (client *Client) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	var result Booking
	path := "/booking-service/bookings/" + url.PathEscape(bookingID)
	if err := client.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateBooking creates a single booking slot. Admin-only; normal
// inventory comes from GenerateBookings.
func (client *Client) CreateBooking(ctx context.Context, entry Booking) (*Booking, error) {
	var result Booking
	if err := client.post(ctx, "/booking-service/bookings", entry, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteBooking removes a booking slot entirely. Admin-only.
func (client *Client) DeleteBooking(ctx context.Context, bookingID string) error {
	return client.delete(ctx, "/booking-service/bookings/"+url.PathEscape(bookingID))
}

// MakeReservation transitions a booking from available to reserved for
// the caller. Fails with a server message when the slot is already
// reserved.
func (client *Client) MakeReservation(ctx context.Context, bookingID string) error {
	return client.put(ctx, "/booking-service/bookings/make/"+url.PathEscape(bookingID))
}

// CancelReservation transitions a booking from reserved back to
// available. Fails with a server message when there is nothing to
// cancel.
func (client *Client) CancelReservation(ctx context.Context, bookingID string) error {
	return client.put(ctx, "/booking-service/bookings/cancel/"+url.PathEscape(bookingID))
}

// GenerateBookings asks generate-service to create between min and max
// new booking slots. The server decides the actual count within the
// range. Admin-only.
func (client *Client) GenerateBookings(ctx context.Context, min, max int) (*GenerateResult, error) {
	if min < 1 {
		return nil, fmt.Errorf("booking: generate min must be at least 1 (got %d)", min)
	}
	if max < min {
		return nil, fmt.Errorf("booking: generate max %d is below min %d", max, min)
	}

	var result GenerateResult
	path := fmt.Sprintf("/generate-service/generate-bookings?min=%d&max=%d", min, max)
	if err := client.post(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
