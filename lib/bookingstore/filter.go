// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingstore

import (
	"strings"

	"github.com/labreserve/labreserve/lib/booking"
)

// Filter narrows a booking snapshot client-side. Criteria combine with
// AND semantics; a zero-value criterion always matches. Filtering is a
// pure function of (snapshot, criteria) and never triggers a re-fetch.
type Filter struct {
	// Date matches bookings whose date equals it exactly.
	Date string

	// ClassRoom matches by case-insensitive substring containment.
	ClassRoom string

	// Priority matches bookings with this exact priority when
	// non-zero. Valid priorities start at 1, so zero means unset.
	Priority int
}

// Empty reports whether no criteria are set.
func (filter Filter) Empty() bool {
	return filter.Date == "" && filter.ClassRoom == "" && filter.Priority == 0
}

// Matches reports whether entry satisfies every supplied criterion.
func (filter Filter) Matches(entry booking.Booking) bool {
	if filter.Date != "" && entry.Date != filter.Date {
		return false
	}
	if filter.ClassRoom != "" &&
		!strings.Contains(strings.ToLower(entry.ClassRoom), strings.ToLower(filter.ClassRoom)) {
		return false
	}
	if filter.Priority != 0 && entry.Priority != filter.Priority {
		return false
	}
	return true
}

// Apply returns the bookings that match, preserving snapshot order.
// With no criteria set the snapshot is returned as-is.
func (filter Filter) Apply(snapshot []booking.Booking) []booking.Booking {
	if filter.Empty() {
		return snapshot
	}

	var result []booking.Booking
	for _, entry := range snapshot {
		if filter.Matches(entry) {
			result = append(result, entry)
		}
	}
	return result
}
