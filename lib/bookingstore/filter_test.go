// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingstore

import (
	"testing"

	"github.com/labreserve/labreserve/lib/booking"
)

func sampleSnapshot() []booking.Booking {
	return []booking.Booking{
		{ID: "1", Date: "2026-03-10", Time: "10:00", ClassRoom: "Lab 1", Priority: 2},
		{ID: "2", Date: "2026-03-10", Time: "12:00", ClassRoom: "Aula 2", Priority: 5},
		{ID: "3", Date: "2026-03-11", Time: "10:00", ClassRoom: "Lab 2", Priority: 2},
	}
}

func ids(bookings []booking.Booking) []string {
	var result []string
	for _, entry := range bookings {
		result = append(result, entry.ID)
	}
	return result
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "empty filter passes everything",
			filter: Filter{},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "date is an exact match",
			filter: Filter{Date: "2026-03-10"},
			want:   []string{"1", "2"},
		},
		{
			name:   "partial date matches nothing",
			filter: Filter{Date: "2026-03"},
			want:   nil,
		},
		{
			name:   "classroom is a case-insensitive substring",
			filter: Filter{ClassRoom: "lab"},
			want:   []string{"1", "3"},
		},
		{
			name:   "priority matches exactly",
			filter: Filter{Priority: 2},
			want:   []string{"1", "3"},
		},
		{
			name:   "criteria combine with AND",
			filter: Filter{Date: "2026-03-10", ClassRoom: "lab"},
			want:   []string{"1"},
		},
		{
			name:   "all criteria",
			filter: Filter{Date: "2026-03-11", ClassRoom: "LAB", Priority: 2},
			want:   []string{"3"},
		},
		{
			name:   "no match",
			filter: Filter{ClassRoom: "gym"},
			want:   nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ids(test.filter.Apply(sampleSnapshot()))
			if len(got) != len(test.want) {
				t.Fatalf("Apply = %v, want %v", got, test.want)
			}
			for index := range got {
				if got[index] != test.want[index] {
					t.Fatalf("Apply = %v, want %v", got, test.want)
				}
			}
		})
	}
}

func TestFilter_ApplyDoesNotMutateSnapshot(t *testing.T) {
	snapshot := sampleSnapshot()
	Filter{ClassRoom: "lab"}.Apply(snapshot)
	if len(snapshot) != 3 || snapshot[1].ID != "2" {
		t.Error("Apply mutated its input")
	}
}

func TestFilter_ApplyIsIdempotent(t *testing.T) {
	filter := Filter{ClassRoom: "lab"}
	once := filter.Apply(sampleSnapshot())
	twice := filter.Apply(once)
	if len(once) != len(twice) {
		t.Errorf("second Apply changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilter_Empty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Error("zero filter not Empty")
	}
	if (Filter{Priority: 1}).Empty() {
		t.Error("priority-only filter reported Empty")
	}
}
