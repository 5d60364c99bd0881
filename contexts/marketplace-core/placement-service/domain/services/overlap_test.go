package services_test

import (
	"testing"
	"time"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	"admarket/contexts/marketplace-core/placement-service/domain/services"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsHalfOpenIntervals(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", day(1), day(3), day(5), day(7), false},
		{"touching endpoints do not overlap", day(1), day(3), day(3), day(5), false},
		{"touching endpoints reversed", day(3), day(5), day(1), day(3), false},
		{"partial overlap", day(1), day(4), day(3), day(6), true},
		{"contained", day(1), day(10), day(3), day(5), true},
		{"identical", day(1), day(5), day(1), day(5), true},
		{"single instant inside", day(2), day(2).Add(time.Hour), day(1), day(3), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestHasBookedOverlapIgnoresUnbookedWindows(t *testing.T) {
	windows := []entities.AvailabilityWindow{
		{WindowID: "w-1", StartAt: day(1), EndAt: day(5), Booked: false},
		{WindowID: "w-2", StartAt: day(10), EndAt: day(15), Booked: true},
	}

	if services.HasBookedOverlap(windows, day(2), day(4)) {
		t.Fatal("unbooked window must not block")
	}
	if !services.HasBookedOverlap(windows, day(12), day(13)) {
		t.Fatal("booked window must block")
	}
	if services.HasBookedOverlap(windows, day(15), day(20)) {
		t.Fatal("window starting at a booked end must not block")
	}
}
