package services

import (
	"time"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
)

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasBookedOverlap scans ledger entries for a booked window intersecting
// [start, end). Callers must run this inside the same transaction that
// inserts the new window, or two concurrent acceptances could both pass.
func HasBookedOverlap(windows []entities.AvailabilityWindow, start, end time.Time) bool {
	for _, w := range windows {
		if !w.Booked {
			continue
		}
		if Overlaps(w.StartAt, w.EndAt, start, end) {
			return true
		}
	}
	return false
}
