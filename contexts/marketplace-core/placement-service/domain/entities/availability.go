package entities

import "time"

// AvailabilityWindow is one ledger entry of reserved time for an opportunity.
// Entries with Booked set participate in the overlap invariant; entries are
// created exclusively by offer acceptance.
type AvailabilityWindow struct {
	WindowID      string
	OpportunityID string
	StartAt       time.Time
	EndAt         time.Time
	Booked        bool
	Note          string
	CreatedAt     time.Time
}
