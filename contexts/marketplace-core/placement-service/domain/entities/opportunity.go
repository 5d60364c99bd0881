package entities

import (
	"strings"
	"time"
)

type OpportunityStatus string

const (
	OpportunityStatusDraft     OpportunityStatus = "draft"
	OpportunityStatusPublished OpportunityStatus = "published"
	OpportunityStatusPaused    OpportunityStatus = "paused"
	OpportunityStatusArchived  OpportunityStatus = "archived"
	OpportunityStatusBooked    OpportunityStatus = "booked"
)

// Opportunity is a publisher's advertisable placement slot. The availability
// bounds, when declared, constrain every booking window requested against it.
type Opportunity struct {
	OpportunityID string
	PublisherID   string
	Title         string
	Description   string
	BasePrice     float64
	Currency      string
	AvailableFrom *time.Time
	AvailableTo   *time.Time
	Status        OpportunityStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (o Opportunity) Bookable() bool {
	return o.Status == OpportunityStatusPublished
}

// WindowWithinBounds reports whether [start, end) fits inside the declared
// availability bounds. Opportunities without bounds accept any window.
func (o Opportunity) WindowWithinBounds(start, end time.Time) bool {
	if o.AvailableFrom != nil && start.Before(*o.AvailableFrom) {
		return false
	}
	if o.AvailableTo != nil && end.After(*o.AvailableTo) {
		return false
	}
	return true
}

func (o Opportunity) ValidateBasics() bool {
	title := strings.TrimSpace(o.Title)
	return title != "" &&
		len(title) <= 200 &&
		o.BasePrice > 0 &&
		strings.TrimSpace(o.PublisherID) != "" &&
		(o.AvailableFrom == nil || o.AvailableTo == nil || o.AvailableFrom.Before(*o.AvailableTo))
}

func IsSupportedOpportunityStatus(status OpportunityStatus) bool {
	switch status {
	case OpportunityStatusDraft, OpportunityStatusPublished, OpportunityStatusPaused,
		OpportunityStatusArchived, OpportunityStatusBooked:
		return true
	default:
		return false
	}
}
