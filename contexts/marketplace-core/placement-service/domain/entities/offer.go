package entities

import "time"

type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusCountered OfferStatus = "countered"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusDeclined  OfferStatus = "declined"
	OfferStatusWithdrawn OfferStatus = "withdrawn"
)

// Offer is one advertiser's proposed terms against one opportunity. The
// publisher id is denormalized at creation so permission checks never need a
// second lookup.
type Offer struct {
	OfferID       string
	OpportunityID string
	AdvertiserID  string
	PublisherID   string
	Status        OfferStatus
	PricingType   string
	ProposedPrice float64
	Currency      string
	ProposedStart *time.Time
	ProposedEnd   *time.Time
	Notes         string
	LastActorID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AcceptedAt    *time.Time
}

// Terminal offers never transition again.
func (o Offer) Terminal() bool {
	switch o.Status {
	case OfferStatusAccepted, OfferStatusDeclined, OfferStatusWithdrawn:
		return true
	default:
		return false
	}
}

// ResolvedWindow returns the negotiated placement window once both ends are
// known. Counters merge over prior terms, so the stored window is always the
// latest agreed shape.
func (o Offer) ResolvedWindow() (start, end time.Time, ok bool) {
	if o.ProposedStart == nil || o.ProposedEnd == nil {
		return time.Time{}, time.Time{}, false
	}
	return *o.ProposedStart, *o.ProposedEnd, true
}
