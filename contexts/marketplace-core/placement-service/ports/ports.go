package ports

import (
	"context"
	"time"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
)

type OpportunityFilter struct {
	PublisherID string
	Status      entities.OpportunityStatus
}

type OfferFilter struct {
	AdvertiserID  string
	PublisherID   string
	OpportunityID string
	Status        entities.OfferStatus
}

type BookingFilter struct {
	AdvertiserID  string
	PublisherID   string
	OpportunityID string
	Status        entities.BookingStatus
}

type OpportunityRepository interface {
	CreateOpportunity(ctx context.Context, opportunity entities.Opportunity) error
	UpdateOpportunity(ctx context.Context, opportunity entities.Opportunity) error
	GetOpportunity(ctx context.Context, opportunityID string) (entities.Opportunity, error)
	ListOpportunities(ctx context.Context, filter OpportunityFilter) ([]entities.Opportunity, error)
}

type OfferRepository interface {
	CreateOffer(ctx context.Context, offer entities.Offer) error
	UpdateOffer(ctx context.Context, offer entities.Offer) error
	GetOffer(ctx context.Context, offerID string) (entities.Offer, error)
	ListOffers(ctx context.Context, filter OfferFilter) ([]entities.Offer, error)
}

type AvailabilityLedger interface {
	ListWindows(ctx context.Context, opportunityID string) ([]entities.AvailabilityWindow, error)
}

// AcceptanceStore commits an offer acceptance as one atomic unit: re-read the
// opportunity, reject any booked-window overlap with the finalized window,
// insert the ledger entry, store the accepted offer, and flip the opportunity
// to booked. Implementations return ErrWindowConflict on overlap and leave no
// partial writes behind.
type AcceptanceStore interface {
	CommitAcceptance(ctx context.Context, offer entities.Offer, window entities.AvailabilityWindow) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking entities.Booking) error
	UpdateBooking(ctx context.Context, booking entities.Booking) error
	GetBooking(ctx context.Context, bookingID string) (entities.Booking, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]entities.Booking, error)
}

type PaymentIntentRequest struct {
	BookingID       string
	Amount          float64
	Currency        string
	ApplicationFee  float64
	PayoutAccountID string
}

type PaymentIntentResult struct {
	IntentID     string
	ClientSecret string
}

// PaymentProcessor mints a client-confirmable payment intent with an external
// processor. Minting has monetary side effects; callers guard against
// re-minting for the same booking.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntentResult, error)
}

// PayoutDirectory resolves a publisher's linked payout destination. An empty
// account id means no destination is on file and funds stay with the platform
// until settled out of band.
type PayoutDirectory interface {
	PayoutAccountID(ctx context.Context, publisherID string) (string, error)
}

type Notification struct {
	RecipientID string
	ActorID     string
	Kind        string
	ReferenceID string
	Message     string
}

// NotificationEmitter receives lifecycle events for the counterpart user.
// Emission is best-effort from the caller's point of view; failures must not
// roll back the state transition that triggered them.
type NotificationEmitter interface {
	Notify(ctx context.Context, note Notification) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
