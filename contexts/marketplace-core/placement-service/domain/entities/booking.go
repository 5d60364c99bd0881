package entities

import "time"

type BookingStatus string
type PaymentStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusDelivered BookingStatus = "delivered"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusDisputed  BookingStatus = "disputed"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking is the committed placement instance. Advertiser and publisher are
// fixed at creation and never swapped.
type Booking struct {
	BookingID      string
	OpportunityID  string
	AdvertiserID   string
	PublisherID    string
	OfferID        string
	RequestedStart time.Time
	RequestedEnd   time.Time
	SelectedPrice  float64
	Currency       string
	Status         BookingStatus
	PaymentStatus  PaymentStatus
	DeliveredAt    *time.Time
	DeliveredFiles []string
	DeliveryNotes  string
	ApprovedAt     *time.Time
	ApprovedBy     string
	DisputeReason  string

	PaymentIntentID string
	PlatformFee     float64
	PublisherPayout float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Booking) Terminal() bool {
	switch b.Status {
	case BookingStatusCancelled, BookingStatusCompleted, BookingStatusDisputed:
		return true
	default:
		return false
	}
}
