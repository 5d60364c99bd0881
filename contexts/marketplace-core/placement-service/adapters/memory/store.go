package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	domainservices "admarket/contexts/marketplace-core/placement-service/domain/services"
	"admarket/contexts/marketplace-core/placement-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory adapter backing every placement-service port. One
// mutex covers all aggregates, so CommitAcceptance is atomic by construction:
// the overlap check and the three writes happen under a single critical
// section.
type Store struct {
	mu sync.RWMutex

	opportunities map[string]entities.Opportunity
	offers        map[string]entities.Offer
	windows       []entities.AvailabilityWindow
	bookings      map[string]entities.Booking

	notifications  []ports.Notification
	intents        []ports.PaymentIntentRequest
	payoutAccounts map[string]string
}

func NewStore(seed []entities.Opportunity) *Store {
	opportunities := make(map[string]entities.Opportunity, len(seed))
	for _, item := range seed {
		opportunities[item.OpportunityID] = item
	}
	return &Store{
		opportunities:  opportunities,
		offers:         make(map[string]entities.Offer),
		windows:        make([]entities.AvailabilityWindow, 0),
		bookings:       make(map[string]entities.Booking),
		payoutAccounts: make(map[string]string),
	}
}

func (s *Store) CreateOpportunity(_ context.Context, opportunity entities.Opportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.opportunities[opportunity.OpportunityID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.opportunities[opportunity.OpportunityID] = opportunity
	return nil
}

func (s *Store) UpdateOpportunity(_ context.Context, opportunity entities.Opportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.opportunities[opportunity.OpportunityID]; !exists {
		return domainerrors.ErrOpportunityNotFound
	}
	s.opportunities[opportunity.OpportunityID] = opportunity
	return nil
}

func (s *Store) GetOpportunity(_ context.Context, opportunityID string) (entities.Opportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.opportunities[strings.TrimSpace(opportunityID)]
	if !exists {
		return entities.Opportunity{}, domainerrors.ErrOpportunityNotFound
	}
	return item, nil
}

func (s *Store) ListOpportunities(_ context.Context, filter ports.OpportunityFilter) ([]entities.Opportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Opportunity, 0, len(s.opportunities))
	for _, opportunity := range s.opportunities {
		if strings.TrimSpace(filter.PublisherID) != "" && opportunity.PublisherID != strings.TrimSpace(filter.PublisherID) {
			continue
		}
		if filter.Status != "" && opportunity.Status != filter.Status {
			continue
		}
		items = append(items, opportunity)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateOffer(_ context.Context, offer entities.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offers[offer.OfferID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.offers[offer.OfferID] = offer
	return nil
}

func (s *Store) UpdateOffer(_ context.Context, offer entities.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offers[offer.OfferID]; !exists {
		return domainerrors.ErrOfferNotFound
	}
	s.offers[offer.OfferID] = offer
	return nil
}

func (s *Store) GetOffer(_ context.Context, offerID string) (entities.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.offers[strings.TrimSpace(offerID)]
	if !exists {
		return entities.Offer{}, domainerrors.ErrOfferNotFound
	}
	return item, nil
}

func (s *Store) ListOffers(_ context.Context, filter ports.OfferFilter) ([]entities.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		if strings.TrimSpace(filter.AdvertiserID) != "" && offer.AdvertiserID != strings.TrimSpace(filter.AdvertiserID) {
			continue
		}
		if strings.TrimSpace(filter.PublisherID) != "" && offer.PublisherID != strings.TrimSpace(filter.PublisherID) {
			continue
		}
		if strings.TrimSpace(filter.OpportunityID) != "" && offer.OpportunityID != strings.TrimSpace(filter.OpportunityID) {
			continue
		}
		if filter.Status != "" && offer.Status != filter.Status {
			continue
		}
		items = append(items, offer)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ListWindows(_ context.Context, opportunityID string) ([]entities.AvailabilityWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AvailabilityWindow, 0)
	for _, window := range s.windows {
		if window.OpportunityID == strings.TrimSpace(opportunityID) {
			items = append(items, window)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartAt.Before(items[j].StartAt)
	})
	return items, nil
}

func (s *Store) CommitAcceptance(_ context.Context, offer entities.Offer, window entities.AvailabilityWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	opportunity, exists := s.opportunities[offer.OpportunityID]
	if !exists {
		return domainerrors.ErrOpportunityNotFound
	}
	if _, exists := s.offers[offer.OfferID]; !exists {
		return domainerrors.ErrOfferNotFound
	}

	booked := make([]entities.AvailabilityWindow, 0)
	for _, existing := range s.windows {
		if existing.OpportunityID == offer.OpportunityID {
			booked = append(booked, existing)
		}
	}
	if domainservices.HasBookedOverlap(booked, window.StartAt, window.EndAt) {
		return domainerrors.ErrWindowConflict
	}

	s.windows = append(s.windows, window)
	s.offers[offer.OfferID] = offer
	opportunity.Status = entities.OpportunityStatusBooked
	opportunity.UpdatedAt = offer.UpdatedAt
	s.opportunities[opportunity.OpportunityID] = opportunity
	return nil
}

func (s *Store) CreateBooking(_ context.Context, booking entities.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[booking.BookingID]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.bookings[booking.BookingID] = booking
	return nil
}

func (s *Store) UpdateBooking(_ context.Context, booking entities.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[booking.BookingID]; !exists {
		return domainerrors.ErrBookingNotFound
	}
	s.bookings[booking.BookingID] = booking
	return nil
}

func (s *Store) GetBooking(_ context.Context, bookingID string) (entities.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.bookings[strings.TrimSpace(bookingID)]
	if !exists {
		return entities.Booking{}, domainerrors.ErrBookingNotFound
	}
	return item, nil
}

func (s *Store) ListBookings(_ context.Context, filter ports.BookingFilter) ([]entities.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if strings.TrimSpace(filter.AdvertiserID) != "" && booking.AdvertiserID != strings.TrimSpace(filter.AdvertiserID) {
			continue
		}
		if strings.TrimSpace(filter.PublisherID) != "" && booking.PublisherID != strings.TrimSpace(filter.PublisherID) {
			continue
		}
		if strings.TrimSpace(filter.OpportunityID) != "" && booking.OpportunityID != strings.TrimSpace(filter.OpportunityID) {
			continue
		}
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		items = append(items, booking)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// Notify records emitted notifications for inspection in tests and for the
// in-memory runtime mode. Production wiring replaces this with the
// notification-service bridge.
func (s *Store) Notify(_ context.Context, note ports.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, note)
	return nil
}

func (s *Store) Notifications() []ports.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ports.Notification(nil), s.notifications...)
}

// CreateIntent is the recording fake of the payment processor.
func (s *Store) CreateIntent(_ context.Context, req ports.PaymentIntentRequest) (ports.PaymentIntentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.intents = append(s.intents, req)
	intentID := "pi_" + uuid.NewString()
	return ports.PaymentIntentResult{
		IntentID:     intentID,
		ClientSecret: intentID + "_secret_" + uuid.NewString(),
	}, nil
}

func (s *Store) MintedIntents() []ports.PaymentIntentRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ports.PaymentIntentRequest(nil), s.intents...)
}

func (s *Store) PayoutAccountID(_ context.Context, publisherID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.payoutAccounts[strings.TrimSpace(publisherID)], nil
}

func (s *Store) SetPayoutAccount(publisherID, accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payoutAccounts[strings.TrimSpace(publisherID)] = strings.TrimSpace(accountID)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
