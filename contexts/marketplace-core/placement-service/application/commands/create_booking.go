package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "admarket/contexts/marketplace-core/placement-service/application"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

type CreateBookingCommand struct {
	OpportunityID  string
	Actor          entities.Actor
	OfferID        string
	RequestedStart time.Time
	RequestedEnd   time.Time
	SelectedPrice  float64
	Currency       string
	Notes          string
}

type CreateBookingUseCase struct {
	Opportunities ports.OpportunityRepository
	Offers        ports.OfferRepository
	Bookings      ports.BookingRepository
	Notifier      ports.NotificationEmitter
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func (uc CreateBookingUseCase) Execute(ctx context.Context, cmd CreateBookingCommand) (entities.Booking, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.Actor.Role != entities.RoleAdvertiser {
		return entities.Booking{}, domainerrors.ErrForbidden
	}

	opportunity, err := uc.Opportunities.GetOpportunity(ctx, strings.TrimSpace(cmd.OpportunityID))
	if err != nil {
		return entities.Booking{}, err
	}
	if !opportunity.Bookable() {
		return entities.Booking{}, domainerrors.ErrOpportunityNotFound
	}

	start := cmd.RequestedStart.UTC()
	end := cmd.RequestedEnd.UTC()
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return entities.Booking{}, domainerrors.ErrInvalidWindow
	}
	if !opportunity.WindowWithinBounds(start, end) {
		return entities.Booking{}, domainerrors.ErrInvalidWindow
	}
	if cmd.SelectedPrice <= 0 {
		return entities.Booking{}, domainerrors.ErrInvalidInput
	}

	offerID := strings.TrimSpace(cmd.OfferID)
	if offerID != "" {
		offer, err := uc.Offers.GetOffer(ctx, offerID)
		if err != nil {
			return entities.Booking{}, domainerrors.ErrInvalidOffer
		}
		if offer.AdvertiserID != cmd.Actor.UserID || offer.OpportunityID != opportunity.OpportunityID {
			return entities.Booking{}, domainerrors.ErrInvalidOffer
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = opportunity.Currency
	}

	now := uc.Clock.Now().UTC()
	bookingID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Booking{}, err
	}

	booking := entities.Booking{
		BookingID:      bookingID,
		OpportunityID:  opportunity.OpportunityID,
		AdvertiserID:   strings.TrimSpace(cmd.Actor.UserID),
		PublisherID:    opportunity.PublisherID,
		OfferID:        offerID,
		RequestedStart: start,
		RequestedEnd:   end,
		SelectedPrice:  cmd.SelectedPrice,
		Currency:       currency,
		Status:         entities.BookingStatusPending,
		PaymentStatus:  entities.PaymentStatusPending,
		DeliveryNotes:  strings.TrimSpace(cmd.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.Bookings.CreateBooking(ctx, booking); err != nil {
		return entities.Booking{}, err
	}

	emitNotification(ctx, uc.Notifier, logger, ports.Notification{
		RecipientID: booking.PublisherID,
		ActorID:     booking.AdvertiserID,
		Kind:        "booking_requested",
		ReferenceID: booking.BookingID,
		Message:     "A new booking was requested for your opportunity.",
	})

	logger.Info("booking created",
		"event", "booking_created",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"booking_id", booking.BookingID,
		"opportunity_id", booking.OpportunityID,
		"advertiser_id", booking.AdvertiserID,
	)
	return booking, nil
}
