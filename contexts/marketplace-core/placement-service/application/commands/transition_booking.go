package commands

import (
	"context"
	"log/slog"
	"strings"

	application "admarket/contexts/marketplace-core/placement-service/application"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

// BookingCommand is the closed set of lifecycle actions on a booking.
type BookingCommand interface {
	isBookingCommand()
}

type AcceptBooking struct{}

type RejectBooking struct{}

type DeliverBooking struct {
	Files []string
	Notes string
}

type ApproveBooking struct{}

type DisputeBooking struct {
	Reason string
}

func (AcceptBooking) isBookingCommand()  {}
func (RejectBooking) isBookingCommand()  {}
func (DeliverBooking) isBookingCommand() {}
func (ApproveBooking) isBookingCommand() {}
func (DisputeBooking) isBookingCommand() {}

type TransitionBookingUseCase struct {
	Bookings ports.BookingRepository
	Notifier ports.NotificationEmitter
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Execute applies one lifecycle action under the permission matrix: the
// publisher of record accepts, rejects and delivers; the advertiser of record
// approves and disputes; admin overrides both. Source-state guards are
// enforced for every action.
func (uc TransitionBookingUseCase) Execute(
	ctx context.Context,
	bookingID string,
	actor entities.Actor,
	cmd BookingCommand,
) (entities.Booking, error) {
	logger := application.ResolveLogger(uc.Logger)
	booking, err := uc.Bookings.GetBooking(ctx, strings.TrimSpace(bookingID))
	if err != nil {
		return entities.Booking{}, err
	}

	now := uc.Clock.Now().UTC()
	from := booking.Status
	var recipient, kind, message string

	switch c := cmd.(type) {
	case AcceptBooking:
		if !actor.Owns(booking.PublisherID) {
			return entities.Booking{}, domainerrors.ErrForbidden
		}
		if booking.Status != entities.BookingStatusPending {
			return entities.Booking{}, domainerrors.ErrInvalidBookingState
		}
		booking.Status = entities.BookingStatusAccepted
		recipient, kind, message = booking.AdvertiserID, "booking_accepted", "Your booking was accepted."

	case RejectBooking:
		if !actor.Owns(booking.PublisherID) {
			return entities.Booking{}, domainerrors.ErrForbidden
		}
		if booking.Status != entities.BookingStatusPending {
			return entities.Booking{}, domainerrors.ErrInvalidBookingState
		}
		booking.Status = entities.BookingStatusCancelled
		recipient, kind, message = booking.AdvertiserID, "booking_rejected", "Your booking was rejected."

	case DeliverBooking:
		if !actor.Owns(booking.PublisherID) {
			return entities.Booking{}, domainerrors.ErrForbidden
		}
		if booking.Status != entities.BookingStatusAccepted {
			return entities.Booking{}, domainerrors.ErrInvalidBookingState
		}
		booking.Status = entities.BookingStatusDelivered
		booking.DeliveredAt = &now
		booking.DeliveredFiles = append([]string(nil), c.Files...)
		if notes := strings.TrimSpace(c.Notes); notes != "" {
			booking.DeliveryNotes = notes
		}
		recipient, kind, message = booking.AdvertiserID, "booking_delivered", "The placement was delivered."

	case ApproveBooking:
		if !actor.Owns(booking.AdvertiserID) {
			return entities.Booking{}, domainerrors.ErrForbidden
		}
		if booking.Status != entities.BookingStatusDelivered {
			return entities.Booking{}, domainerrors.ErrInvalidBookingState
		}
		booking.Status = entities.BookingStatusCompleted
		booking.ApprovedAt = &now
		booking.ApprovedBy = actor.UserID
		recipient, kind, message = booking.PublisherID, "booking_approved", "The delivery was approved."

	case DisputeBooking:
		if !actor.Owns(booking.AdvertiserID) {
			return entities.Booking{}, domainerrors.ErrForbidden
		}
		if booking.Status != entities.BookingStatusDelivered {
			return entities.Booking{}, domainerrors.ErrInvalidBookingState
		}
		reason := strings.TrimSpace(c.Reason)
		if reason == "" {
			return entities.Booking{}, domainerrors.ErrInvalidInput
		}
		booking.Status = entities.BookingStatusDisputed
		booking.DisputeReason = reason
		recipient, kind, message = booking.PublisherID, "booking_disputed", "The delivery was disputed."

	default:
		return entities.Booking{}, domainerrors.ErrInvalidInput
	}

	booking.UpdatedAt = now
	if err := uc.Bookings.UpdateBooking(ctx, booking); err != nil {
		return entities.Booking{}, err
	}

	emitNotification(ctx, uc.Notifier, logger, ports.Notification{
		RecipientID: recipient,
		ActorID:     actor.UserID,
		Kind:        kind,
		ReferenceID: booking.BookingID,
		Message:     message,
	})

	logger.Info("booking transitioned",
		"event", "booking_transitioned",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"booking_id", booking.BookingID,
		"from_status", string(from),
		"to_status", string(booking.Status),
		"actor_id", actor.UserID,
	)
	return booking, nil
}
