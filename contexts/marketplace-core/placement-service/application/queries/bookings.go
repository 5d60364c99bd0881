package queries

import (
	"context"
	"log/slog"
	"strings"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

type GetBookingUseCase struct {
	Bookings ports.BookingRepository
	Logger   *slog.Logger
}

func (uc GetBookingUseCase) Execute(ctx context.Context, bookingID string, actor entities.Actor) (entities.Booking, error) {
	booking, err := uc.Bookings.GetBooking(ctx, strings.TrimSpace(bookingID))
	if err != nil {
		return entities.Booking{}, err
	}
	if !actor.Owns(booking.AdvertiserID) && !actor.Owns(booking.PublisherID) {
		return entities.Booking{}, domainerrors.ErrForbidden
	}
	return booking, nil
}

type ListBookingsQuery struct {
	Actor         entities.Actor
	OpportunityID string
	Status        string
}

type ListBookingsUseCase struct {
	Bookings ports.BookingRepository
	Logger   *slog.Logger
}

func (uc ListBookingsUseCase) Execute(ctx context.Context, query ListBookingsQuery) ([]entities.Booking, error) {
	filter := ports.BookingFilter{
		OpportunityID: strings.TrimSpace(query.OpportunityID),
	}
	if strings.TrimSpace(query.Status) != "" {
		filter.Status = entities.BookingStatus(strings.TrimSpace(query.Status))
	}
	switch query.Actor.Role {
	case entities.RoleAdvertiser:
		filter.AdvertiserID = query.Actor.UserID
	case entities.RolePublisher:
		filter.PublisherID = query.Actor.UserID
	case entities.RoleAdmin:
	default:
		return nil, domainerrors.ErrForbidden
	}
	return uc.Bookings.ListBookings(ctx, filter)
}
