package commands

import (
	"context"
	"log/slog"
	"strings"

	application "admarket/contexts/marketplace-core/placement-service/application"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/domain/services"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

type CreatePaymentIntentCommand struct {
	BookingID string
	Actor     entities.Actor
}

type CreatePaymentIntentResult struct {
	Booking      entities.Booking
	ClientSecret string
	// Replayed marks a request that found an existing intent and minted
	// nothing. The stored intent id is returned; no client secret is
	// available for replays.
	Replayed bool
}

type CreatePaymentIntentUseCase struct {
	Bookings  ports.BookingRepository
	Processor ports.PaymentProcessor
	Payouts   ports.PayoutDirectory
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Execute mints at most one processor-side payment intent per booking. A
// stored intent id short-circuits before any processor call, which is the
// retry-safety guarantee for this endpoint.
func (uc CreatePaymentIntentUseCase) Execute(ctx context.Context, cmd CreatePaymentIntentCommand) (CreatePaymentIntentResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	booking, err := uc.Bookings.GetBooking(ctx, strings.TrimSpace(cmd.BookingID))
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}
	if !cmd.Actor.Owns(booking.AdvertiserID) {
		return CreatePaymentIntentResult{}, domainerrors.ErrForbidden
	}
	if booking.PaymentStatus == entities.PaymentStatusPaid {
		return CreatePaymentIntentResult{}, domainerrors.ErrAlreadyPaid
	}
	if booking.Status != entities.BookingStatusAccepted {
		return CreatePaymentIntentResult{}, domainerrors.ErrInvalidBookingState
	}

	if booking.PaymentIntentID != "" {
		return CreatePaymentIntentResult{Booking: booking, Replayed: true}, nil
	}

	fee, payout := services.SplitPrice(booking.SelectedPrice)

	var payoutAccount string
	if uc.Payouts != nil {
		payoutAccount, err = uc.Payouts.PayoutAccountID(ctx, booking.PublisherID)
		if err != nil {
			return CreatePaymentIntentResult{}, err
		}
	}

	intent, err := uc.Processor.CreateIntent(ctx, ports.PaymentIntentRequest{
		BookingID:       booking.BookingID,
		Amount:          booking.SelectedPrice,
		Currency:        booking.Currency,
		ApplicationFee:  fee,
		PayoutAccountID: payoutAccount,
	})
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	booking.PaymentIntentID = intent.IntentID
	booking.PlatformFee = fee
	booking.PublisherPayout = payout
	booking.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Bookings.UpdateBooking(ctx, booking); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	logger.Info("payment intent created",
		"event", "payment_intent_created",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"booking_id", booking.BookingID,
		"intent_id", intent.IntentID,
		"platform_fee", fee,
		"publisher_payout", payout,
	)
	return CreatePaymentIntentResult{Booking: booking, ClientSecret: intent.ClientSecret}, nil
}
