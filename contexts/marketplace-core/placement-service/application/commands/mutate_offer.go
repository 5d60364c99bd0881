package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "admarket/contexts/marketplace-core/placement-service/application"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

// OfferCommand is the closed set of negotiation actions. The stringly-typed
// action field from the wire is resolved into one of these at the transport
// edge; everything past that point is an exhaustive type switch.
type OfferCommand interface {
	isOfferCommand()
}

type AcceptOffer struct{}

type DeclineOffer struct{}

type WithdrawOffer struct{}

// OfferTerms carries a counter's overrides. Nil fields retain the prior
// negotiated value.
type OfferTerms struct {
	PricingType   *string
	ProposedPrice *float64
	Currency      *string
	ProposedStart *time.Time
	ProposedEnd   *time.Time
	Notes         *string
}

type CounterOffer struct {
	Terms OfferTerms
}

func (AcceptOffer) isOfferCommand()   {}
func (DeclineOffer) isOfferCommand()  {}
func (WithdrawOffer) isOfferCommand() {}
func (CounterOffer) isOfferCommand()  {}

type MutateOfferUseCase struct {
	Offers      ports.OfferRepository
	Ledger      ports.AvailabilityLedger
	Acceptance  ports.AcceptanceStore
	Notifier    ports.NotificationEmitter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc MutateOfferUseCase) Execute(
	ctx context.Context,
	offerID string,
	actor entities.Actor,
	cmd OfferCommand,
) (entities.Offer, error) {
	logger := application.ResolveLogger(uc.Logger)
	offer, err := uc.Offers.GetOffer(ctx, strings.TrimSpace(offerID))
	if err != nil {
		return entities.Offer{}, err
	}
	if offer.Terminal() {
		return entities.Offer{}, domainerrors.ErrOfferTerminal
	}

	now := uc.Clock.Now().UTC()
	from := offer.Status

	switch c := cmd.(type) {
	case WithdrawOffer:
		if !actor.Owns(offer.AdvertiserID) {
			return entities.Offer{}, domainerrors.ErrForbidden
		}
		offer.Status = entities.OfferStatusWithdrawn
		offer.LastActorID = actor.UserID
		offer.UpdatedAt = now
		if err := uc.Offers.UpdateOffer(ctx, offer); err != nil {
			return entities.Offer{}, err
		}
		emitNotification(ctx, uc.Notifier, logger, ports.Notification{
			RecipientID: offer.PublisherID,
			ActorID:     actor.UserID,
			Kind:        "offer_withdrawn",
			ReferenceID: offer.OfferID,
			Message:     "The advertiser withdrew their offer.",
		})

	case DeclineOffer:
		if !actor.Owns(offer.AdvertiserID) && !actor.Owns(offer.PublisherID) {
			return entities.Offer{}, domainerrors.ErrForbidden
		}
		offer.Status = entities.OfferStatusDeclined
		offer.LastActorID = actor.UserID
		offer.UpdatedAt = now
		if err := uc.Offers.UpdateOffer(ctx, offer); err != nil {
			return entities.Offer{}, err
		}
		emitNotification(ctx, uc.Notifier, logger, ports.Notification{
			RecipientID: counterpart(offer, actor),
			ActorID:     actor.UserID,
			Kind:        "offer_declined",
			ReferenceID: offer.OfferID,
			Message:     "The offer was declined.",
		})

	case CounterOffer:
		if !actor.Owns(offer.AdvertiserID) && !actor.Owns(offer.PublisherID) {
			return entities.Offer{}, domainerrors.ErrForbidden
		}
		offer = mergeTerms(offer, c.Terms)
		if offer.ProposedStart != nil && offer.ProposedEnd != nil && !offer.ProposedStart.Before(*offer.ProposedEnd) {
			return entities.Offer{}, domainerrors.ErrInvalidWindow
		}
		if offer.ProposedPrice < 0 {
			return entities.Offer{}, domainerrors.ErrInvalidInput
		}
		offer.Status = entities.OfferStatusCountered
		offer.LastActorID = actor.UserID
		offer.UpdatedAt = now
		if err := uc.Offers.UpdateOffer(ctx, offer); err != nil {
			return entities.Offer{}, err
		}
		emitNotification(ctx, uc.Notifier, logger, ports.Notification{
			RecipientID: counterpart(offer, actor),
			ActorID:     actor.UserID,
			Kind:        "offer_countered",
			ReferenceID: offer.OfferID,
			Message:     "New terms were countered on the offer.",
		})

	case AcceptOffer:
		if !actor.Owns(offer.PublisherID) {
			return entities.Offer{}, domainerrors.ErrForbidden
		}
		start, end, ok := offer.ResolvedWindow()
		if !ok || !start.Before(end) {
			return entities.Offer{}, domainerrors.ErrInvalidWindow
		}

		windowID, err := uc.IDGenerator.NewID(ctx)
		if err != nil {
			return entities.Offer{}, err
		}
		offer.Status = entities.OfferStatusAccepted
		offer.LastActorID = actor.UserID
		offer.UpdatedAt = now
		offer.AcceptedAt = &now

		// Overlap check, ledger insert, offer update and opportunity flip run
		// as one transaction inside the store.
		window := entities.AvailabilityWindow{
			WindowID:      windowID,
			OpportunityID: offer.OpportunityID,
			StartAt:       start.UTC(),
			EndAt:         end.UTC(),
			Booked:        true,
			Note:          fmt.Sprintf("booked by offer %s", offer.OfferID),
			CreatedAt:     now,
		}
		if err := uc.Acceptance.CommitAcceptance(ctx, offer, window); err != nil {
			return entities.Offer{}, err
		}
		emitNotification(ctx, uc.Notifier, logger, ports.Notification{
			RecipientID: offer.AdvertiserID,
			ActorID:     actor.UserID,
			Kind:        "offer_accepted",
			ReferenceID: offer.OfferID,
			Message:     "Your offer was accepted.",
		})

	default:
		return entities.Offer{}, domainerrors.ErrInvalidInput
	}

	logger.Info("offer mutated",
		"event", "offer_mutated",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"offer_id", offer.OfferID,
		"from_status", string(from),
		"to_status", string(offer.Status),
		"actor_id", actor.UserID,
	)
	return offer, nil
}

func mergeTerms(offer entities.Offer, terms OfferTerms) entities.Offer {
	if terms.PricingType != nil {
		offer.PricingType = strings.TrimSpace(*terms.PricingType)
	}
	if terms.ProposedPrice != nil {
		offer.ProposedPrice = *terms.ProposedPrice
	}
	if terms.Currency != nil {
		offer.Currency = strings.ToUpper(strings.TrimSpace(*terms.Currency))
	}
	if terms.ProposedStart != nil {
		start := terms.ProposedStart.UTC()
		offer.ProposedStart = &start
	}
	if terms.ProposedEnd != nil {
		end := terms.ProposedEnd.UTC()
		offer.ProposedEnd = &end
	}
	if terms.Notes != nil {
		offer.Notes = strings.TrimSpace(*terms.Notes)
	}
	return offer
}

// counterpart picks the party on the other side of the acting user. Admin
// actions notify the advertiser, matching the publisher-equivalent override.
func counterpart(offer entities.Offer, actor entities.Actor) string {
	if actor.UserID == offer.AdvertiserID {
		return offer.PublisherID
	}
	return offer.AdvertiserID
}
