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

type ProposeOfferCommand struct {
	OpportunityID string
	Actor         entities.Actor
	PricingType   string
	ProposedPrice float64
	Currency      string
	ProposedStart *time.Time
	ProposedEnd   *time.Time
	Notes         string
}

type ProposeOfferUseCase struct {
	Opportunities ports.OpportunityRepository
	Offers        ports.OfferRepository
	Notifier      ports.NotificationEmitter
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func (uc ProposeOfferUseCase) Execute(ctx context.Context, cmd ProposeOfferCommand) (entities.Offer, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.Actor.Role != entities.RoleAdvertiser {
		return entities.Offer{}, domainerrors.ErrForbidden
	}

	opportunity, err := uc.Opportunities.GetOpportunity(ctx, strings.TrimSpace(cmd.OpportunityID))
	if err != nil {
		return entities.Offer{}, err
	}
	// Draft, paused, archived and already-booked slots are all invisible to
	// negotiation; callers cannot distinguish them from missing ones.
	if !opportunity.Bookable() {
		return entities.Offer{}, domainerrors.ErrOpportunityNotFound
	}

	if cmd.ProposedStart != nil && cmd.ProposedEnd != nil && !cmd.ProposedStart.Before(*cmd.ProposedEnd) {
		return entities.Offer{}, domainerrors.ErrInvalidWindow
	}
	if cmd.ProposedPrice < 0 {
		return entities.Offer{}, domainerrors.ErrInvalidInput
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = opportunity.Currency
	}
	price := cmd.ProposedPrice
	if price == 0 {
		price = opportunity.BasePrice
	}

	now := uc.Clock.Now().UTC()
	offerID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Offer{}, err
	}

	offer := entities.Offer{
		OfferID:       offerID,
		OpportunityID: opportunity.OpportunityID,
		AdvertiserID:  strings.TrimSpace(cmd.Actor.UserID),
		PublisherID:   opportunity.PublisherID,
		Status:        entities.OfferStatusPending,
		PricingType:   strings.TrimSpace(cmd.PricingType),
		ProposedPrice: price,
		Currency:      currency,
		ProposedStart: cmd.ProposedStart,
		ProposedEnd:   cmd.ProposedEnd,
		Notes:         strings.TrimSpace(cmd.Notes),
		LastActorID:   strings.TrimSpace(cmd.Actor.UserID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.Offers.CreateOffer(ctx, offer); err != nil {
		return entities.Offer{}, err
	}

	emitNotification(ctx, uc.Notifier, logger, ports.Notification{
		RecipientID: offer.PublisherID,
		ActorID:     offer.AdvertiserID,
		Kind:        "offer_proposed",
		ReferenceID: offer.OfferID,
		Message:     "A new offer was proposed against your opportunity.",
	})

	logger.Info("offer proposed",
		"event", "offer_proposed",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"offer_id", offer.OfferID,
		"opportunity_id", offer.OpportunityID,
		"advertiser_id", offer.AdvertiserID,
	)
	return offer, nil
}

// emitNotification is best effort: a failed notification never rolls back the
// state change that produced it.
func emitNotification(ctx context.Context, notifier ports.NotificationEmitter, logger *slog.Logger, note ports.Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, note); err != nil {
		logger.Warn("notification emit failed",
			"event", "notification_emit_failed",
			"module", "marketplace-core/placement-service",
			"layer", "application",
			"kind", note.Kind,
			"recipient_id", note.RecipientID,
			"error", err.Error(),
		)
	}
}
