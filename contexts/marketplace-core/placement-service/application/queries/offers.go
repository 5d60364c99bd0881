package queries

import (
	"context"
	"log/slog"
	"strings"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

type GetOfferUseCase struct {
	Offers ports.OfferRepository
	Logger *slog.Logger
}

func (uc GetOfferUseCase) Execute(ctx context.Context, offerID string, actor entities.Actor) (entities.Offer, error) {
	offer, err := uc.Offers.GetOffer(ctx, strings.TrimSpace(offerID))
	if err != nil {
		return entities.Offer{}, err
	}
	if !actor.Owns(offer.AdvertiserID) && !actor.Owns(offer.PublisherID) {
		return entities.Offer{}, domainerrors.ErrForbidden
	}
	return offer, nil
}

type ListOffersQuery struct {
	Actor         entities.Actor
	OpportunityID string
	Status        string
}

type ListOffersUseCase struct {
	Offers ports.OfferRepository
	Logger *slog.Logger
}

// Execute scopes the listing to the caller's side of the marketplace:
// advertisers see their own offers, publishers see offers against their
// opportunities, admin sees everything.
func (uc ListOffersUseCase) Execute(ctx context.Context, query ListOffersQuery) ([]entities.Offer, error) {
	filter := ports.OfferFilter{
		OpportunityID: strings.TrimSpace(query.OpportunityID),
	}
	if strings.TrimSpace(query.Status) != "" {
		filter.Status = entities.OfferStatus(strings.TrimSpace(query.Status))
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
	return uc.Offers.ListOffers(ctx, filter)
}
