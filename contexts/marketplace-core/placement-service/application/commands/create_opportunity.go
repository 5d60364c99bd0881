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

type CreateOpportunityCommand struct {
	Actor         entities.Actor
	Title         string
	Description   string
	BasePrice     float64
	Currency      string
	AvailableFrom *time.Time
	AvailableTo   *time.Time
}

type CreateOpportunityUseCase struct {
	Opportunities ports.OpportunityRepository
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Logger        *slog.Logger
}

func (uc CreateOpportunityUseCase) Execute(ctx context.Context, cmd CreateOpportunityCommand) (entities.Opportunity, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.Actor.Role != entities.RolePublisher && !cmd.Actor.IsAdmin() {
		return entities.Opportunity{}, domainerrors.ErrForbidden
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = "USD"
	}

	now := uc.Clock.Now().UTC()
	opportunityID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Opportunity{}, err
	}

	opportunity := entities.Opportunity{
		OpportunityID: opportunityID,
		PublisherID:   strings.TrimSpace(cmd.Actor.UserID),
		Title:         strings.TrimSpace(cmd.Title),
		Description:   strings.TrimSpace(cmd.Description),
		BasePrice:     cmd.BasePrice,
		Currency:      currency,
		AvailableFrom: cmd.AvailableFrom,
		AvailableTo:   cmd.AvailableTo,
		Status:        entities.OpportunityStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !opportunity.ValidateBasics() {
		return entities.Opportunity{}, domainerrors.ErrInvalidInput
	}

	if err := uc.Opportunities.CreateOpportunity(ctx, opportunity); err != nil {
		return entities.Opportunity{}, err
	}

	logger.Info("opportunity created",
		"event", "opportunity_created",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"opportunity_id", opportunity.OpportunityID,
		"publisher_id", opportunity.PublisherID,
	)
	return opportunity, nil
}
