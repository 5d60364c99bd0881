package queries

import (
	"context"
	"log/slog"
	"strings"

	application "admarket/contexts/marketplace-core/placement-service/application"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	"admarket/contexts/marketplace-core/placement-service/ports"
)

type GetOpportunityUseCase struct {
	Opportunities ports.OpportunityRepository
	Logger        *slog.Logger
}

func (uc GetOpportunityUseCase) Execute(ctx context.Context, opportunityID string) (entities.Opportunity, error) {
	return uc.Opportunities.GetOpportunity(ctx, strings.TrimSpace(opportunityID))
}

type ListOpportunitiesQuery struct {
	PublisherID string
	Status      string
}

type ListOpportunitiesUseCase struct {
	Opportunities ports.OpportunityRepository
	Logger        *slog.Logger
}

func (uc ListOpportunitiesUseCase) Execute(ctx context.Context, query ListOpportunitiesQuery) ([]entities.Opportunity, error) {
	logger := application.ResolveLogger(uc.Logger)
	filter := ports.OpportunityFilter{
		PublisherID: strings.TrimSpace(query.PublisherID),
	}
	if strings.TrimSpace(query.Status) != "" {
		filter.Status = entities.OpportunityStatus(strings.TrimSpace(query.Status))
	}
	items, err := uc.Opportunities.ListOpportunities(ctx, filter)
	if err != nil {
		return nil, err
	}
	logger.Debug("opportunities listed",
		"event", "opportunities_listed",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"count", len(items),
	)
	return items, nil
}

type ListAvailabilityUseCase struct {
	Opportunities ports.OpportunityRepository
	Ledger        ports.AvailabilityLedger
	Logger        *slog.Logger
}

func (uc ListAvailabilityUseCase) Execute(ctx context.Context, opportunityID string) ([]entities.AvailabilityWindow, error) {
	if _, err := uc.Opportunities.GetOpportunity(ctx, strings.TrimSpace(opportunityID)); err != nil {
		return nil, err
	}
	return uc.Ledger.ListWindows(ctx, strings.TrimSpace(opportunityID))
}
