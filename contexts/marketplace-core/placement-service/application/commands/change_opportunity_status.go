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

type OpportunityStatusAction string

const (
	OpportunityActionPublish OpportunityStatusAction = "publish"
	OpportunityActionPause   OpportunityStatusAction = "pause"
	OpportunityActionArchive OpportunityStatusAction = "archive"
	// OpportunityActionReset returns a booked opportunity to published so a
	// publisher can take further bookings on non-overlapping windows. The
	// per-window ledger remains the overlap authority either way.
	OpportunityActionReset OpportunityStatusAction = "reset"
)

type ChangeOpportunityStatusCommand struct {
	OpportunityID string
	Actor         entities.Actor
	Action        OpportunityStatusAction
}

type ChangeOpportunityStatusUseCase struct {
	Opportunities ports.OpportunityRepository
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (uc ChangeOpportunityStatusUseCase) Execute(ctx context.Context, cmd ChangeOpportunityStatusCommand) (entities.Opportunity, error) {
	logger := application.ResolveLogger(uc.Logger)
	opportunity, err := uc.Opportunities.GetOpportunity(ctx, strings.TrimSpace(cmd.OpportunityID))
	if err != nil {
		return entities.Opportunity{}, err
	}
	if !cmd.Actor.Owns(opportunity.PublisherID) {
		return entities.Opportunity{}, domainerrors.ErrForbidden
	}

	from := opportunity.Status
	to := from
	switch cmd.Action {
	case OpportunityActionPublish:
		if from != entities.OpportunityStatusDraft && from != entities.OpportunityStatusPaused {
			return entities.Opportunity{}, domainerrors.ErrInvalidOpportunityTransition
		}
		to = entities.OpportunityStatusPublished
	case OpportunityActionPause:
		if from != entities.OpportunityStatusPublished {
			return entities.Opportunity{}, domainerrors.ErrInvalidOpportunityTransition
		}
		to = entities.OpportunityStatusPaused
	case OpportunityActionArchive:
		if from == entities.OpportunityStatusBooked {
			return entities.Opportunity{}, domainerrors.ErrInvalidOpportunityTransition
		}
		to = entities.OpportunityStatusArchived
	case OpportunityActionReset:
		if from != entities.OpportunityStatusBooked {
			return entities.Opportunity{}, domainerrors.ErrInvalidOpportunityTransition
		}
		to = entities.OpportunityStatusPublished
	default:
		return entities.Opportunity{}, domainerrors.ErrInvalidInput
	}

	opportunity.Status = to
	opportunity.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Opportunities.UpdateOpportunity(ctx, opportunity); err != nil {
		return entities.Opportunity{}, err
	}

	logger.Info("opportunity status changed",
		"event", "opportunity_status_changed",
		"module", "marketplace-core/placement-service",
		"layer", "application",
		"opportunity_id", opportunity.OpportunityID,
		"from_status", string(from),
		"to_status", string(to),
	)
	return opportunity, nil
}
