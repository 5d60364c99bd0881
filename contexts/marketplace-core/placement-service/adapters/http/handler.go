package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"admarket/contexts/marketplace-core/placement-service/application/commands"
	"admarket/contexts/marketplace-core/placement-service/application/queries"
	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	httptransport "admarket/contexts/marketplace-core/placement-service/transport/http"
)

type Handler struct {
	CreateOpportunity       commands.CreateOpportunityUseCase
	ChangeOpportunityStatus commands.ChangeOpportunityStatusUseCase
	ProposeOffer            commands.ProposeOfferUseCase
	MutateOffer             commands.MutateOfferUseCase
	CreateBooking           commands.CreateBookingUseCase
	TransitionBooking       commands.TransitionBookingUseCase
	CreatePaymentIntent     commands.CreatePaymentIntentUseCase
	GetOpportunity          queries.GetOpportunityUseCase
	ListOpportunities       queries.ListOpportunitiesUseCase
	ListAvailability        queries.ListAvailabilityUseCase
	GetOffer                queries.GetOfferUseCase
	ListOffers              queries.ListOffersUseCase
	GetBooking              queries.GetBookingUseCase
	ListBookings            queries.ListBookingsUseCase
	Logger                  *slog.Logger
}

func (h Handler) CreateOpportunityHandler(
	ctx context.Context,
	actor entities.Actor,
	req httptransport.CreateOpportunityRequest,
) (httptransport.CreateOpportunityResponse, error) {
	availableFrom, err := parseOptionalTime(req.AvailableFrom)
	if err != nil {
		return httptransport.CreateOpportunityResponse{}, domainerrors.ErrInvalidInput
	}
	availableTo, err := parseOptionalTime(req.AvailableTo)
	if err != nil {
		return httptransport.CreateOpportunityResponse{}, domainerrors.ErrInvalidInput
	}
	opportunity, err := h.CreateOpportunity.Execute(ctx, commands.CreateOpportunityCommand{
		Actor:         actor,
		Title:         req.Title,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		Currency:      req.Currency,
		AvailableFrom: availableFrom,
		AvailableTo:   availableTo,
	})
	if err != nil {
		return httptransport.CreateOpportunityResponse{}, err
	}
	return httptransport.CreateOpportunityResponse{Opportunity: mapOpportunity(opportunity)}, nil
}

func (h Handler) ChangeOpportunityStatusHandler(
	ctx context.Context,
	actor entities.Actor,
	opportunityID string,
	req httptransport.OpportunityStatusRequest,
) (httptransport.OpportunityStatusResponse, error) {
	action, ok := parseOpportunityAction(req.Action)
	if !ok {
		return httptransport.OpportunityStatusResponse{}, domainerrors.ErrInvalidInput
	}
	opportunity, err := h.ChangeOpportunityStatus.Execute(ctx, commands.ChangeOpportunityStatusCommand{
		OpportunityID: opportunityID,
		Actor:         actor,
		Action:        action,
	})
	if err != nil {
		return httptransport.OpportunityStatusResponse{}, err
	}
	return httptransport.OpportunityStatusResponse{Opportunity: mapOpportunity(opportunity)}, nil
}

func (h Handler) GetOpportunityHandler(ctx context.Context, opportunityID string) (httptransport.GetOpportunityResponse, error) {
	opportunity, err := h.GetOpportunity.Execute(ctx, opportunityID)
	if err != nil {
		return httptransport.GetOpportunityResponse{}, err
	}
	return httptransport.GetOpportunityResponse{Opportunity: mapOpportunity(opportunity)}, nil
}

func (h Handler) ListOpportunitiesHandler(ctx context.Context, publisherID, status string) (httptransport.ListOpportunitiesResponse, error) {
	items, err := h.ListOpportunities.Execute(ctx, queries.ListOpportunitiesQuery{
		PublisherID: publisherID,
		Status:      status,
	})
	if err != nil {
		return httptransport.ListOpportunitiesResponse{}, err
	}
	result := make([]httptransport.OpportunityDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapOpportunity(item))
	}
	return httptransport.ListOpportunitiesResponse{Items: result}, nil
}

func (h Handler) ListAvailabilityHandler(ctx context.Context, opportunityID string) (httptransport.ListAvailabilityResponse, error) {
	items, err := h.ListAvailability.Execute(ctx, opportunityID)
	if err != nil {
		return httptransport.ListAvailabilityResponse{}, err
	}
	result := make([]httptransport.AvailabilityWindowDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.AvailabilityWindowDTO{
			WindowID:      item.WindowID,
			OpportunityID: item.OpportunityID,
			StartAt:       item.StartAt.UTC().Format(time.RFC3339),
			EndAt:         item.EndAt.UTC().Format(time.RFC3339),
			Booked:        item.Booked,
			Note:          item.Note,
		})
	}
	return httptransport.ListAvailabilityResponse{Items: result}, nil
}

func (h Handler) ProposeOfferHandler(
	ctx context.Context,
	actor entities.Actor,
	req httptransport.ProposeOfferRequest,
) (httptransport.ProposeOfferResponse, error) {
	start, err := parseOptionalTime(req.ProposedStart)
	if err != nil {
		return httptransport.ProposeOfferResponse{}, domainerrors.ErrInvalidWindow
	}
	end, err := parseOptionalTime(req.ProposedEnd)
	if err != nil {
		return httptransport.ProposeOfferResponse{}, domainerrors.ErrInvalidWindow
	}
	offer, err := h.ProposeOffer.Execute(ctx, commands.ProposeOfferCommand{
		OpportunityID: req.OpportunityID,
		Actor:         actor,
		PricingType:   req.PricingType,
		ProposedPrice: req.ProposedPrice,
		Currency:      req.Currency,
		ProposedStart: start,
		ProposedEnd:   end,
		Notes:         req.Notes,
	})
	if err != nil {
		return httptransport.ProposeOfferResponse{}, err
	}
	return httptransport.ProposeOfferResponse{Offer: mapOffer(offer)}, nil
}

// MutateOfferHandler resolves the wire action string into the closed command
// set. This is the only place the string form exists.
func (h Handler) MutateOfferHandler(
	ctx context.Context,
	actor entities.Actor,
	offerID string,
	req httptransport.MutateOfferRequest,
) (httptransport.MutateOfferResponse, error) {
	var cmd commands.OfferCommand
	switch strings.ToUpper(strings.TrimSpace(req.Action)) {
	case "ACCEPT":
		cmd = commands.AcceptOffer{}
	case "DECLINE":
		cmd = commands.DeclineOffer{}
	case "WITHDRAW":
		cmd = commands.WithdrawOffer{}
	case "COUNTER":
		terms, err := parseOfferTerms(req)
		if err != nil {
			return httptransport.MutateOfferResponse{}, err
		}
		cmd = commands.CounterOffer{Terms: terms}
	default:
		return httptransport.MutateOfferResponse{}, domainerrors.ErrInvalidInput
	}

	offer, err := h.MutateOffer.Execute(ctx, offerID, actor, cmd)
	if err != nil {
		return httptransport.MutateOfferResponse{}, err
	}
	return httptransport.MutateOfferResponse{Offer: mapOffer(offer)}, nil
}

func (h Handler) GetOfferHandler(ctx context.Context, actor entities.Actor, offerID string) (httptransport.GetOfferResponse, error) {
	offer, err := h.GetOffer.Execute(ctx, offerID, actor)
	if err != nil {
		return httptransport.GetOfferResponse{}, err
	}
	return httptransport.GetOfferResponse{Offer: mapOffer(offer)}, nil
}

func (h Handler) ListOffersHandler(
	ctx context.Context,
	actor entities.Actor,
	opportunityID, status string,
) (httptransport.ListOffersResponse, error) {
	items, err := h.ListOffers.Execute(ctx, queries.ListOffersQuery{
		Actor:         actor,
		OpportunityID: opportunityID,
		Status:        status,
	})
	if err != nil {
		return httptransport.ListOffersResponse{}, err
	}
	result := make([]httptransport.OfferDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapOffer(item))
	}
	return httptransport.ListOffersResponse{Items: result}, nil
}

func (h Handler) CreateBookingHandler(
	ctx context.Context,
	actor entities.Actor,
	req httptransport.CreateBookingRequest,
) (httptransport.CreateBookingResponse, error) {
	start, err := parseRequiredTime(req.RequestedStart)
	if err != nil {
		return httptransport.CreateBookingResponse{}, domainerrors.ErrInvalidWindow
	}
	end, err := parseRequiredTime(req.RequestedEnd)
	if err != nil {
		return httptransport.CreateBookingResponse{}, domainerrors.ErrInvalidWindow
	}
	booking, err := h.CreateBooking.Execute(ctx, commands.CreateBookingCommand{
		OpportunityID:  req.OpportunityID,
		Actor:          actor,
		OfferID:        req.OfferID,
		RequestedStart: start,
		RequestedEnd:   end,
		SelectedPrice:  req.SelectedPrice,
		Currency:       req.Currency,
		Notes:          req.Notes,
	})
	if err != nil {
		return httptransport.CreateBookingResponse{}, err
	}
	return httptransport.CreateBookingResponse{Booking: mapBooking(booking)}, nil
}

func (h Handler) MutateBookingHandler(
	ctx context.Context,
	actor entities.Actor,
	bookingID string,
	req httptransport.MutateBookingRequest,
) (httptransport.MutateBookingResponse, error) {
	var cmd commands.BookingCommand
	switch strings.ToUpper(strings.TrimSpace(req.Action)) {
	case "ACCEPT":
		cmd = commands.AcceptBooking{}
	case "REJECT":
		cmd = commands.RejectBooking{}
	case "DELIVER":
		cmd = commands.DeliverBooking{Files: req.DeliveredFiles, Notes: req.DeliveryNotes}
	case "APPROVE":
		cmd = commands.ApproveBooking{}
	case "DISPUTE":
		cmd = commands.DisputeBooking{Reason: req.DisputeReason}
	default:
		return httptransport.MutateBookingResponse{}, domainerrors.ErrInvalidInput
	}

	booking, err := h.TransitionBooking.Execute(ctx, bookingID, actor, cmd)
	if err != nil {
		return httptransport.MutateBookingResponse{}, err
	}
	return httptransport.MutateBookingResponse{Booking: mapBooking(booking)}, nil
}

func (h Handler) CreatePaymentIntentHandler(
	ctx context.Context,
	actor entities.Actor,
	bookingID string,
) (httptransport.CreatePaymentIntentResponse, error) {
	result, err := h.CreatePaymentIntent.Execute(ctx, commands.CreatePaymentIntentCommand{
		BookingID: bookingID,
		Actor:     actor,
	})
	if err != nil {
		return httptransport.CreatePaymentIntentResponse{}, err
	}
	return httptransport.CreatePaymentIntentResponse{
		BookingID:       result.Booking.BookingID,
		PaymentIntentID: result.Booking.PaymentIntentID,
		ClientSecret:    result.ClientSecret,
		PlatformFee:     result.Booking.PlatformFee,
		PublisherPayout: result.Booking.PublisherPayout,
		Replayed:        result.Replayed,
	}, nil
}

func (h Handler) GetBookingHandler(ctx context.Context, actor entities.Actor, bookingID string) (httptransport.GetBookingResponse, error) {
	booking, err := h.GetBooking.Execute(ctx, bookingID, actor)
	if err != nil {
		return httptransport.GetBookingResponse{}, err
	}
	return httptransport.GetBookingResponse{Booking: mapBooking(booking)}, nil
}

func (h Handler) ListBookingsHandler(
	ctx context.Context,
	actor entities.Actor,
	opportunityID, status string,
) (httptransport.ListBookingsResponse, error) {
	items, err := h.ListBookings.Execute(ctx, queries.ListBookingsQuery{
		Actor:         actor,
		OpportunityID: opportunityID,
		Status:        status,
	})
	if err != nil {
		return httptransport.ListBookingsResponse{}, err
	}
	result := make([]httptransport.BookingDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapBooking(item))
	}
	return httptransport.ListBookingsResponse{Items: result}, nil
}

func parseOpportunityAction(raw string) (commands.OpportunityStatusAction, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "publish":
		return commands.OpportunityActionPublish, true
	case "pause":
		return commands.OpportunityActionPause, true
	case "archive":
		return commands.OpportunityActionArchive, true
	case "reset":
		return commands.OpportunityActionReset, true
	default:
		return "", false
	}
}

func parseOfferTerms(req httptransport.MutateOfferRequest) (commands.OfferTerms, error) {
	terms := commands.OfferTerms{
		PricingType:   req.PricingType,
		ProposedPrice: req.ProposedPrice,
		Currency:      req.Currency,
		Notes:         req.Notes,
	}
	if req.ProposedStart != nil {
		start, err := parseRequiredTime(*req.ProposedStart)
		if err != nil {
			return commands.OfferTerms{}, domainerrors.ErrInvalidWindow
		}
		terms.ProposedStart = &start
	}
	if req.ProposedEnd != nil {
		end, err := parseRequiredTime(*req.ProposedEnd)
		if err != nil {
			return commands.OfferTerms{}, domainerrors.ErrInvalidWindow
		}
		terms.ProposedEnd = &end
	}
	return terms, nil
}

func parseRequiredTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(raw))
}

func parseOptionalTime(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, err
	}
	parsed = parsed.UTC()
	return &parsed, nil
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func mapOpportunity(item entities.Opportunity) httptransport.OpportunityDTO {
	return httptransport.OpportunityDTO{
		OpportunityID: item.OpportunityID,
		PublisherID:   item.PublisherID,
		Title:         item.Title,
		Description:   item.Description,
		BasePrice:     item.BasePrice,
		Currency:      item.Currency,
		AvailableFrom: formatOptionalTime(item.AvailableFrom),
		AvailableTo:   formatOptionalTime(item.AvailableTo),
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapOffer(item entities.Offer) httptransport.OfferDTO {
	return httptransport.OfferDTO{
		OfferID:       item.OfferID,
		OpportunityID: item.OpportunityID,
		AdvertiserID:  item.AdvertiserID,
		PublisherID:   item.PublisherID,
		Status:        string(item.Status),
		PricingType:   item.PricingType,
		ProposedPrice: item.ProposedPrice,
		Currency:      item.Currency,
		ProposedStart: formatOptionalTime(item.ProposedStart),
		ProposedEnd:   formatOptionalTime(item.ProposedEnd),
		Notes:         item.Notes,
		LastActorID:   item.LastActorID,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
		AcceptedAt:    formatOptionalTime(item.AcceptedAt),
	}
}

func mapBooking(item entities.Booking) httptransport.BookingDTO {
	return httptransport.BookingDTO{
		BookingID:       item.BookingID,
		OpportunityID:   item.OpportunityID,
		AdvertiserID:    item.AdvertiserID,
		PublisherID:     item.PublisherID,
		OfferID:         item.OfferID,
		RequestedStart:  item.RequestedStart.UTC().Format(time.RFC3339),
		RequestedEnd:    item.RequestedEnd.UTC().Format(time.RFC3339),
		SelectedPrice:   item.SelectedPrice,
		Currency:        item.Currency,
		Status:          string(item.Status),
		PaymentStatus:   string(item.PaymentStatus),
		DeliveredAt:     formatOptionalTime(item.DeliveredAt),
		DeliveredFiles:  append([]string(nil), item.DeliveredFiles...),
		DeliveryNotes:   item.DeliveryNotes,
		ApprovedAt:      formatOptionalTime(item.ApprovedAt),
		ApprovedBy:      item.ApprovedBy,
		DisputeReason:   item.DisputeReason,
		PaymentIntentID: item.PaymentIntentID,
		PlatformFee:     item.PlatformFee,
		PublisherPayout: item.PublisherPayout,
		CreatedAt:       item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
