package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OpportunityDTO struct {
	OpportunityID string  `json:"opportunity_id"`
	PublisherID   string  `json:"publisher_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price"`
	Currency      string  `json:"currency"`
	AvailableFrom string  `json:"available_from,omitempty"`
	AvailableTo   string  `json:"available_to,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type CreateOpportunityRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price"`
	Currency      string  `json:"currency"`
	AvailableFrom string  `json:"available_from"`
	AvailableTo   string  `json:"available_to"`
}

type CreateOpportunityResponse struct {
	Opportunity OpportunityDTO `json:"opportunity"`
}

type OpportunityStatusRequest struct {
	Action string `json:"action"`
}

type OpportunityStatusResponse struct {
	Opportunity OpportunityDTO `json:"opportunity"`
}

type GetOpportunityResponse struct {
	Opportunity OpportunityDTO `json:"opportunity"`
}

type ListOpportunitiesResponse struct {
	Items []OpportunityDTO `json:"items"`
}

type AvailabilityWindowDTO struct {
	WindowID      string `json:"window_id"`
	OpportunityID string `json:"opportunity_id"`
	StartAt       string `json:"start_at"`
	EndAt         string `json:"end_at"`
	Booked        bool   `json:"booked"`
	Note          string `json:"note,omitempty"`
}

type ListAvailabilityResponse struct {
	Items []AvailabilityWindowDTO `json:"items"`
}

type OfferDTO struct {
	OfferID       string  `json:"offer_id"`
	OpportunityID string  `json:"opportunity_id"`
	AdvertiserID  string  `json:"advertiser_id"`
	PublisherID   string  `json:"publisher_id"`
	Status        string  `json:"status"`
	PricingType   string  `json:"pricing_type,omitempty"`
	ProposedPrice float64 `json:"proposed_price"`
	Currency      string  `json:"currency"`
	ProposedStart string  `json:"proposed_start,omitempty"`
	ProposedEnd   string  `json:"proposed_end,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	LastActorID   string  `json:"last_actor_id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	AcceptedAt    string  `json:"accepted_at,omitempty"`
}

type ProposeOfferRequest struct {
	OpportunityID string  `json:"opportunity_id"`
	PricingType   string  `json:"pricing_type"`
	ProposedPrice float64 `json:"proposed_price"`
	Currency      string  `json:"currency"`
	ProposedStart string  `json:"proposed_start"`
	ProposedEnd   string  `json:"proposed_end"`
	Notes         string  `json:"notes"`
}

type ProposeOfferResponse struct {
	Offer OfferDTO `json:"offer"`
}

// MutateOfferRequest carries the negotiation action plus optional counter
// term overrides. Omitted fields retain the prior negotiated value.
type MutateOfferRequest struct {
	Action        string   `json:"action"`
	PricingType   *string  `json:"pricing_type"`
	ProposedPrice *float64 `json:"proposed_price"`
	Currency      *string  `json:"currency"`
	ProposedStart *string  `json:"proposed_start"`
	ProposedEnd   *string  `json:"proposed_end"`
	Notes         *string  `json:"notes"`
}

type MutateOfferResponse struct {
	Offer OfferDTO `json:"offer"`
}

type GetOfferResponse struct {
	Offer OfferDTO `json:"offer"`
}

type ListOffersResponse struct {
	Items []OfferDTO `json:"items"`
}

type BookingDTO struct {
	BookingID       string   `json:"booking_id"`
	OpportunityID   string   `json:"opportunity_id"`
	AdvertiserID    string   `json:"advertiser_id"`
	PublisherID     string   `json:"publisher_id"`
	OfferID         string   `json:"offer_id,omitempty"`
	RequestedStart  string   `json:"requested_start"`
	RequestedEnd    string   `json:"requested_end"`
	SelectedPrice   float64  `json:"selected_price"`
	Currency        string   `json:"currency"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	DeliveredAt     string   `json:"delivered_at,omitempty"`
	DeliveredFiles  []string `json:"delivered_files,omitempty"`
	DeliveryNotes   string   `json:"delivery_notes,omitempty"`
	ApprovedAt      string   `json:"approved_at,omitempty"`
	ApprovedBy      string   `json:"approved_by,omitempty"`
	DisputeReason   string   `json:"dispute_reason,omitempty"`
	PaymentIntentID string   `json:"payment_intent_id,omitempty"`
	PlatformFee     float64  `json:"platform_fee"`
	PublisherPayout float64  `json:"publisher_payout"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type CreateBookingRequest struct {
	OpportunityID  string  `json:"opportunity_id"`
	OfferID        string  `json:"offer_id"`
	RequestedStart string  `json:"requested_start"`
	RequestedEnd   string  `json:"requested_end"`
	SelectedPrice  float64 `json:"selected_price"`
	Currency       string  `json:"currency"`
	Notes          string  `json:"notes"`
}

type CreateBookingResponse struct {
	Booking BookingDTO `json:"booking"`
}

type MutateBookingRequest struct {
	Action         string   `json:"action"`
	DeliveredFiles []string `json:"delivered_files"`
	DeliveryNotes  string   `json:"delivery_notes"`
	DisputeReason  string   `json:"dispute_reason"`
}

type MutateBookingResponse struct {
	Booking BookingDTO `json:"booking"`
}

type GetBookingResponse struct {
	Booking BookingDTO `json:"booking"`
}

type ListBookingsResponse struct {
	Items []BookingDTO `json:"items"`
}

type CreatePaymentIntentResponse struct {
	BookingID       string  `json:"booking_id"`
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret,omitempty"`
	PlatformFee     float64 `json:"platform_fee"`
	PublisherPayout float64 `json:"publisher_payout"`
	Replayed        bool    `json:"replayed"`
}
