package postgresadapter

import (
	"strings"
	"time"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
)

type opportunityModel struct {
	OpportunityID string     `gorm:"column:opportunity_id;primaryKey"`
	PublisherID   string     `gorm:"column:publisher_id;index"`
	Title         string     `gorm:"column:title"`
	Description   string     `gorm:"column:description"`
	BasePrice     float64    `gorm:"column:base_price"`
	Currency      string     `gorm:"column:currency"`
	AvailableFrom *time.Time `gorm:"column:available_from"`
	AvailableTo   *time.Time `gorm:"column:available_to"`
	Status        string     `gorm:"column:status;index"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (opportunityModel) TableName() string {
	return "opportunities"
}

func opportunityModelFromEntity(item entities.Opportunity) opportunityModel {
	return opportunityModel{
		OpportunityID: strings.TrimSpace(item.OpportunityID),
		PublisherID:   strings.TrimSpace(item.PublisherID),
		Title:         strings.TrimSpace(item.Title),
		Description:   strings.TrimSpace(item.Description),
		BasePrice:     item.BasePrice,
		Currency:      strings.TrimSpace(item.Currency),
		AvailableFrom: normalizeOptionalTime(item.AvailableFrom),
		AvailableTo:   normalizeOptionalTime(item.AvailableTo),
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC(),
		UpdatedAt:     item.UpdatedAt.UTC(),
	}
}

func opportunityUpdatesFromEntity(item entities.Opportunity) map[string]any {
	row := opportunityModelFromEntity(item)
	return map[string]any{
		"publisher_id":   row.PublisherID,
		"title":          row.Title,
		"description":    row.Description,
		"base_price":     row.BasePrice,
		"currency":       row.Currency,
		"available_from": row.AvailableFrom,
		"available_to":   row.AvailableTo,
		"status":         row.Status,
		"updated_at":     row.UpdatedAt,
	}
}

func (m opportunityModel) toEntity() entities.Opportunity {
	return entities.Opportunity{
		OpportunityID: m.OpportunityID,
		PublisherID:   m.PublisherID,
		Title:         m.Title,
		Description:   m.Description,
		BasePrice:     m.BasePrice,
		Currency:      m.Currency,
		AvailableFrom: normalizeOptionalTime(m.AvailableFrom),
		AvailableTo:   normalizeOptionalTime(m.AvailableTo),
		Status:        entities.OpportunityStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type offerModel struct {
	OfferID       string     `gorm:"column:offer_id;primaryKey"`
	OpportunityID string     `gorm:"column:opportunity_id;index"`
	AdvertiserID  string     `gorm:"column:advertiser_id;index"`
	PublisherID   string     `gorm:"column:publisher_id;index"`
	Status        string     `gorm:"column:status;index"`
	PricingType   string     `gorm:"column:pricing_type"`
	ProposedPrice float64    `gorm:"column:proposed_price"`
	Currency      string     `gorm:"column:currency"`
	ProposedStart *time.Time `gorm:"column:proposed_start"`
	ProposedEnd   *time.Time `gorm:"column:proposed_end"`
	Notes         string     `gorm:"column:notes"`
	LastActorID   string     `gorm:"column:last_actor_id"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	AcceptedAt    *time.Time `gorm:"column:accepted_at"`
}

func (offerModel) TableName() string {
	return "offers"
}

func offerModelFromEntity(item entities.Offer) offerModel {
	return offerModel{
		OfferID:       strings.TrimSpace(item.OfferID),
		OpportunityID: strings.TrimSpace(item.OpportunityID),
		AdvertiserID:  strings.TrimSpace(item.AdvertiserID),
		PublisherID:   strings.TrimSpace(item.PublisherID),
		Status:        string(item.Status),
		PricingType:   strings.TrimSpace(item.PricingType),
		ProposedPrice: item.ProposedPrice,
		Currency:      strings.TrimSpace(item.Currency),
		ProposedStart: normalizeOptionalTime(item.ProposedStart),
		ProposedEnd:   normalizeOptionalTime(item.ProposedEnd),
		Notes:         item.Notes,
		LastActorID:   strings.TrimSpace(item.LastActorID),
		CreatedAt:     item.CreatedAt.UTC(),
		UpdatedAt:     item.UpdatedAt.UTC(),
		AcceptedAt:    normalizeOptionalTime(item.AcceptedAt),
	}
}

func offerUpdatesFromEntity(item entities.Offer) map[string]any {
	row := offerModelFromEntity(item)
	return map[string]any{
		"status":         row.Status,
		"pricing_type":   row.PricingType,
		"proposed_price": row.ProposedPrice,
		"currency":       row.Currency,
		"proposed_start": row.ProposedStart,
		"proposed_end":   row.ProposedEnd,
		"notes":          row.Notes,
		"last_actor_id":  row.LastActorID,
		"updated_at":     row.UpdatedAt,
		"accepted_at":    row.AcceptedAt,
	}
}

func (m offerModel) toEntity() entities.Offer {
	return entities.Offer{
		OfferID:       m.OfferID,
		OpportunityID: m.OpportunityID,
		AdvertiserID:  m.AdvertiserID,
		PublisherID:   m.PublisherID,
		Status:        entities.OfferStatus(m.Status),
		PricingType:   m.PricingType,
		ProposedPrice: m.ProposedPrice,
		Currency:      m.Currency,
		ProposedStart: normalizeOptionalTime(m.ProposedStart),
		ProposedEnd:   normalizeOptionalTime(m.ProposedEnd),
		Notes:         m.Notes,
		LastActorID:   m.LastActorID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		AcceptedAt:    normalizeOptionalTime(m.AcceptedAt),
	}
}

type availabilityWindowModel struct {
	WindowID      string    `gorm:"column:window_id;primaryKey"`
	OpportunityID string    `gorm:"column:opportunity_id;index"`
	StartAt       time.Time `gorm:"column:start_at"`
	EndAt         time.Time `gorm:"column:end_at"`
	Booked        bool      `gorm:"column:booked"`
	Note          string    `gorm:"column:note"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (availabilityWindowModel) TableName() string {
	return "availability_windows"
}

func availabilityWindowModelFromEntity(item entities.AvailabilityWindow) availabilityWindowModel {
	return availabilityWindowModel{
		WindowID:      strings.TrimSpace(item.WindowID),
		OpportunityID: strings.TrimSpace(item.OpportunityID),
		StartAt:       item.StartAt.UTC(),
		EndAt:         item.EndAt.UTC(),
		Booked:        item.Booked,
		Note:          item.Note,
		CreatedAt:     item.CreatedAt.UTC(),
	}
}

func (m availabilityWindowModel) toEntity() entities.AvailabilityWindow {
	return entities.AvailabilityWindow{
		WindowID:      m.WindowID,
		OpportunityID: m.OpportunityID,
		StartAt:       m.StartAt,
		EndAt:         m.EndAt,
		Booked:        m.Booked,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

type bookingModel struct {
	BookingID      string     `gorm:"column:booking_id;primaryKey"`
	OpportunityID  string     `gorm:"column:opportunity_id;index"`
	AdvertiserID   string     `gorm:"column:advertiser_id;index"`
	PublisherID    string     `gorm:"column:publisher_id;index"`
	OfferID        string     `gorm:"column:offer_id"`
	RequestedStart time.Time  `gorm:"column:requested_start"`
	RequestedEnd   time.Time  `gorm:"column:requested_end"`
	SelectedPrice  float64    `gorm:"column:selected_price"`
	Currency       string     `gorm:"column:currency"`
	Status         string     `gorm:"column:status;index"`
	PaymentStatus  string     `gorm:"column:payment_status"`
	DeliveredAt    *time.Time `gorm:"column:delivered_at"`
	DeliveredFiles []string   `gorm:"column:delivered_files;type:text[]"`
	DeliveryNotes  string     `gorm:"column:delivery_notes"`
	ApprovedAt     *time.Time `gorm:"column:approved_at"`
	ApprovedBy     string     `gorm:"column:approved_by"`
	DisputeReason  string     `gorm:"column:dispute_reason"`

	PaymentIntentID string  `gorm:"column:payment_intent_id"`
	PlatformFee     float64 `gorm:"column:platform_fee"`
	PublisherPayout float64 `gorm:"column:publisher_payout"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string {
	return "bookings"
}

func bookingModelFromEntity(item entities.Booking) bookingModel {
	return bookingModel{
		BookingID:      strings.TrimSpace(item.BookingID),
		OpportunityID:  strings.TrimSpace(item.OpportunityID),
		AdvertiserID:   strings.TrimSpace(item.AdvertiserID),
		PublisherID:    strings.TrimSpace(item.PublisherID),
		OfferID:        strings.TrimSpace(item.OfferID),
		RequestedStart: item.RequestedStart.UTC(),
		RequestedEnd:   item.RequestedEnd.UTC(),
		SelectedPrice:  item.SelectedPrice,
		Currency:       strings.TrimSpace(item.Currency),
		Status:         string(item.Status),
		PaymentStatus:  string(item.PaymentStatus),
		DeliveredAt:    normalizeOptionalTime(item.DeliveredAt),
		DeliveredFiles: copyOrEmpty(item.DeliveredFiles),
		DeliveryNotes:  item.DeliveryNotes,
		ApprovedAt:     normalizeOptionalTime(item.ApprovedAt),
		ApprovedBy:     strings.TrimSpace(item.ApprovedBy),
		DisputeReason:  item.DisputeReason,

		PaymentIntentID: strings.TrimSpace(item.PaymentIntentID),
		PlatformFee:     item.PlatformFee,
		PublisherPayout: item.PublisherPayout,

		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func bookingUpdatesFromEntity(item entities.Booking) map[string]any {
	row := bookingModelFromEntity(item)
	return map[string]any{
		"status":            row.Status,
		"payment_status":    row.PaymentStatus,
		"delivered_at":      row.DeliveredAt,
		"delivered_files":   row.DeliveredFiles,
		"delivery_notes":    row.DeliveryNotes,
		"approved_at":       row.ApprovedAt,
		"approved_by":       row.ApprovedBy,
		"dispute_reason":    row.DisputeReason,
		"payment_intent_id": row.PaymentIntentID,
		"platform_fee":      row.PlatformFee,
		"publisher_payout":  row.PublisherPayout,
		"updated_at":        row.UpdatedAt,
	}
}

func (m bookingModel) toEntity() entities.Booking {
	return entities.Booking{
		BookingID:      m.BookingID,
		OpportunityID:  m.OpportunityID,
		AdvertiserID:   m.AdvertiserID,
		PublisherID:    m.PublisherID,
		OfferID:        m.OfferID,
		RequestedStart: m.RequestedStart,
		RequestedEnd:   m.RequestedEnd,
		SelectedPrice:  m.SelectedPrice,
		Currency:       m.Currency,
		Status:         entities.BookingStatus(m.Status),
		PaymentStatus:  entities.PaymentStatus(m.PaymentStatus),
		DeliveredAt:    normalizeOptionalTime(m.DeliveredAt),
		DeliveredFiles: copyOrEmpty(m.DeliveredFiles),
		DeliveryNotes:  m.DeliveryNotes,
		ApprovedAt:     normalizeOptionalTime(m.ApprovedAt),
		ApprovedBy:     m.ApprovedBy,
		DisputeReason:  m.DisputeReason,

		PaymentIntentID: m.PaymentIntentID,
		PlatformFee:     m.PlatformFee,
		PublisherPayout: m.PublisherPayout,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type payoutAccountModel struct {
	PublisherID string    `gorm:"column:publisher_id;primaryKey"`
	AccountID   string    `gorm:"column:account_id"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (payoutAccountModel) TableName() string {
	return "payout_accounts"
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}
