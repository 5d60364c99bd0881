package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"admarket/contexts/marketplace-core/placement-service/domain/entities"
	domainerrors "admarket/contexts/marketplace-core/placement-service/domain/errors"
	"admarket/contexts/marketplace-core/placement-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateOpportunity(ctx context.Context, opportunity entities.Opportunity) error {
	row := opportunityModelFromEntity(opportunity)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateOpportunity(ctx context.Context, opportunity entities.Opportunity) error {
	result := r.db.WithContext(ctx).
		Model(&opportunityModel{}).
		Where("opportunity_id = ?", strings.TrimSpace(opportunity.OpportunityID)).
		Updates(opportunityUpdatesFromEntity(opportunity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOpportunityNotFound
	}
	return nil
}

func (r *Repository) GetOpportunity(ctx context.Context, opportunityID string) (entities.Opportunity, error) {
	var row opportunityModel
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", strings.TrimSpace(opportunityID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Opportunity{}, domainerrors.ErrOpportunityNotFound
		}
		return entities.Opportunity{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListOpportunities(ctx context.Context, filter ports.OpportunityFilter) ([]entities.Opportunity, error) {
	tx := r.db.WithContext(ctx).Model(&opportunityModel{})
	if strings.TrimSpace(filter.PublisherID) != "" {
		tx = tx.Where("publisher_id = ?", strings.TrimSpace(filter.PublisherID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []opportunityModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Opportunity, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateOffer(ctx context.Context, offer entities.Offer) error {
	row := offerModelFromEntity(offer)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidOffer
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateOffer(ctx context.Context, offer entities.Offer) error {
	result := r.db.WithContext(ctx).
		Model(&offerModel{}).
		Where("offer_id = ?", strings.TrimSpace(offer.OfferID)).
		Updates(offerUpdatesFromEntity(offer))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOfferNotFound
	}
	return nil
}

func (r *Repository) GetOffer(ctx context.Context, offerID string) (entities.Offer, error) {
	var row offerModel
	err := r.db.WithContext(ctx).
		Where("offer_id = ?", strings.TrimSpace(offerID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Offer{}, domainerrors.ErrOfferNotFound
		}
		return entities.Offer{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListOffers(ctx context.Context, filter ports.OfferFilter) ([]entities.Offer, error) {
	tx := r.db.WithContext(ctx).Model(&offerModel{})
	if strings.TrimSpace(filter.AdvertiserID) != "" {
		tx = tx.Where("advertiser_id = ?", strings.TrimSpace(filter.AdvertiserID))
	}
	if strings.TrimSpace(filter.PublisherID) != "" {
		tx = tx.Where("publisher_id = ?", strings.TrimSpace(filter.PublisherID))
	}
	if strings.TrimSpace(filter.OpportunityID) != "" {
		tx = tx.Where("opportunity_id = ?", strings.TrimSpace(filter.OpportunityID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []offerModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Offer, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListWindows(ctx context.Context, opportunityID string) ([]entities.AvailabilityWindow, error) {
	var rows []availabilityWindowModel
	if err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", strings.TrimSpace(opportunityID)).
		Order("start_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.AvailabilityWindow, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// CommitAcceptance runs the acceptance as a single transaction. The
// opportunity row is locked FOR UPDATE before the overlap check so two
// concurrent acceptances against the same opportunity serialize; exactly one
// sees a clean ledger and commits.
func (r *Repository) CommitAcceptance(ctx context.Context, offer entities.Offer, window entities.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var opportunityRow opportunityModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("opportunity_id = ?", strings.TrimSpace(offer.OpportunityID)).
			First(&opportunityRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrOpportunityNotFound
			}
			return err
		}

		var overlapping int64
		if err := tx.Model(&availabilityWindowModel{}).
			Where("opportunity_id = ? AND booked = ? AND start_at < ? AND end_at > ?",
				strings.TrimSpace(offer.OpportunityID),
				true,
				window.EndAt.UTC(),
				window.StartAt.UTC(),
			).
			Count(&overlapping).
			Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return domainerrors.ErrWindowConflict
		}

		windowRow := availabilityWindowModelFromEntity(window)
		if err := tx.Create(&windowRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrWindowConflict
			}
			return err
		}

		offerResult := tx.Model(&offerModel{}).
			Where("offer_id = ?", strings.TrimSpace(offer.OfferID)).
			Updates(offerUpdatesFromEntity(offer))
		if offerResult.Error != nil {
			return offerResult.Error
		}
		if offerResult.RowsAffected == 0 {
			return domainerrors.ErrOfferNotFound
		}

		return tx.Model(&opportunityModel{}).
			Where("opportunity_id = ?", opportunityRow.OpportunityID).
			Updates(map[string]any{
				"status":     string(entities.OpportunityStatusBooked),
				"updated_at": offer.UpdatedAt.UTC(),
			}).
			Error
	})
}

func (r *Repository) CreateBooking(ctx context.Context, booking entities.Booking) error {
	row := bookingModelFromEntity(booking)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateBooking(ctx context.Context, booking entities.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booking_id = ?", strings.TrimSpace(booking.BookingID)).
		Updates(bookingUpdatesFromEntity(booking))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookingNotFound
	}
	return nil
}

func (r *Repository) GetBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	var row bookingModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", strings.TrimSpace(bookingID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Booking{}, domainerrors.ErrBookingNotFound
		}
		return entities.Booking{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListBookings(ctx context.Context, filter ports.BookingFilter) ([]entities.Booking, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{})
	if strings.TrimSpace(filter.AdvertiserID) != "" {
		tx = tx.Where("advertiser_id = ?", strings.TrimSpace(filter.AdvertiserID))
	}
	if strings.TrimSpace(filter.PublisherID) != "" {
		tx = tx.Where("publisher_id = ?", strings.TrimSpace(filter.PublisherID))
	}
	if strings.TrimSpace(filter.OpportunityID) != "" {
		tx = tx.Where("opportunity_id = ?", strings.TrimSpace(filter.OpportunityID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []bookingModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) PayoutAccountID(ctx context.Context, publisherID string) (string, error) {
	var row payoutAccountModel
	err := r.db.WithContext(ctx).
		Where("publisher_id = ?", strings.TrimSpace(publisherID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.AccountID, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
