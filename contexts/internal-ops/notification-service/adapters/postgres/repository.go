package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "admarket/contexts/internal-ops/notification-service/domain/errors"
	"admarket/contexts/internal-ops/notification-service/domain/entities"
	"admarket/contexts/internal-ops/notification-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type notificationModel struct {
	NotificationID string     `gorm:"column:notification_id;primaryKey"`
	RecipientID    string     `gorm:"column:recipient_id;index"`
	ActorID        string     `gorm:"column:actor_id"`
	Kind           string     `gorm:"column:kind"`
	ReferenceID    string     `gorm:"column:reference_id"`
	Message        string     `gorm:"column:message"`
	Read           bool       `gorm:"column:read"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	ReadAt         *time.Time `gorm:"column:read_at"`
}

func (notificationModel) TableName() string {
	return "notifications"
}

func notificationModelFromEntity(item entities.Notification) notificationModel {
	return notificationModel{
		NotificationID: strings.TrimSpace(item.NotificationID),
		RecipientID:    strings.TrimSpace(item.RecipientID),
		ActorID:        strings.TrimSpace(item.ActorID),
		Kind:           strings.TrimSpace(item.Kind),
		ReferenceID:    strings.TrimSpace(item.ReferenceID),
		Message:        item.Message,
		Read:           item.Read,
		CreatedAt:      item.CreatedAt.UTC(),
		ReadAt:         normalizeOptionalTime(item.ReadAt),
	}
}

func (m notificationModel) toEntity() entities.Notification {
	return entities.Notification{
		NotificationID: m.NotificationID,
		RecipientID:    m.RecipientID,
		ActorID:        m.ActorID,
		Kind:           m.Kind,
		ReferenceID:    m.ReferenceID,
		Message:        m.Message,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
		ReadAt:         normalizeOptionalTime(m.ReadAt),
	}
}

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

func (r *Repository) Append(ctx context.Context, notification entities.Notification) error {
	row := notificationModelFromEntity(notification)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidNotification
		}
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, notificationID string) (entities.Notification, error) {
	var row notificationModel
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", strings.TrimSpace(notificationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Notification{}, domainerrors.ErrNotificationNotFound
		}
		return entities.Notification{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context, filter ports.NotificationFilter) ([]entities.Notification, error) {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("recipient_id = ?", strings.TrimSpace(filter.RecipientID))
	if filter.UnreadOnly {
		tx = tx.Where("read = ?", false)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []notificationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, notification entities.Notification) error {
	row := notificationModelFromEntity(notification)
	result := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("notification_id = ?", row.NotificationID).
		Updates(map[string]any{
			"read":    row.Read,
			"read_at": row.ReadAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
