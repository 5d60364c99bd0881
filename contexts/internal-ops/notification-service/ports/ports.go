package ports

import (
	"context"
	"time"

	"admarket/contexts/internal-ops/notification-service/domain/entities"
)

type NotificationFilter struct {
	RecipientID string
	UnreadOnly  bool
	Limit       int
}

type Repository interface {
	Append(ctx context.Context, notification entities.Notification) error
	Get(ctx context.Context, notificationID string) (entities.Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]entities.Notification, error)
	Update(ctx context.Context, notification entities.Notification) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
