package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "admarket/contexts/internal-ops/notification-service/domain/errors"
	"admarket/contexts/internal-ops/notification-service/domain/entities"
	"admarket/contexts/internal-ops/notification-service/ports"
)

const defaultListLimit = 50

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type RecordInput struct {
	RecipientID string
	ActorID     string
	Kind        string
	ReferenceID string
	Message     string
}

func (s Service) Record(ctx context.Context, input RecordInput) (entities.Notification, error) {
	if strings.TrimSpace(input.RecipientID) == "" || strings.TrimSpace(input.Kind) == "" {
		return entities.Notification{}, domainerrors.ErrInvalidNotification
	}

	notificationID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Notification{}, err
	}

	notification := entities.Notification{
		NotificationID: notificationID,
		RecipientID:    strings.TrimSpace(input.RecipientID),
		ActorID:        strings.TrimSpace(input.ActorID),
		Kind:           strings.TrimSpace(input.Kind),
		ReferenceID:    strings.TrimSpace(input.ReferenceID),
		Message:        strings.TrimSpace(input.Message),
		CreatedAt:      s.Clock.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, notification); err != nil {
		return entities.Notification{}, err
	}

	s.logger().InfoContext(ctx, "notification recorded",
		"event", "notification_recorded",
		"module", "notifications",
		"layer", "application",
		"notification_id", notification.NotificationID,
		"recipient_id", notification.RecipientID,
		"kind", notification.Kind,
	)
	return notification, nil
}

func (s Service) List(ctx context.Context, recipientID string, unreadOnly bool) ([]entities.Notification, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, domainerrors.ErrInvalidNotification
	}
	return s.Repo.List(ctx, ports.NotificationFilter{
		RecipientID: strings.TrimSpace(recipientID),
		UnreadOnly:  unreadOnly,
		Limit:       defaultListLimit,
	})
}

// MarkRead flips one notification to read. Only the recipient may do so.
func (s Service) MarkRead(ctx context.Context, recipientID, notificationID string) (entities.Notification, error) {
	notification, err := s.Repo.Get(ctx, notificationID)
	if err != nil {
		return entities.Notification{}, err
	}
	if notification.RecipientID != strings.TrimSpace(recipientID) {
		return entities.Notification{}, domainerrors.ErrForbidden
	}
	if notification.Read {
		return notification, nil
	}

	now := s.Clock.Now().UTC()
	notification.Read = true
	notification.ReadAt = &now
	if err := s.Repo.Update(ctx, notification); err != nil {
		return entities.Notification{}, err
	}
	return notification, nil
}

func (s Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
