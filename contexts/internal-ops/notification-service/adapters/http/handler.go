package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"admarket/contexts/internal-ops/notification-service/application"
	"admarket/contexts/internal-ops/notification-service/domain/entities"
	httptransport "admarket/contexts/internal-ops/notification-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListNotificationsHandler(
	ctx context.Context,
	recipientID string,
	unreadOnly bool,
) (httptransport.ListNotificationsResponse, error) {
	items, err := h.Service.List(ctx, recipientID, unreadOnly)
	if err != nil {
		return httptransport.ListNotificationsResponse{}, err
	}
	dtos := make([]httptransport.NotificationDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, mapNotification(item))
	}
	return httptransport.ListNotificationsResponse{Items: dtos}, nil
}

func (h Handler) MarkReadHandler(
	ctx context.Context,
	recipientID string,
	notificationID string,
) (httptransport.MarkReadResponse, error) {
	notification, err := h.Service.MarkRead(ctx, recipientID, notificationID)
	if err != nil {
		return httptransport.MarkReadResponse{}, err
	}
	return httptransport.MarkReadResponse{Notification: mapNotification(notification)}, nil
}

func mapNotification(item entities.Notification) httptransport.NotificationDTO {
	dto := httptransport.NotificationDTO{
		NotificationID: item.NotificationID,
		RecipientID:    item.RecipientID,
		ActorID:        item.ActorID,
		Kind:           item.Kind,
		ReferenceID:    item.ReferenceID,
		Message:        item.Message,
		Read:           item.Read,
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339),
	}
	if item.ReadAt != nil {
		dto.ReadAt = item.ReadAt.UTC().Format(time.RFC3339)
	}
	return dto
}
