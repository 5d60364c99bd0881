package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainerrors "admarket/contexts/internal-ops/notification-service/domain/errors"
	"admarket/contexts/internal-ops/notification-service/domain/entities"
	"admarket/contexts/internal-ops/notification-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	items map[string]entities.Notification
}

func NewStore() *Store {
	return &Store{
		items: make(map[string]entities.Notification),
	}
}

func (s *Store) Append(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[notification.NotificationID]; exists {
		return domainerrors.ErrInvalidNotification
	}
	s.items[notification.NotificationID] = notification
	return nil
}

func (s *Store) Get(_ context.Context, notificationID string) (entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notification, exists := s.items[notificationID]
	if !exists {
		return entities.Notification{}, domainerrors.ErrNotificationNotFound
	}
	return notification, nil
}

func (s *Store) List(_ context.Context, filter ports.NotificationFilter) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Notification, 0)
	for _, notification := range s.items {
		if notification.RecipientID != filter.RecipientID {
			continue
		}
		if filter.UnreadOnly && notification.Read {
			continue
		}
		items = append(items, notification)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (s *Store) Update(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[notification.NotificationID]; !exists {
		return domainerrors.ErrNotificationNotFound
	}
	s.items[notification.NotificationID] = notification
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
