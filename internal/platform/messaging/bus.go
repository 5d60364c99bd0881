package messaging

import (
	"context"
	"log/slog"
	"sync"

	"admarket/contexts/marketplace-core/placement-service/ports"
)

const notificationTopic = "marketplace.notifications"

// Bus is the notification fan-out between marketplace modules. Current
// implementation is in-process publish/subscribe while runtime wiring is
// finalized for external brokers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan ports.Notification
	logger      *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subscribers: make(map[string][]chan ports.Notification),
		logger:      logger,
	}
}

// Notify implements the placement notification emitter port. Delivery is
// best-effort; slow subscribers drop rather than block the publisher.
func (b *Bus) Notify(ctx context.Context, note ports.Notification) error {
	b.mu.RLock()
	subs := append([]chan ports.Notification(nil), b.subscribers[notificationTopic]...)
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub <- note:
		default:
			if b.logger != nil {
				b.logger.Warn("dropping notification for slow subscriber",
					"event", "bus_publish_drop",
					"module", "internal/platform/messaging",
					"layer", "platform",
					"topic", notificationTopic,
					"kind", note.Kind,
				)
			}
		}
	}

	if b.logger != nil {
		b.logger.Info("notification published",
			"event", "bus_publish",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"topic", notificationTopic,
			"kind", note.Kind,
			"recipient_id", note.RecipientID,
		)
	}
	return nil
}

func (b *Bus) Subscribe(
	ctx context.Context,
	consumerGroup string,
	handler func(context.Context, ports.Notification) error,
) error {
	ch := make(chan ports.Notification, 128)

	b.mu.Lock()
	b.subscribers[notificationTopic] = append(b.subscribers[notificationTopic], ch)
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				b.removeSubscriber(ch)
				return
			case note := <-ch:
				if err := handler(ctx, note); err != nil && b.logger != nil {
					b.logger.Error("consumer handler failed",
						"event", "bus_consume_failed",
						"module", "internal/platform/messaging",
						"layer", "platform",
						"topic", notificationTopic,
						"consumer_group", consumerGroup,
						"kind", note.Kind,
						"error", err.Error(),
					)
				}
			}
		}
	}()
	return nil
}

func (b *Bus) removeSubscriber(target chan ports.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := b.subscribers[notificationTopic]
	if len(items) == 0 {
		return
	}
	filtered := make([]chan ports.Notification, 0, len(items))
	for _, item := range items {
		if item != target {
			filtered = append(filtered, item)
		}
	}
	b.subscribers[notificationTopic] = filtered
}
