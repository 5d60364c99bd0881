package entities

import "time"

// Notification is one in-app message about marketplace activity involving the
// recipient. Notifications are append-only; the only mutation is marking read.
type Notification struct {
	NotificationID string
	RecipientID    string
	ActorID        string
	Kind           string
	ReferenceID    string
	Message        string
	Read           bool
	CreatedAt      time.Time
	ReadAt         *time.Time
}
