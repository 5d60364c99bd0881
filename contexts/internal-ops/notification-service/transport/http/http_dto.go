package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NotificationDTO struct {
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	ActorID        string `json:"actor_id,omitempty"`
	Kind           string `json:"kind"`
	ReferenceID    string `json:"reference_id,omitempty"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
	ReadAt         string `json:"read_at,omitempty"`
}

type ListNotificationsResponse struct {
	Items []NotificationDTO `json:"items"`
}

type MarkReadResponse struct {
	Notification NotificationDTO `json:"notification"`
}
