package errors

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidNotification  = errors.New("invalid notification")
	ErrForbidden            = errors.New("forbidden")
)
