package notification

import "context"

// Repository defines the interface for notification data operations
type Repository interface {
	// CreateBatch inserts a fan-out batch in one write.
	CreateBatch(ctx context.Context, notifications []*Notification) error

	// ListByRecipient returns a user's notifications, newest first. When
	// unreadOnly is set, read notifications are excluded.
	ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool, page, pageSize int) ([]*Notification, int64, error)

	// MarkRead flags a recipient's notification as read; returns ErrNotFound
	// when the notification does not exist or belongs to someone else.
	MarkRead(ctx context.Context, recipientID uint, notificationUUID string) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
}
