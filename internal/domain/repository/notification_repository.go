package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// NotificationRepository defines the notification sink and inbox reads.
// Insert is fire-and-forget from the caller's perspective: no delivery
// acknowledgment contract exists beyond the row write.
type NotificationRepository interface {
	Insert(ctx context.Context, userID uint, message, category string) error
	ListForUser(ctx context.Context, userID uint, unreadOnly bool) ([]entity.Notification, error)
	MarkRead(ctx context.Context, notificationID uint) (bool, error)
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}
