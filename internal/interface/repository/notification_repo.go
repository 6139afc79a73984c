package repository

import (
	"context"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormNotificationRepository implements the NotificationRepository interface.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Insert writes one notification row for a user.
func (r *GormNotificationRepository) Insert(ctx context.Context, userID uint, message, category string) error {
	notification := entity.Notification{
		UserID:    userID,
		Message:   message,
		Type:      category,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&notification).Error
}

// ListForUser returns a user's notifications, newest first.
func (r *GormNotificationRepository) ListForUser(ctx context.Context, userID uint, unreadOnly bool) ([]entity.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []entity.Notification
	result := query.Order("created_at DESC").Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}
	return notifications, nil
}

// MarkRead marks one notification as read. Reports whether a row changed.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, notificationID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("notification_id = ?", notificationID).
		Update("is_read", true)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkAllRead marks all of a user's unread notifications as read and returns
// the number of rows updated.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
