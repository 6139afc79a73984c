package entity

import "time"

// Notification categories.
const (
	NotificationInfo  = "INFO"
	NotificationAlert = "ALERT"
)

// Notification is a message delivered to a user's inbox.
type Notification struct {
	NotificationID uint      `gorm:"column:notification_id;primaryKey" json:"notification_id"`
	UserID         uint      `gorm:"column:user_id;index" json:"user_id"`
	Message        string    `gorm:"column:message" json:"message"`
	Type           string    `gorm:"column:type" json:"type"`
	IsRead         bool      `gorm:"column:is_read" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
