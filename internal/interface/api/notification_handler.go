package api

import (
	"net/http"

	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the authenticated user's inbox.
type NotificationHandler struct {
	notifications repository.NotificationRepository
	logger        logger.Logger
}

func NewNotificationHandler(notifications repository.NotificationRepository, logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

// List handles GET /notifications?unread=true.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	unreadOnly := c.Query("unread") == "true"
	items, err := h.notifications.ListForUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		h.logger.Error("listing notifications failed", "userId", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing notifications failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(items), "notifications": items})
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := parseIDParam(c)
	if !ok {
		return
	}

	found, err := h.notifications.MarkRead(c.Request.Context(), notificationID)
	if err != nil {
		h.logger.Error("marking notification read failed", "notificationId", notificationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "marking notification read failed"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked_read": notificationID})
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	updated, err := h.notifications.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("marking all notifications read failed", "userId", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "marking notifications read failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked_read": updated})
}
