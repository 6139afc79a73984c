package api

import (
	"errors"
	"net/http"

	"airnova-service/internal/usecase"
	"airnova-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DisruptionHandler applies flight status transitions.
type DisruptionHandler struct {
	reconciler *usecase.DisruptionReconciler
	logger     logger.Logger
}

func NewDisruptionHandler(reconciler *usecase.DisruptionReconciler, logger logger.Logger) *DisruptionHandler {
	return &DisruptionHandler{reconciler: reconciler, logger: logger}
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles POST /flights/:id/status.
func (h *DisruptionHandler) UpdateStatus(c *gin.Context) {
	flightID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.reconciler.Reconcile(c.Request.Context(), flightID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		default:
			h.logger.Error("status update failed", "flightId", flightID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, event)
}
