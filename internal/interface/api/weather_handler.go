package api

import (
	"net/http"
	"strings"

	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WeatherHandler exposes the current delay-risk signal for an airport.
type WeatherHandler struct {
	provider repository.WeatherProvider
	logger   logger.Logger
}

func NewWeatherHandler(provider repository.WeatherProvider, logger logger.Logger) *WeatherHandler {
	return &WeatherHandler{provider: provider, logger: logger}
}

// Current handles GET /weather/:airport.
func (h *WeatherHandler) Current(c *gin.Context) {
	airport := strings.TrimSpace(c.Param("airport"))
	if airport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airport code required"})
		return
	}

	report, err := h.provider.FetchCurrent(c.Request.Context(), airport)
	if err != nil {
		h.logger.Warn("weather fetch failed", "airport", airport, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, report)
}
