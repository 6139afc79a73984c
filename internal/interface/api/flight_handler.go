package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"airnova-service/internal/infrastructure/mlmodel"
	"airnova-service/internal/usecase"
	"airnova-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// FlightHandler serves flight search, route planning and price prediction.
type FlightHandler struct {
	resolver  *usecase.AirportResolver
	searcher  *usecase.FlightSearcher
	planner   *usecase.RoutePlanner
	predictor *usecase.PricePredictor
	logger    logger.Logger
}

func NewFlightHandler(
	resolver *usecase.AirportResolver,
	searcher *usecase.FlightSearcher,
	planner *usecase.RoutePlanner,
	predictor *usecase.PricePredictor,
	logger logger.Logger,
) *FlightHandler {
	return &FlightHandler{
		resolver:  resolver,
		searcher:  searcher,
		planner:   planner,
		predictor: predictor,
		logger:    logger,
	}
}

// Search handles GET /flights/search?from=&to=&date=YYYY-MM-DD. Endpoints
// accept either airport codes or city names.
func (h *FlightHandler) Search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	dateStr := c.Query("date")
	if from == "" || to == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and date are required"})
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	source, err := h.resolver.Resolve(ctx, from)
	if err != nil {
		respondResolveError(c, h.logger, "from", from, err)
		return
	}
	destination, err := h.resolver.Resolve(ctx, to)
	if err != nil {
		respondResolveError(c, h.logger, "to", to, err)
		return
	}

	flights, err := h.searcher.Search(ctx, source, destination, date)
	if err != nil {
		h.logger.Error("flight search failed", "source", source, "destination", destination, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "flight search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":      source,
		"destination": destination,
		"date":        dateStr,
		"count":       len(flights),
		"flights":     flights,
	})
}

// PlanRoute handles GET /routes/shortest?from=&to=. An unreachable pair is a
// 200 with reachable=false.
func (h *FlightHandler) PlanRoute(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	plan, err := h.planner.Plan(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, usecase.ErrAirportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("route planning failed", "from", from, "to", to, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "route planning failed"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PredictPrice handles GET /flights/:id/price.
func (h *FlightHandler) PredictPrice(c *gin.Context) {
	flightID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), flightID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		case errors.Is(err, mlmodel.ErrModelUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "price model unavailable"})
		default:
			h.logger.Error("price prediction failed", "flightId", flightID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "price prediction failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondResolveError(c *gin.Context, log logger.Logger, field, value string, err error) {
	if errors.Is(err, usecase.ErrAirportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown airport or city: " + value})
		return
	}
	log.Error("airport resolution failed", "field", field, "value", value, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "airport resolution failed"})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
