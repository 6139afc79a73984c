package api

import (
	"net/http"

	"airnova-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Flights       *FlightHandler
	Disruptions   *DisruptionHandler
	Notifications *NotificationHandler
	Weather       *WeatherHandler
}

// NewRouter builds the gin engine with all routes mounted. Status updates and
// the inbox require a valid token; search, routing, pricing and weather are
// public.
func NewRouter(h Handlers, auth *usecase.AuthService, allowedOrigins, appVersion string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "version": appVersion})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/register", h.Auth.Register)
		v1.POST("/auth/login", h.Auth.Login)

		v1.GET("/flights/search", h.Flights.Search)
		v1.GET("/flights/:id/price", h.Flights.PredictPrice)
		v1.GET("/routes/shortest", h.Flights.PlanRoute)
		v1.GET("/weather/:airport", h.Weather.Current)

		protected := v1.Group("")
		protected.Use(JWTAuth(auth))
		{
			protected.POST("/flights/:id/status", h.Disruptions.UpdateStatus)
			protected.GET("/notifications", h.Notifications.List)
			protected.POST("/notifications/:id/read", h.Notifications.MarkRead)
			protected.POST("/notifications/read-all", h.Notifications.MarkAllRead)
		}
	}

	return router
}
