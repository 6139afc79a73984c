package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airnova-service/internal/infrastructure/cache"
	"airnova-service/internal/infrastructure/config"
	"airnova-service/internal/infrastructure/mlmodel"
	"airnova-service/internal/infrastructure/persistence"
	"airnova-service/internal/interface/api"
	"airnova-service/internal/interface/repository"
	"airnova-service/internal/interface/weather"
	"airnova-service/internal/usecase"
	"airnova-service/pkg/logger"
	"airnova-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting AirNova Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Relational store: airports, routes, flights, bookings, users,
	// notifications
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgres(cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Document store: weather log and price history
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Redis is optional: a failed connection degrades caching and event
	// publishing to no-ops
	redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn("Redis unavailable, continuing without cache", "error", err)
	}

	m := metrics.NewMetrics("airnova")

	// Repositories
	airportRepo := repository.NewGormAirportRepository(gormDB)
	routeRepo := repository.NewGormRouteRepository(gormDB)
	flightRepo := repository.NewGormFlightRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	userRepo := repository.NewGormUserRepository(gormDB)
	notificationRepo := repository.NewGormNotificationRepository(gormDB)
	weatherLogRepo := repository.NewMongoWeatherLogRepository(mongoDB)

	// Weather provider behind a redis TTL cache
	openWeather := weather.NewOpenWeatherProvider(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.WeatherTimeout, airportRepo, log)
	weatherProvider := weather.NewCachedProvider(openWeather, redisCache, cfg.WeatherCacheTTL, log)

	// Price model artifact, loaded lazily on first prediction
	modelHandle := mlmodel.NewHandle(cfg.ModelPath)

	// Usecases
	resolver := usecase.NewAirportResolver(airportRepo, log)
	graphBuilder := usecase.NewGraphBuilder(routeRepo)
	planner := usecase.NewRoutePlanner(resolver, graphBuilder, m, log)
	searcher := usecase.NewFlightSearcher(flightRepo, log)
	contextBuilder := usecase.NewFlightContextBuilder(flightRepo, bookingRepo, weatherProvider, weatherLogRepo, m, log)
	predictor := usecase.NewPricePredictor(modelHandle, contextBuilder, m, log)
	reconciler := usecase.NewDisruptionReconciler(flightRepo, bookingRepo, notificationRepo, searcher, redisCache, m, log)
	authService := usecase.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours, log)

	router := api.NewRouter(api.Handlers{
		Auth:          api.NewAuthHandler(authService, log),
		Flights:       api.NewFlightHandler(resolver, searcher, planner, predictor, log),
		Disruptions:   api.NewDisruptionHandler(reconciler, log),
		Notifications: api.NewNotificationHandler(notificationRepo, log),
		Weather:       api.NewWeatherHandler(weatherProvider, log),
	}, authService, cfg.AllowedOrigins, cfg.AppVersion)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := redisCache.Close(); err != nil {
		log.Error("Redis close error", "error", err)
	}
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("AirNova Service stopped")
}
