package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"airnova-service/internal/infrastructure/config"
	"airnova-service/internal/infrastructure/persistence"
	"airnova-service/internal/interface/repository"
	"airnova-service/internal/usecase"
	"airnova-service/pkg/logger"
)

// genhistory backfills synthetic price-history observations for every flight
// in the schedule. The output collection is the training set for the price
// model artifact.
//
// Usage:
//
//	go run ./cmd/utils -per 50 -seed 42
func main() {
	perFlight := flag.Int("per", 50, "snapshots to generate per flight")
	seed := flag.Int64("seed", 0, "rng seed; 0 seeds from the clock")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	gormDB, err := persistence.NewPostgres(cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	generator := usecase.NewHistoryGenerator(
		repository.NewGormFlightRepository(gormDB),
		repository.NewMongoPriceHistoryRepository(mongoDB),
		log,
		rng,
	)

	total, err := generator.GenerateAll(ctx, *perFlight)
	if err != nil {
		log.Fatal("History generation failed", "generated", total, "error", err)
	}

	log.Info("History generation complete", "snapshots", total)
}
