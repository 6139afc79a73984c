package usecase

import (
	"context"
	"fmt"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"
)

// FlightSearcher finds flights between two airports on a date.
type FlightSearcher struct {
	flightRepo repository.FlightRepository
	logger     logger.Logger
}

// NewFlightSearcher creates a new flight searcher.
func NewFlightSearcher(flightRepo repository.FlightRepository, logger logger.Logger) *FlightSearcher {
	return &FlightSearcher{
		flightRepo: flightRepo,
		logger:     logger,
	}
}

// Search returns the flights on the given route and date, ordered by
// departure time. An empty result is not an error.
func (s *FlightSearcher) Search(ctx context.Context, sourceAirport, destinationAirport string, date time.Time) ([]entity.FlightDetail, error) {
	flights, err := s.flightRepo.Search(ctx, sourceAirport, destinationAirport, date)
	if err != nil {
		return nil, fmt.Errorf("searching flights %s-%s: %w", sourceAirport, destinationAirport, err)
	}
	return flights, nil
}
