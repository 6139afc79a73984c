package usecase

import (
	"context"
	"fmt"
	"strings"

	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"
)

// AirportResolver normalizes a free-form input (city name or airport code)
// to a canonical airport code.
type AirportResolver struct {
	airportRepo repository.AirportRepository
	logger      logger.Logger
}

// NewAirportResolver creates a new airport resolver.
func NewAirportResolver(airportRepo repository.AirportRepository, logger logger.Logger) *AirportResolver {
	return &AirportResolver{
		airportRepo: airportRepo,
		logger:      logger,
	}
}

// Resolve returns the canonical airport code for the input. Matching is
// case-insensitive; a code match strictly takes precedence over a city match
// so that an input matching both fields in different rows resolves
// predictably. Returns ErrAirportNotFound when neither matches.
func (r *AirportResolver) Resolve(ctx context.Context, input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrAirportNotFound
	}

	airport, err := r.airportRepo.FindByCode(ctx, trimmed)
	if err != nil {
		return "", fmt.Errorf("resolving airport code %q: %w", trimmed, err)
	}
	if airport != nil {
		return airport.AirportCode, nil
	}

	airport, err = r.airportRepo.FindByCity(ctx, trimmed)
	if err != nil {
		return "", fmt.Errorf("resolving city %q: %w", trimmed, err)
	}
	if airport != nil {
		return airport.AirportCode, nil
	}

	r.logger.Debug("airport resolution failed", "input", trimmed)
	return "", ErrAirportNotFound
}
