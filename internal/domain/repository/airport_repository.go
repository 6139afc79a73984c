package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// AirportRepository defines read access to the airports table.
type AirportRepository interface {
	// FindByCode matches the canonical airport code, case-insensitively.
	FindByCode(ctx context.Context, code string) (*entity.Airport, error)
	// FindByCity matches the city name, case-insensitively.
	FindByCity(ctx context.Context, city string) (*entity.Airport, error)
}
