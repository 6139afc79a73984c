package repository

import (
	"context"
	"time"

	"airnova-service/internal/domain/entity"
)

// FlightRepository defines access to flights joined with their routes.
type FlightRepository interface {
	// FindDetail returns the flight with its route endpoints and aircraft
	// model, or nil when no such flight exists.
	FindDetail(ctx context.Context, flightID uint) (*entity.FlightDetail, error)
	// Search returns flights between two airports departing on the given
	// date, ordered by departure time.
	Search(ctx context.Context, sourceAirport, destinationAirport string, date time.Time) ([]entity.FlightDetail, error)
	// UpdateStatus persists a new flight status. Last write wins.
	UpdateStatus(ctx context.Context, flightID uint, status string) error
	// ListDetails returns every flight with route endpoints, used by the
	// synthetic history generator.
	ListDetails(ctx context.Context) ([]entity.FlightDetail, error)
}
