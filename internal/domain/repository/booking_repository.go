package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// BookingRepository defines read access to bookings.
type BookingRepository interface {
	// CountConfirmed counts CONFIRMED bookings on a flight.
	CountConfirmed(ctx context.Context, flightID uint) (int, error)
	// ListConfirmed returns the CONFIRMED bookings on a flight.
	ListConfirmed(ctx context.Context, flightID uint) ([]entity.Booking, error)
}
