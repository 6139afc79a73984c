package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormBookingRepository implements the BookingRepository interface.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &GormBookingRepository{db: db}
}

// CountConfirmed counts CONFIRMED bookings on a flight.
func (r *GormBookingRepository) CountConfirmed(ctx context.Context, flightID uint) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("flight_id = ? AND status = ?", flightID, entity.BookingConfirmed).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// ListConfirmed returns the CONFIRMED bookings on a flight.
func (r *GormBookingRepository) ListConfirmed(ctx context.Context, flightID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	result := r.db.WithContext(ctx).
		Where("flight_id = ? AND status = ?", flightID, entity.BookingConfirmed).
		Order("booking_id").
		Find(&bookings)

	if result.Error != nil {
		return nil, result.Error
	}
	return bookings, nil
}
