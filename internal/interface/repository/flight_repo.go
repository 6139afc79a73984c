package repository

import (
	"context"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface.
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository.
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{db: db}
}

const flightDetailSelect = `
	f.flight_id,
	f.flight_number,
	f.departure_time,
	f.arrival_time,
	f.base_price,
	f.status,
	r.source_airport,
	r.destination_airport,
	a.model AS aircraft_model`

// FindDetail returns one flight joined with its route and aircraft.
// Returns nil without error when the flight does not exist.
func (r *GormFlightRepository) FindDetail(ctx context.Context, flightID uint) (*entity.FlightDetail, error) {
	var detail entity.FlightDetail
	result := r.db.WithContext(ctx).
		Table("flights f").
		Select(flightDetailSelect).
		Joins("JOIN routes r ON f.route_id = r.route_id").
		Joins("LEFT JOIN aircraft a ON f.aircraft_id = a.aircraft_id").
		Where("f.flight_id = ?", flightID).
		Scan(&detail)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &detail, nil
}

// Search returns flights between two airports on a date, ordered by
// departure time.
func (r *GormFlightRepository) Search(ctx context.Context, sourceAirport, destinationAirport string, date time.Time) ([]entity.FlightDetail, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var details []entity.FlightDetail
	result := r.db.WithContext(ctx).
		Table("flights f").
		Select(flightDetailSelect).
		Joins("JOIN routes r ON f.route_id = r.route_id").
		Joins("LEFT JOIN aircraft a ON f.aircraft_id = a.aircraft_id").
		Where("r.source_airport = ? AND r.destination_airport = ?", sourceAirport, destinationAirport).
		Where("f.departure_time >= ? AND f.departure_time < ?", dayStart, dayEnd).
		Order("f.departure_time").
		Scan(&details)

	if result.Error != nil {
		return nil, result.Error
	}
	return details, nil
}

// UpdateStatus persists a new flight status. Last write wins; there is no
// optimistic-lock check.
func (r *GormFlightRepository) UpdateStatus(ctx context.Context, flightID uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Flight{}).
		Where("flight_id = ?", flightID).
		Update("status", status).Error
}

// ListDetails returns every flight joined with its route endpoints.
func (r *GormFlightRepository) ListDetails(ctx context.Context) ([]entity.FlightDetail, error) {
	var details []entity.FlightDetail
	result := r.db.WithContext(ctx).
		Table("flights f").
		Select(flightDetailSelect).
		Joins("JOIN routes r ON f.route_id = r.route_id").
		Joins("LEFT JOIN aircraft a ON f.aircraft_id = a.aircraft_id").
		Order("f.flight_id").
		Scan(&details)

	if result.Error != nil {
		return nil, result.Error
	}
	return details, nil
}
