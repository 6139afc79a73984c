package repository

import (
	"context"
	"errors"
	"strings"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface.
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository.
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{db: db}
}

// FindByCode finds an airport by its code, case-insensitively.
// Returns nil without error when no airport matches.
func (r *GormAirportRepository) FindByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport entity.Airport
	result := r.db.WithContext(ctx).
		Where("LOWER(airport_code) = ?", strings.ToLower(code)).
		First(&airport)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &airport, nil
}

// FindByCity finds an airport by its city name, case-insensitively.
// Returns nil without error when no airport matches.
func (r *GormAirportRepository) FindByCity(ctx context.Context, city string) (*entity.Airport, error) {
	var airport entity.Airport
	result := r.db.WithContext(ctx).
		Where("LOWER(city) = ?", strings.ToLower(city)).
		First(&airport)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &airport, nil
}
