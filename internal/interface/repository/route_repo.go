package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRouteRepository implements the RouteRepository interface.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &GormRouteRepository{db: db}
}

// ListAll returns every persisted route leg.
func (r *GormRouteRepository) ListAll(ctx context.Context) ([]entity.Route, error) {
	var routes []entity.Route
	result := r.db.WithContext(ctx).Find(&routes)
	if result.Error != nil {
		return nil, result.Error
	}
	return routes, nil
}
