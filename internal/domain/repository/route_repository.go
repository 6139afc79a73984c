package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// RouteRepository defines read access to the persisted route legs.
type RouteRepository interface {
	// ListAll returns every route leg, once per persisted direction-pair.
	ListAll(ctx context.Context) ([]entity.Route, error)
}
