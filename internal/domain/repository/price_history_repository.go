package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// PriceHistoryRepository is the append-only store of synthetic training
// snapshots. The online prediction path never reads from it.
type PriceHistoryRepository interface {
	InsertMany(ctx context.Context, snapshots []entity.PriceSnapshot) error
	CountForFlight(ctx context.Context, flightID uint) (int64, error)
}
