package repository

import (
	"context"

	"airnova-service/internal/domain/entity"
)

// WeatherProvider fetches the current delay-risk signal for an airport.
// Implementations may fail for network, auth or parse reasons; callers that
// feed the pricing path must absorb those failures.
type WeatherProvider interface {
	FetchCurrent(ctx context.Context, airportCode string) (*entity.WeatherReport, error)
}

// WeatherLogRepository is the append-only store of fetched weather reports.
type WeatherLogRepository interface {
	Append(ctx context.Context, report *entity.WeatherReport) error
	Latest(ctx context.Context, airportCode string) (*entity.WeatherReport, error)
}
