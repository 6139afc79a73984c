package usecase

import (
	"context"
	"fmt"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"
	"airnova-service/pkg/metrics"
	"airnova-service/pkg/pricing"
)

// FlightContextBuilder assembles the canonical feature record for one flight
// by combining persisted flight, route and booking data with the live
// weather signal. The deterministic fields must agree exactly with the
// offline snapshot generator, which is why both call into pkg/pricing.
type FlightContextBuilder struct {
	flightRepo  repository.FlightRepository
	bookingRepo repository.BookingRepository
	weather     repository.WeatherProvider
	weatherLog  repository.WeatherLogRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
	now         func() time.Time
}

// NewFlightContextBuilder creates a new context builder. weatherLog may be
// nil when fetched reports should not be recorded.
func NewFlightContextBuilder(
	flightRepo repository.FlightRepository,
	bookingRepo repository.BookingRepository,
	weather repository.WeatherProvider,
	weatherLog repository.WeatherLogRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) *FlightContextBuilder {
	return &FlightContextBuilder{
		flightRepo:  flightRepo,
		bookingRepo: bookingRepo,
		weather:     weather,
		weatherLog:  weatherLog,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock overrides the time source. Used in tests.
func (b *FlightContextBuilder) WithClock(now func() time.Time) *FlightContextBuilder {
	b.now = now
	return b
}

// Build returns the flight context, or ErrFlightNotFound when the flight
// does not exist. A weather lookup failure is absorbed: the delay risk falls
// back to MEDIUM and the request proceeds.
func (b *FlightContextBuilder) Build(ctx context.Context, flightID uint) (*entity.FlightContext, error) {
	flight, err := b.flightRepo.FindDetail(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("fetching flight %d: %w", flightID, err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	booked, err := b.bookingRepo.CountConfirmed(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("counting bookings for flight %d: %w", flightID, err)
	}

	return &entity.FlightContext{
		FlightID:        flightID,
		BasePrice:       flight.BasePrice,
		DaysToDeparture: pricing.DaysToDeparture(flight.DepartureTime, b.now()),
		SeatsLeft:       pricing.SeatsLeft(pricing.SeatCapacity, booked),
		IsWeekend:       pricing.IsWeekend(flight.DepartureTime),
		DelayRisk:       b.delayRisk(ctx, flight.SourceAirport),
		RoutePopularity: pricing.RoutePopularity(flight.SourceAirport, flight.DestinationAirport),
		SourceAirport:   flight.SourceAirport,
		DestAirport:     flight.DestinationAirport,
	}, nil
}

// delayRisk fetches the live weather signal for the source airport. Any
// failure substitutes MEDIUM; the failure never propagates to the caller.
func (b *FlightContextBuilder) delayRisk(ctx context.Context, sourceAirport string) string {
	report, err := b.weather.FetchCurrent(ctx, sourceAirport)
	if err != nil {
		if b.metrics != nil {
			b.metrics.WeatherFallbacks.Inc()
		}
		b.logger.Warn("weather lookup failed, using MEDIUM delay risk",
			"airport", sourceAirport, "error", err)
		return pricing.DelayRiskMedium
	}

	if b.weatherLog != nil {
		if err := b.weatherLog.Append(ctx, report); err != nil {
			b.logger.Warn("failed to record weather report", "airport", sourceAirport, "error", err)
		}
	}
	return report.DelayRisk
}
