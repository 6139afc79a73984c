package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"
	"airnova-service/pkg/pricing"
)

// HistoryGenerator produces synthetic price-history snapshots for model
// training. Deterministic features (weekend flag, popularity, capacity) come
// from the same pkg/pricing functions as the online context builder, so
// training-time and prediction-time features cannot drift apart.
type HistoryGenerator struct {
	flightRepo  repository.FlightRepository
	historyRepo repository.PriceHistoryRepository
	logger      logger.Logger
	rng         *rand.Rand
}

// NewHistoryGenerator creates a generator. A nil rng seeds from the clock.
func NewHistoryGenerator(flightRepo repository.FlightRepository, historyRepo repository.PriceHistoryRepository, logger logger.Logger, rng *rand.Rand) *HistoryGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &HistoryGenerator{
		flightRepo:  flightRepo,
		historyRepo: historyRepo,
		logger:      logger,
		rng:         rng,
	}
}

// GenerateAll produces snapshotsPerFlight synthetic observations for every
// flight and stores them. Returns the total number of snapshots written.
func (g *HistoryGenerator) GenerateAll(ctx context.Context, snapshotsPerFlight int) (int, error) {
	flights, err := g.flightRepo.ListDetails(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing flights: %w", err)
	}

	total := 0
	for _, flight := range flights {
		snapshots := g.SnapshotsForFlight(flight, snapshotsPerFlight)
		if err := g.historyRepo.InsertMany(ctx, snapshots); err != nil {
			return total, fmt.Errorf("storing snapshots for flight %d: %w", flight.FlightID, err)
		}
		total += len(snapshots)
	}

	g.logger.Info("price history generated", "flights", len(flights), "snapshots", total)
	return total, nil
}

// SnapshotsForFlight produces n synthetic observations for one flight. The
// randomized parts model booking behavior; the deterministic parts are the
// shared pricing features.
func (g *HistoryGenerator) SnapshotsForFlight(flight entity.FlightDetail, n int) []entity.PriceSnapshot {
	departureDate := truncateDay(flight.DepartureTime)
	isWeekend := pricing.IsWeekend(flight.DepartureTime)
	routePopularity := pricing.RoutePopularity(flight.SourceAirport, flight.DestinationAirport)

	snapshots := make([]entity.PriceSnapshot, 0, n)
	for i := 0; i < n; i++ {
		daysToDeparture := g.rng.Intn(30) + 1
		recordedAt := departureDate.AddDate(0, 0, -daysToDeparture)

		// seats_left trends down as departure approaches, with noise
		maxStart := int(float64(pricing.SeatCapacity) * 0.8)
		minLeft := int(float64(pricing.SeatCapacity) * 0.05)
		seatsLeft := minLeft + g.rng.Intn(maxStart-minLeft+1)
		scaled := int(float64(seatsLeft) * float64(daysToDeparture) / 30)
		if scaled > minLeft {
			seatsLeft = scaled
		} else {
			seatsLeft = minLeft
		}

		delayRisk := g.sampleDelayRisk()

		finalPrice := syntheticPrice(flight.BasePrice, daysToDeparture, seatsLeft, isWeekend, delayRisk, routePopularity, g.rng)

		snapshots = append(snapshots, entity.PriceSnapshot{
			FlightID:        flight.FlightID,
			RecordedAt:      recordedAt,
			DepartureDate:   departureDate,
			BasePrice:       flight.BasePrice,
			FinalPrice:      finalPrice,
			DaysToDeparture: daysToDeparture,
			SeatsLeft:       seatsLeft,
			IsWeekend:       isWeekend,
			DelayRisk:       delayRisk,
			RoutePopularity: routePopularity,
		})
	}
	return snapshots
}

func (g *HistoryGenerator) sampleDelayRisk() string {
	r := g.rng.Float64()
	switch {
	case r < 0.1:
		return pricing.DelayRiskHigh
	case r < 0.5:
		return pricing.DelayRiskMedium
	default:
		return pricing.DelayRiskLow
	}
}

// syntheticPrice applies the price-factor curve the model is trained to
// recover: urgency, occupancy, weekend surcharge, delay-risk discount,
// popularity effect and a little noise.
func syntheticPrice(basePrice float64, daysToDeparture, seatsLeft, isWeekend int, delayRisk string, routePopularity float64, rng *rand.Rand) float64 {
	factor := 1.0

	switch {
	case daysToDeparture <= 3:
		factor += 0.25
	case daysToDeparture <= 7:
		factor += 0.15
	case daysToDeparture <= 14:
		factor += 0.05
	}

	occupancy := 1.0 - float64(seatsLeft)/float64(pricing.SeatCapacity)
	factor += occupancy * 0.3

	if isWeekend == 1 {
		factor += 0.1
	}

	switch delayRisk {
	case pricing.DelayRiskHigh:
		factor -= 0.05
	case pricing.DelayRiskLow:
		factor += 0.02
	}

	factor += (routePopularity - 0.5) * 0.2
	factor += rng.Float64()*0.1 - 0.05

	return pricing.Round2(basePrice * factor)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
