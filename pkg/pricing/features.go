// Package pricing holds the pure feature computations shared by the online
// price predictor and the offline training-data generator. Both sides must
// call these functions rather than reimplementing them: the trained model is
// only valid if training-time and prediction-time features agree exactly.
package pricing

import (
	"math"
	"strings"
	"time"
)

// SeatCapacity is the fixed seat capacity assumed for every flight when
// deriving seats_left. Shared between snapshot generation and prediction.
const SeatCapacity = 180

// Delay risk levels as stored and exchanged with the weather provider.
const (
	DelayRiskLow    = "LOW"
	DelayRiskMedium = "MEDIUM"
	DelayRiskHigh   = "HIGH"
)

// FeatureNames is the canonical feature order consumed by the trained model.
// Reordering this list breaks the contract with the artifact.
var FeatureNames = []string{
	"base_price",
	"days_to_departure",
	"seats_left",
	"is_weekend",
	"delay_risk_num",
	"route_popularity",
}

// RoutePopularity derives a synthetic popularity score in [0.3, 1.0] from the
// two airport-code string lengths, rounded to 2 decimals.
func RoutePopularity(source, destination string) float64 {
	seed := (len(source) + len(destination)) % 10
	base := 0.3 + (float64(seed)/10)*0.7
	return Round2(base)
}

// DelayRiskOrdinal maps a delay risk label to its model ordinal.
// Unknown or garbled labels default to MEDIUM.
func DelayRiskOrdinal(risk string) int {
	switch strings.ToUpper(risk) {
	case DelayRiskLow:
		return 0
	case DelayRiskHigh:
		return 2
	default:
		return 1
	}
}

// DaysToDeparture returns the whole days between now's date and the departure
// date, never negative. A flight already departed reports 0.
func DaysToDeparture(departure, now time.Time) int {
	dep := truncateToDate(departure)
	cur := truncateToDate(now)
	days := int(dep.Sub(cur).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsWeekend reports 1 when the departure falls on Saturday or Sunday.
func IsWeekend(departure time.Time) int {
	switch departure.Weekday() {
	case time.Saturday, time.Sunday:
		return 1
	}
	return 0
}

// SeatsLeft clamps capacity minus booked to zero.
func SeatsLeft(capacity, booked int) int {
	left := capacity - booked
	if left < 0 {
		return 0
	}
	return left
}

// FeatureVector assembles the model input in the canonical order.
func FeatureVector(basePrice float64, daysToDeparture, seatsLeft, isWeekend int, delayRisk string, routePopularity float64) []float64 {
	return []float64{
		basePrice,
		float64(daysToDeparture),
		float64(seatsLeft),
		float64(isWeekend),
		float64(DelayRiskOrdinal(delayRisk)),
		routePopularity,
	}
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
