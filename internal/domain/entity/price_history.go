package entity

import "time"

// PriceSnapshot is one synthetic training observation for the price model.
// Rows are produced offline by the history generator and read by the trainer;
// the online path never consumes them.
type PriceSnapshot struct {
	ID              string    `bson:"_id,omitempty" json:"-"`
	FlightID        uint      `bson:"flightId" json:"flight_id"`
	RecordedAt      time.Time `bson:"recordedAt" json:"recorded_at"`
	DepartureDate   time.Time `bson:"departureDate" json:"departure_date"`
	BasePrice       float64   `bson:"basePrice" json:"base_price"`
	FinalPrice      float64   `bson:"finalPrice" json:"final_price"`
	DaysToDeparture int       `bson:"daysToDeparture" json:"days_to_departure"`
	SeatsLeft       int       `bson:"seatsLeft" json:"seats_left"`
	IsWeekend       int       `bson:"isWeekend" json:"is_weekend"`
	DelayRisk       string    `bson:"delayRisk" json:"delay_risk"`
	RoutePopularity float64   `bson:"routePopularity" json:"route_popularity"`
}
