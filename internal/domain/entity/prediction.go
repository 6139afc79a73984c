package entity

// FlightContext is the derived feature record for one flight at one point in
// time. It is built per request and never persisted in this form.
type FlightContext struct {
	FlightID        uint    `json:"flight_id"`
	BasePrice       float64 `json:"base_price"`
	DaysToDeparture int     `json:"days_to_departure"`
	SeatsLeft       int     `json:"seats_left"`
	IsWeekend       int     `json:"is_weekend"`
	DelayRisk       string  `json:"delay_risk"`
	RoutePopularity float64 `json:"route_popularity"`
	SourceAirport   string  `json:"source_airport"`
	DestAirport     string  `json:"destination_airport"`
}

// PredictionResult is the immutable outcome of one price prediction. The
// feature fields are echoed so callers can audit the number.
type PredictionResult struct {
	FlightID        uint    `json:"flight_id"`
	BasePrice       float64 `json:"base_price"`
	PredictedPrice  float64 `json:"predicted_price"`
	DaysToDeparture int     `json:"days_to_departure"`
	SeatsLeft       int     `json:"seats_left"`
	IsWeekend       int     `json:"is_weekend"`
	DelayRisk       string  `json:"delay_risk"`
	RoutePopularity float64 `json:"route_popularity"`
	ModelVersion    string  `json:"model_version"`
}
