package entity

import "time"

// Flight status values accepted by the disruption flow.
const (
	StatusOnTime    = "ON_TIME"
	StatusDelayed   = "DELAYED"
	StatusCancelled = "CANCELLED"
)

// Flight is a scheduled flight on a route.
type Flight struct {
	FlightID      uint      `gorm:"column:flight_id;primaryKey" json:"flight_id"`
	FlightNumber  string    `gorm:"column:flight_number" json:"flight_number"`
	RouteID       uint      `gorm:"column:route_id" json:"route_id"`
	AircraftID    uint      `gorm:"column:aircraft_id" json:"aircraft_id"`
	DepartureTime time.Time `gorm:"column:departure_time" json:"departure_time"`
	ArrivalTime   time.Time `gorm:"column:arrival_time" json:"arrival_time"`
	BasePrice     float64   `gorm:"column:base_price" json:"base_price"`
	Status        string    `gorm:"column:status" json:"status"`
}

func (Flight) TableName() string { return "flights" }

// FlightDetail is a flight joined with its route endpoints and aircraft
// model, the shape the search and disruption flows work with.
type FlightDetail struct {
	FlightID           uint      `json:"flight_id"`
	FlightNumber       string    `json:"flight_number"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	BasePrice          float64   `json:"base_price"`
	Status             string    `json:"status"`
	SourceAirport      string    `json:"source_airport"`
	DestinationAirport string    `json:"destination_airport"`
	AircraftModel      string    `json:"aircraft_model,omitempty"`
}
