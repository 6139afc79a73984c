package entity

import "time"

// WeatherReport is a delay-risk signal for an airport, fetched from the
// weather provider and appended to the weather log.
type WeatherReport struct {
	ID          string    `bson:"_id,omitempty" json:"-"`
	AirportCode string    `bson:"airportCode" json:"airport_code"`
	City        string    `bson:"city" json:"city"`
	TempC       float64   `bson:"tempC" json:"temp_c"`
	Condition   string    `bson:"condition" json:"condition"`
	DelayRisk   string    `bson:"delayRisk" json:"delay_risk"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
