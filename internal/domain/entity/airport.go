package entity

// Airport is a canonical airport, addressable by code or city.
type Airport struct {
	AirportID   uint   `gorm:"column:airport_id;primaryKey" json:"airport_id"`
	AirportCode string `gorm:"column:airport_code;uniqueIndex" json:"airport_code"`
	City        string `gorm:"column:city" json:"city"`
	Name        string `gorm:"column:name" json:"name"`
}

func (Airport) TableName() string { return "airports" }

// Route is a persisted direct leg between two airports. Legs are stored once
// per direction-pair but are traversable both ways for routing.
type Route struct {
	RouteID            uint    `gorm:"column:route_id;primaryKey" json:"route_id"`
	SourceAirport      string  `gorm:"column:source_airport" json:"source_airport"`
	DestinationAirport string  `gorm:"column:destination_airport" json:"destination_airport"`
	DistanceKM         float64 `gorm:"column:distance_km" json:"distance_km"`
}

func (Route) TableName() string { return "routes" }

// Aircraft is a reference row carrying the airframe model label.
type Aircraft struct {
	AircraftID   uint   `gorm:"column:aircraft_id;primaryKey" json:"aircraft_id"`
	Model        string `gorm:"column:model" json:"model"`
	SeatCapacity int    `gorm:"column:seat_capacity" json:"seat_capacity"`
}

func (Aircraft) TableName() string { return "aircraft" }
