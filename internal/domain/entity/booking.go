package entity

import "time"

// Booking status values.
const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

// Booking is a seat reservation on a flight.
type Booking struct {
	BookingID   uint      `gorm:"column:booking_id;primaryKey" json:"booking_id"`
	UserID      uint      `gorm:"column:user_id" json:"user_id"`
	FlightID    uint      `gorm:"column:flight_id" json:"flight_id"`
	SeatNo      string    `gorm:"column:seat_no" json:"seat_no"`
	Status      string    `gorm:"column:status" json:"status"`
	BookingTime time.Time `gorm:"column:booking_time" json:"booking_time"`
}

func (Booking) TableName() string { return "bookings" }
