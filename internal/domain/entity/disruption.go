package entity

// DisruptionEvent summarizes one flight status transition: who was affected,
// who was told, and which alternatives were suggested.
type DisruptionEvent struct {
	FlightID          uint           `json:"flight_id"`
	FlightNumber      string         `json:"flight_number"`
	OldStatus         string         `json:"old_status"`
	NewStatus         string         `json:"new_status"`
	BookingsAffected  int            `json:"bookings_affected"`
	UsersNotified     int            `json:"users_notified"`
	AlternativesFound int            `json:"alternatives_found"`
	Alternatives      []FlightDetail `json:"alternatives,omitempty"`
}
