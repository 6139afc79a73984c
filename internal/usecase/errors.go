package usecase

import "errors"

// Sentinel errors surfaced to the transport layer. Each maps to one
// client-facing rejection; infrastructure failures are wrapped separately.
var (
	ErrAirportNotFound    = errors.New("airport not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrInvalidStatus      = errors.New("invalid flight status")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
