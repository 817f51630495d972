package models

import "errors"

var (
	ErrInvalidCountryName  = errors.New("invalid country name")
	ErrInvalidCountryCode  = errors.New("invalid country code")
	ErrCountriesLoading    = errors.New("countries are still loading")
	ErrUpstreamUnavailable = errors.New("countries service unavailable")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidBookingID = errors.New("invalid booking ID")
	ErrBookingInFlight  = errors.New("booking is already being submitted")

	ErrInvalidThemeMode = errors.New("invalid theme mode")
	ErrInvalidSession   = errors.New("invalid session")

	ErrSessionKeyNotConfigured = errors.New("session key must be 32 bytes")
	ErrInvalidEndpoint         = errors.New("invalid countries endpoint")
	ErrInvalidTimeout          = errors.New("timeout cannot be negative")
	ErrInvalidSubmitDelay      = errors.New("submit delay cannot be negative")
	ErrInvalidRateLimit        = errors.New("invalid rate limit")

	ErrRecordNotFound = errors.New("record not found")
)
