package bookings

import (
	"time"

	"github.com/joefazee/travel-explorer/models"
)

// Config represents the configuration for the bookings module
type Config struct {
	SubmitDelay time.Duration `env:"BOOKING_SUBMIT_DELAY" env-default:"1s"`
	RecordTTL   time.Duration `env:"BOOKING_RECORD_TTL" env-default:"1h"`
	// RateLimit is the sustained number of submissions per second per client IP.
	RateLimit float64 `env:"BOOKING_RATE_LIMIT" env-default:"1"`
	RateBurst int     `env:"BOOKING_RATE_BURST" env-default:"5"`
}

// Validate validates the bookings configuration
func (c *Config) Validate() error {
	if c.SubmitDelay < 0 {
		return models.ErrInvalidSubmitDelay
	}
	if c.RecordTTL < 0 {
		return models.ErrInvalidTimeout
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		return models.ErrInvalidRateLimit
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		SubmitDelay: time.Second,
		RecordTTL:   time.Hour,
		RateLimit:   1,
		RateBurst:   5,
	}
}
