package countries

import (
	"net/url"
	"time"

	"github.com/joefazee/travel-explorer/models"
)

// DefaultEndpoint is the public countries GraphQL API
const DefaultEndpoint = "https://countries.trevorblades.com/"

// Config represents the configuration for the countries module
type Config struct {
	Endpoint string        `env:"COUNTRIES_ENDPOINT" env-default:"https://countries.trevorblades.com/"`
	Timeout  time.Duration `env:"COUNTRIES_TIMEOUT" env-default:"10s"`
	// CacheTTL of zero keeps the loaded list for the process lifetime.
	CacheTTL time.Duration `env:"COUNTRIES_CACHE_TTL" env-default:"0s"`
}

// Validate validates the countries configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return models.ErrInvalidEndpoint
	}
	if c.Timeout < 0 || c.CacheTTL < 0 {
		return models.ErrInvalidTimeout
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Timeout:  10 * time.Second,
	}
}
