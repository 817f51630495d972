package countries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/travel-explorer/models"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"default", func(*Config) {}, nil},
		{"http endpoint", func(c *Config) { c.Endpoint = "http://localhost:4000/graphql" }, nil},
		{"missing host", func(c *Config) { c.Endpoint = "https://" }, models.ErrInvalidEndpoint},
		{"bad scheme", func(c *Config) { c.Endpoint = "ftp://example.com" }, models.ErrInvalidEndpoint},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, models.ErrInvalidTimeout},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Minute }, models.ErrInvalidTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.modify(cfg)
			assert.Equal(t, tt.want, cfg.Validate())
		})
	}
}
