package app

import (
	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/app/theme"
	"github.com/joefazee/travel-explorer/internal/cache"
	"github.com/joefazee/travel-explorer/internal/nexus"
)

type Config struct {
	Countries countries.Config
	Bookings  bookings.Config
	Theme     theme.Config
	Cache     cache.Options

	AppHost  string `env:"APP_HOST" env-default:"localhost" validate:"required"`
	AppPort  string `env:"APP_PORT" env-default:"8080" validate:"required,numeric"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn warning error fatal off none"`
}

// Validate runs every module's own checks
func (c *Config) Validate() error {
	if err := c.Countries.Validate(); err != nil {
		return err
	}
	if err := c.Bookings.Validate(); err != nil {
		return err
	}
	return c.Theme.Validate()
}

// Addr is the listen address
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// LoadConfig loads the application configuration from environment variables or a config file.
// Without SESSION_KEY a random key is used for this process.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	defaults := &Config{Theme: theme.Config{SessionKey: theme.RandomKey()}}
	err := nexus.NewLoader(append([]nexus.LoaderOption{nexus.WithDefaults(defaults)}, opts...)...).Load(c)
	return c, err
}
