package theme

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/joefazee/travel-explorer/models"
)

type Config struct {
	SessionKey   string        `env:"SESSION_KEY"`
	SessionTTL   time.Duration `env:"SESSION_TTL" env-default:"720h"`
	CookieName   string        `env:"SESSION_COOKIE" env-default:"travel_session"`
	SecureCookie bool          `env:"SESSION_SECURE_COOKIE" env-default:"false"`
}

func (c *Config) Validate() error {
	if len(c.SessionKey) != chacha20poly1305.KeySize {
		return models.ErrSessionKeyNotConfigured
	}
	if c.SessionTTL <= 0 {
		return models.ErrInvalidTimeout
	}
	if c.CookieName == "" {
		return models.ErrInvalidSession
	}
	return nil
}

// GetDefaultConfig returns a config with a random session key, so sessions
// do not survive a restart unless SESSION_KEY is set.
func GetDefaultConfig() *Config {
	return &Config{
		SessionKey: RandomKey(),
		SessionTTL: 30 * 24 * time.Hour,
		CookieName: "travel_session",
	}
}

// RandomKey returns a fresh 32 character key carrying 192 random bits
func RandomKey() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		panic("cannot read random session key: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
