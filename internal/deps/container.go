package deps

import (
	"errors"
	"net/http"

	"github.com/benbjohnson/clock"

	"github.com/joefazee/travel-explorer/internal/cache"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/metrics"
	"github.com/joefazee/travel-explorer/internal/sanitizer"
	"github.com/joefazee/travel-explorer/internal/security"
	"github.com/joefazee/travel-explorer/models"
)

// Container holds all shared dependencies
type Container struct {
	HTTPClient *http.Client
	Clock      clock.Clock
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Metrics    *metrics.Registry

	CountryCache cache.Cache[[]models.Country]
	BookingCache cache.Cache[models.Booking]
	SessionCache cache.Cache[string]

	// Modules publish services here so other modules can use them without
	// importing each other's constructors.
	repositories map[string]interface{}
	services     map[string]interface{}
}

// Option customises a Container
type Option func(*Container)

func WithHTTPClient(c *http.Client) Option { return func(ct *Container) { ct.HTTPClient = c } }
func WithClock(c clock.Clock) Option       { return func(ct *Container) { ct.Clock = c } }

func WithTokenMaker(m security.Maker) Option {
	return func(ct *Container) { ct.TokenMaker = m }
}

func WithSanitizer(s sanitizer.HTMLStripperer) Option {
	return func(ct *Container) { ct.Sanitizer = s }
}

func WithLogger(l logger.Logger) Option {
	return func(ct *Container) { ct.Logger = l }
}

func WithMetrics(m *metrics.Registry) Option {
	return func(ct *Container) { ct.Metrics = m }
}

func WithCaches(countries cache.Cache[[]models.Country], bookings cache.Cache[models.Booking], sessions cache.Cache[string]) Option {
	return func(ct *Container) {
		ct.CountryCache = countries
		ct.BookingCache = bookings
		ct.SessionCache = sessions
	}
}

// NewContainer fills every dependency not supplied by an option with an
// in-process default.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Sanitizer == nil {
		c.Sanitizer = sanitizer.NewHTMLStripper()
	}
	if c.Logger == nil {
		c.Logger = logger.NewNullLogger()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.New()
	}
	if c.CountryCache == nil {
		c.CountryCache = cache.NewMemoryCache[[]models.Country]()
	}
	if c.BookingCache == nil {
		c.BookingCache = cache.NewMemoryCache[models.Booking]()
	}
	if c.SessionCache == nil {
		c.SessionCache = cache.NewMemoryCache[string]()
	}
	return c
}

// Close releases the shared caches
func (c *Container) Close() error {
	return errors.Join(
		cache.Release(c.CountryCache),
		cache.Release(c.BookingCache),
		cache.Release(c.SessionCache),
	)
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
