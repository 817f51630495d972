package bookings

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/internal/deps"
	"github.com/joefazee/travel-explorer/internal/ratelimit"
)

// ServiceKey is the container key the booking service is registered under
const ServiceKey = "bookings"

// Dependencies represents the dependencies needed for the bookings module
type Dependencies struct {
	Container *deps.Container
	Config    *Config
}

// Module bundles the wired bookings components
type Module struct {
	Service Service
	Limiter *ratelimit.KeyLimiter
	handler *Handler
}

// New wires the bookings module and registers its service in the container
func New(d Dependencies) *Module {
	config := d.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid bookings configuration: " + err.Error())
	}

	c := d.Container
	srv := NewService(config, ServiceOptions{
		Clock:     c.Clock,
		Store:     c.BookingCache,
		Sanitizer: c.Sanitizer,
		Logger:    c.Logger,
		Metrics:   c.Metrics,
	})
	c.RegisterService(ServiceKey, srv)

	return &Module{
		Service: srv,
		Limiter: ratelimit.New(config.RateLimit, config.RateBurst, 0),
		handler: NewHandler(srv),
	}
}

// Mount mounts the booking routes
func (m *Module) Mount(r *gin.RouterGroup, c *deps.Container) {
	bookingsGroup := r.Group("/bookings")
	bookingsGroup.POST("/validate", m.handler.Validate)
	bookingsGroup.POST("", api.RateLimit(m.Limiter, c.Clock), m.handler.Submit)
	bookingsGroup.GET("/:id", m.handler.Get)
}
