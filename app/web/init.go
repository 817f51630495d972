package web

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/app/theme"
	"github.com/joefazee/travel-explorer/internal/deps"
	"github.com/joefazee/travel-explorer/internal/ratelimit"
)

// Dependencies represents the dependencies needed for the pages
type Dependencies struct {
	Container *deps.Container
	Countries countries.Service
	Bookings  bookings.Service
	Theme     *theme.Handler
	Limiter   *ratelimit.KeyLimiter
}

// Module bundles the page handler
type Module struct {
	handler *Handler
	limiter *ratelimit.KeyLimiter
}

// New parses the templates and wires the page handler
func New(d Dependencies) *Module {
	tmpl, err := ParseTemplates()
	if err != nil {
		panic("cannot parse page templates: " + err.Error())
	}
	return &Module{
		handler: NewHandler(d.Countries, d.Bookings, d.Theme, d.Container.Clock, tmpl),
		limiter: d.Limiter,
	}
}

// Mount mounts the page routes
func (m *Module) Mount(r *gin.RouterGroup, c *deps.Container) {
	r.GET("/", m.handler.Index)
	r.GET("/book/:code", m.handler.Book)
	r.POST("/book/:code", api.RateLimit(m.limiter, c.Clock), m.handler.SubmitBooking)
	r.GET("/bookings/:id", m.handler.Booking)
}
