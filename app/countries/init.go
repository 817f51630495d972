package countries

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/internal/deps"
)

// ServiceKey is the container key the countries service is registered under
const ServiceKey = "countries"

// Dependencies represents the dependencies needed for the countries module
type Dependencies struct {
	Container *deps.Container
	Config    *Config
	// Repository replaces the GraphQL repository when set
	Repository Repository
}

// Module bundles the wired countries components
type Module struct {
	Service  Service
	Accessor *Accessor
	handler  *Handler
}

// New wires the countries module and registers its service in the container
func New(d Dependencies) *Module {
	config := d.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid countries configuration: " + err.Error())
	}

	c := d.Container
	repo := d.Repository
	if repo == nil {
		client := &http.Client{Timeout: config.Timeout, Transport: c.HTTPClient.Transport}
		repo = NewRepository(config.Endpoint, client)
	}

	accessor := NewAccessor(repo, AccessorOptions{
		Cache:   c.CountryCache,
		Clock:   c.Clock,
		Logger:  c.Logger,
		Metrics: c.Metrics,
		TTL:     config.CacheTTL,
	})
	srv := NewService(accessor)

	c.RegisterRepository(ServiceKey, repo)
	c.RegisterService(ServiceKey, srv)

	return &Module{
		Service:  srv,
		Accessor: accessor,
		handler:  NewHandler(srv),
	}
}

// Start begins loading the country list in the background
func (m *Module) Start(ctx context.Context) {
	m.Accessor.Start(ctx)
}

// Mount mounts the country routes
func (m *Module) Mount(r *gin.RouterGroup, _ *deps.Container) {
	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", m.handler.Browse)
	countriesGroup.GET("/:code", m.handler.GetByCode)
}
