package theme

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/internal/deps"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/security"
)

// ServiceKey is the container key the theme service is registered under
const ServiceKey = "theme"

// Dependencies represents the dependencies needed for the theme module
type Dependencies struct {
	Container *deps.Container
	Config    *Config
}

// Module bundles the wired theme components
type Module struct {
	Service Service
	Handler *Handler
	config  *Config
	maker   security.Maker
	log     logger.Logger
}

// New wires the theme module. The container's token maker is used when set,
// otherwise one is built from the session key.
func New(d Dependencies) *Module {
	config := d.Config
	if config == nil {
		config = GetDefaultConfig()
	}
	if err := config.Validate(); err != nil {
		panic("Invalid theme configuration: " + err.Error())
	}

	c := d.Container
	maker := c.TokenMaker
	if maker == nil {
		pm, err := security.NewPasetoMaker(config.SessionKey)
		if err != nil {
			panic("cannot create token maker: " + err.Error())
		}
		maker = pm
		c.TokenMaker = pm
	}

	srv := NewService(c.SessionCache, config.SessionTTL, c.Logger)
	c.RegisterService(ServiceKey, srv)

	return &Module{
		Service: srv,
		Handler: NewHandler(srv),
		config:  config,
		maker:   maker,
		log:     c.Logger,
	}
}

// Sessions returns the middleware that attaches the session id
func (m *Module) Sessions() gin.HandlerFunc {
	return SessionMiddleware(m.maker, m.config, m.log)
}

// Mount mounts the JSON theme routes
func (m *Module) Mount(r *gin.RouterGroup, _ *deps.Container) {
	themeGroup := r.Group("/theme")
	themeGroup.GET("", m.Handler.Get)
	themeGroup.POST("/toggle", m.Handler.Toggle)
}

// MountPages mounts the form endpoint used by the server rendered pages
func (m *Module) MountPages(r *gin.RouterGroup, _ *deps.Container) {
	r.POST("/theme/toggle", m.Handler.TogglePage)
}
