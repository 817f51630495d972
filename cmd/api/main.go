package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/app"
	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/app/countries"
	apiDoc "github.com/joefazee/travel-explorer/app/doc"
	"github.com/joefazee/travel-explorer/app/theme"
	"github.com/joefazee/travel-explorer/app/web"
	_ "github.com/joefazee/travel-explorer/docs"
	"github.com/joefazee/travel-explorer/internal/cache"
	"github.com/joefazee/travel-explorer/internal/deps"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/metrics"
	"github.com/joefazee/travel-explorer/internal/router"
	"github.com/joefazee/travel-explorer/internal/sanitizer"
	"github.com/joefazee/travel-explorer/internal/security"
	"github.com/joefazee/travel-explorer/models"
)

const shutdownTimeout = 10 * time.Second

// @title Travel Explorer API
// @version 1.0
// @description Browse countries, book trips and switch between light and dark themes.
// @x-logo {"url": "https://go.dev/images/go-logo-white.svg", "altText": "Go API Logo"}

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @servers.url http://localhost:8080/
// @servers.description Local Development Server
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "travel-explorer",
		"env":     cfg.Env,
	})

	srv, err := newServer(cfg, appLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.container.Close(); err != nil {
			appLog.Error(err, map[string]interface{}{"component": "cache"})
		}
	}()
	srv.countries.Start(ctx)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting travel explorer", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLog.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

type server struct {
	engine    *gin.Engine
	container *deps.Container
	countries *countries.Module
}

func newServer(cfg *app.Config, appLog logger.Logger, opts ...deps.Option) (*server, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	countryCache, err := cache.NewCache[[]models.Country](cfg.Cache)
	if err != nil {
		return nil, err
	}
	bookingCache, err := cache.NewCache[models.Booking](cfg.Cache)
	if err != nil {
		return nil, err
	}
	sessionCache, err := cache.NewCache[string](cfg.Cache)
	if err != nil {
		return nil, err
	}
	if p, ok := countryCache.(cache.Pinger); ok {
		if err := p.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("cache backend unreachable: %w", err)
		}
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.Theme.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	reg := metrics.New()
	container := deps.NewContainer(append([]deps.Option{
		deps.WithCaches(countryCache, bookingCache, sessionCache),
		deps.WithTokenMaker(tokenMaker),
		deps.WithSanitizer(sanitizer.NewHTMLStripper()),
		deps.WithLogger(appLog),
		deps.WithMetrics(reg),
	}, opts...)...)

	countriesModule := countries.New(countries.Dependencies{Container: container, Config: &cfg.Countries})
	bookingsModule := bookings.New(bookings.Dependencies{Container: container, Config: &cfg.Bookings})
	themeModule := theme.New(theme.Dependencies{Container: container, Config: &cfg.Theme})
	webModule := web.New(web.Dependencies{
		Container: container,
		Countries: countriesModule.Service,
		Bookings:  bookingsModule.Service,
		Theme:     themeModule.Handler,
		Limiter:   bookingsModule.Limiter,
	})

	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware(), api.RequestLogger(appLog, reg), themeModule.Sessions())

	mounter := router.NewMounter(container)
	mounter.API(r).
		Mount(func(g *gin.RouterGroup, _ *deps.Container) { g.GET("/healthz", api.HealthCheck(cfg.Env)) }).
		Mount(countriesModule.Mount).
		Mount(bookingsModule.Mount).
		Mount(themeModule.Mount)
	mounter.Pages(r).
		Mount(webModule.Mount).
		Mount(themeModule.MountPages)

	r.GET("/metrics", gin.WrapH(reg.Handler()))
	apiDoc.Init(r, cfg.Env)

	return &server{engine: r, container: container, countries: countriesModule}, nil
}
