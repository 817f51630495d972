package commands

import (
	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/joefazee/travel-explorer/app"
	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/internal/deps"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/nexus"
)

// Option customises the command tree, mostly for tests
type Option func(*env)

// WithRepository replaces the GraphQL country source
func WithRepository(r countries.Repository) Option {
	return func(e *env) { e.repo = r }
}

// WithClock replaces the wall clock
func WithClock(c clock.Clock) Option {
	return func(e *env) { e.clock = c }
}

type env struct {
	endpoint string
	logLevel string

	repo  countries.Repository
	clock clock.Clock

	countries *countries.Module
	bookings  *bookings.Module
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the explorer command tree
func NewRootCommand(opts ...Option) *cobra.Command {
	e := &env{}
	for _, opt := range opts {
		opt(e)
	}

	root := &cobra.Command{
		Use:          "explorer",
		Short:        "Browse countries and book trips from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.wire(cmd)
		},
	}

	root.PersistentFlags().StringVar(&e.endpoint, "endpoint", "", "countries GraphQL endpoint (default $COUNTRIES_ENDPOINT or the public API)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(countriesCmd(e), browseCmd(e), bookCmd(e))
	return root
}

func (e *env) wire(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig(nexus.WithOnlyEnvironment())
	if err != nil {
		return err
	}
	if e.endpoint != "" {
		cfg.Countries.Endpoint = e.endpoint
		if err := cfg.Countries.Validate(); err != nil {
			return err
		}
	}

	opts := []deps.Option{
		deps.WithLogger(logger.NewZeroLogger(cmd.ErrOrStderr(), logger.ParseLevel(e.logLevel), logger.Fields{"service": "explorer"})),
	}
	if e.clock != nil {
		opts = append(opts, deps.WithClock(e.clock))
	}
	container := deps.NewContainer(opts...)

	e.countries = countries.New(countries.Dependencies{
		Container:  container,
		Config:     &cfg.Countries,
		Repository: e.repo,
	})
	e.bookings = bookings.New(bookings.Dependencies{Container: container, Config: &cfg.Bookings})
	return nil
}
