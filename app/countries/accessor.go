package countries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/joefazee/travel-explorer/internal/cache"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/metrics"
	"github.com/joefazee/travel-explorer/models"
)

// CacheKey is where the loaded country list is kept in the shared cache
const CacheKey = "countries:all"

// ErrRefreshNotDue is returned by Refresh while the loaded list is still fresh
var ErrRefreshNotDue = errors.New("countries: refresh not due")

// State is the load state of the country list
type State string

const (
	StatePending   State = "pending"
	StateFailed    State = "failed"
	StateSucceeded State = "succeeded"
)

// LoadState is a point in time view of the accessor. Exactly one of
// Countries (succeeded) or Err (failed) is set once the state settles.
type LoadState struct {
	State     State
	Countries []models.Country
	Err       error
}

// Message is the human readable failure shown in place of the list
func (s LoadState) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Settled reports whether the load finished either way
func (s LoadState) Settled() bool {
	return s.State != StatePending
}

// Accessor loads the country list once and shares the outcome with every reader.
type Accessor struct {
	repo    Repository
	cache   cache.Cache[[]models.Country]
	clock   clock.Clock
	log     logger.Logger
	metrics *metrics.Registry
	ttl     time.Duration

	mu       sync.RWMutex
	state    LoadState
	started  bool
	done     chan struct{}
	loadedAt time.Time
	baseCtx  context.Context
}

// AccessorOptions carries the collaborators of an Accessor
type AccessorOptions struct {
	Cache   cache.Cache[[]models.Country]
	Clock   clock.Clock
	Logger  logger.Logger
	Metrics *metrics.Registry
	TTL     time.Duration
}

// NewAccessor creates an accessor in the pending state
func NewAccessor(repo Repository, opts AccessorOptions) *Accessor {
	if opts.Cache == nil {
		opts.Cache = cache.NewMemoryCache[[]models.Country]()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNullLogger()
	}
	return &Accessor{
		repo:    repo,
		cache:   opts.Cache,
		clock:   opts.Clock,
		log:     opts.Logger,
		metrics: opts.Metrics,
		ttl:     opts.TTL,
		state:   LoadState{State: StatePending},
		done:    make(chan struct{}),
	}
}

// Start issues the fetch. Only the first call has any effect.
func (a *Accessor) Start(ctx context.Context) {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return
	}
	a.started = true
	a.baseCtx = context.WithoutCancel(ctx)
	done := a.done
	a.mu.Unlock()

	go a.load(ctx, done)
}

// Snapshot returns the current state without blocking
func (a *Accessor) Snapshot() LoadState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Wait blocks until the current load settles or ctx ends
func (a *Accessor) Wait(ctx context.Context) (LoadState, error) {
	a.mu.RLock()
	done := a.done
	a.mu.RUnlock()

	select {
	case <-done:
		return a.Snapshot(), nil
	case <-ctx.Done():
		return a.Snapshot(), ctx.Err()
	}
}

// Expired reports whether a positive TTL has elapsed since the list was loaded.
func (a *Accessor) Expired() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.ttl <= 0 || a.state.State != StateSucceeded {
		return false
	}
	return a.clock.Since(a.loadedAt) >= a.ttl
}

// Refresh loads the list again once it has expired. The state goes back to
// pending so the old list is never shown next to a new failure.
func (a *Accessor) Refresh(ctx context.Context) error {
	if !a.Expired() {
		return ErrRefreshNotDue
	}

	a.mu.Lock()
	if a.state.State == StatePending {
		a.mu.Unlock()
		return nil
	}
	a.state = LoadState{State: StatePending}
	a.done = make(chan struct{})
	done := a.done
	base := a.baseCtx
	a.mu.Unlock()

	if base == nil {
		base = context.WithoutCancel(ctx)
	}
	if err := a.cache.Delete(ctx, CacheKey); err != nil {
		a.log.Warn("stale countries not evicted", map[string]interface{}{"error": err.Error()})
	}
	go a.load(base, done)
	return nil
}

func (a *Accessor) load(ctx context.Context, done chan struct{}) {
	defer close(done)

	if list, err := a.cache.Get(ctx, CacheKey); err == nil {
		a.settle(LoadState{State: StateSucceeded, Countries: list})
		a.log.Debug("countries loaded from cache", map[string]interface{}{"count": len(list)})
		return
	}

	start := a.clock.Now()
	list, err := a.repo.FetchAll(ctx)
	a.observe(start, err)
	if err != nil {
		a.log.Error(err, map[string]interface{}{"component": "countries.accessor"})
		a.settle(LoadState{State: StateFailed, Err: fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)})
		return
	}

	list = a.keepValid(list)
	if err := a.cache.Set(ctx, CacheKey, list, a.ttl); err != nil {
		a.log.Warn("countries not cached", map[string]interface{}{"error": err.Error()})
	}
	a.settle(LoadState{State: StateSucceeded, Countries: list})
	a.log.Info("countries loaded", map[string]interface{}{"count": len(list)})
}

func (a *Accessor) keepValid(list []models.Country) []models.Country {
	valid := make([]models.Country, 0, len(list))
	for i := range list {
		if err := list[i].Validate(); err != nil {
			a.log.Warn("skipping country record", map[string]interface{}{"code": list[i].Code, "error": err.Error()})
			continue
		}
		valid = append(valid, list[i])
	}
	return valid
}

func (a *Accessor) settle(s LoadState) {
	a.mu.Lock()
	a.state = s
	if s.State == StateSucceeded {
		a.loadedAt = a.clock.Now()
	}
	a.mu.Unlock()

	if a.metrics != nil && s.State == StateSucceeded {
		a.metrics.CountriesLoaded.Set(float64(len(s.Countries)))
	}
}

func (a *Accessor) observe(start time.Time, err error) {
	if a.metrics == nil {
		return
	}
	a.metrics.UpstreamDuration.Observe(a.clock.Since(start).Seconds())
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	a.metrics.UpstreamFetches.WithLabelValues(outcome).Inc()
}
