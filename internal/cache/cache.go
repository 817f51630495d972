package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by backends that live outside the process
type Pinger interface {
	Ping(ctx context.Context) error
}

// Release stops the janitor of a memory cache and closes the connections of
// a Redis cache. Other values are left alone.
func Release(c any) error {
	if s, ok := c.(interface{ Stop() }); ok {
		s.Stop()
	}
	if cl, ok := c.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Options selects and tunes a backend
type Options struct {
	Backend   string `env:"CACHE_BACKEND" env-default:"memory"`
	KeyPrefix string `env:"CACHE_KEY_PREFIX" env-default:"travel:"`
	Redis     RedisOptions
}

// NewCache builds a cache for the configured backend
func NewCache[V any](opts Options) (Cache[V], error) {
	switch opts.Backend {
	case RedisBackend:
		r := opts.Redis
		r.KeyPrefix = opts.KeyPrefix
		return NewRedisCache[V](&r), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", opts.Backend)
	}
}
