package cache

import (
	"context"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

func (i item[V]) expired(now int64) bool {
	return i.expiration > 0 && now > i.expiration
}

type MemoryCache[V any] struct {
	mu    sync.Mutex
	items map[string]item[V]
	quit  chan struct{}
	once  sync.Once
}

// NewMemoryCache creates a cache with a 1s janitor.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithJanitor[V](time.Second)
}

// NewMemoryCacheWithJanitor sets how often expired entries are swept.
func NewMemoryCacheWithJanitor[V any](interval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		items: make(map[string]item[V]),
		quit:  make(chan struct{}),
	}
	go mc.janitor(interval)
	return mc
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	itm, ok := mc.items[key]
	if !ok {
		return zero, ErrCacheMiss
	}
	if itm.expired(now) {
		delete(mc.items, key)
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	mc.mu.Lock()
	mc.items[key] = item[V]{value: value, expiration: exp}
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not
func (mc *MemoryCache[V]) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.items)
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now().UnixNano()
			mc.mu.Lock()
			for k, itm := range mc.items {
				if itm.expired(now) {
					delete(mc.items, k)
				}
			}
			mc.mu.Unlock()
		case <-mc.quit:
			return
		}
	}
}
