package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisCache(t *testing.T, withOpTimeout time.Duration) (*RedisCache[string], *miniredis.Miniredis) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	opts := &RedisOptions{
		Addr:            s.Addr(),
		PoolSize:        5,
		MinIdleConns:    1,
		MaxRetries:      1,
		MinRetryBackoff: 1 * time.Millisecond,
		MaxRetryBackoff: 10 * time.Millisecond,
		OpTimeout:       withOpTimeout,
	}
	return NewRedisCache[string](opts), s
}

func TestRedisCacheDefaultOpTimeout(t *testing.T) {
	rc, s := setupRedisCache(t, 0)
	defer func() {
		rc.Close()
		s.Close()
	}()

	assert.Equal(t, 50*time.Millisecond, rc.opTimeout)
	assert.NoError(t, rc.Ping(context.Background()))
}

func TestRedisCacheBasicAndEdgeCases(t *testing.T) {
	rc, s := setupRedisCache(t, 100*time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	assert.NoError(t, rc.Set(ctx, "key", "value", 0))
	v, err := rc.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = rc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, rc.Set(ctx, "temp", "x", 50*time.Millisecond))
	s.FastForward(100 * time.Millisecond)
	v, err = rc.Get(ctx, "temp")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Empty(t, v)

	assert.NoError(t, rc.Delete(ctx, "key"))
	_, err = rc.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, rc.Close())
	_, err = rc.Get(ctx, "key")
	assert.Error(t, err)
}

func TestRedisCacheGet_UnmarshalError(t *testing.T) {
	rc, s := setupRedisCache(t, 100*time.Millisecond)
	defer func() {
		rc.Close()
		s.Close()
	}()

	require.NoError(t, s.Set("bad", "not-a-json"))
	val, err := rc.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
	assert.Empty(t, val)
}

func TestRedisCacheSet_MarshalError(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	rcFunc := NewRedisCache[func()](&RedisOptions{Addr: s.Addr(), OpTimeout: 50 * time.Millisecond})
	defer rcFunc.Close()

	err = rcFunc.Set(context.Background(), "fn", func() {}, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type: func")
}

func TestRedisCacheKeyPrefix(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	rc := NewRedisCache[int](&RedisOptions{Addr: s.Addr(), KeyPrefix: "app:"})
	defer rc.Close()

	require.NoError(t, rc.Set(context.Background(), "n", 42, time.Minute))
	raw, err := s.Get("app:n")
	require.NoError(t, err)
	assert.Equal(t, "42", raw)
	assert.Equal(t, time.Minute, s.TTL("app:n"))
}
