package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLimiter_BurstThenRefill(t *testing.T) {
	l := New(1, 2, time.Minute)
	require.NotNil(t, l)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.True(t, l.Allow("10.0.0.1", now))
	assert.True(t, l.Allow("10.0.0.1", now))
	assert.False(t, l.Allow("10.0.0.1", now))

	assert.True(t, l.Allow("10.0.0.2", now), "keys have independent buckets")
	assert.True(t, l.Allow("10.0.0.1", now.Add(time.Second)))
}

func TestKeyLimiter_NilAndBlankKeysAllow(t *testing.T) {
	var l *KeyLimiter
	assert.True(t, l.Allow("x", time.Now()))
	assert.Equal(t, 0, l.Size())

	assert.Nil(t, New(0, 1, 0))
	assert.Nil(t, New(1, 0, 0))

	l = New(1, 1, 0)
	now := time.Now()
	assert.True(t, l.Allow("  ", now))
	assert.True(t, l.Allow("  ", now))
}

func TestKeyLimiter_EvictsIdleKeys(t *testing.T) {
	l := New(100, 100, time.Second)
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	l.Allow("stale", start)
	later := start.Add(time.Minute)
	for i := 0; i < sweepEvery; i++ {
		l.Allow(fmt.Sprintf("k%d", i%4), later)
	}

	assert.Equal(t, 4, l.Size())
}
