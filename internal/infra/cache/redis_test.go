package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_EmptyURLDisables(t *testing.T) {
	rdb, err := NewRedis(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "://nope")
	assert.Error(t, err)
}

func TestJSONCache_DisabledIsEmpty(t *testing.T) {
	c := NewJSONCache(nil, "stats:", time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}))

	var out map[string]int
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestRateLimiter_DisabledAlwaysAllows(t *testing.T) {
	l := NewRateLimiter(nil, 1, time.Minute)

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
