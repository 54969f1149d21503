//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedis_CacheAndRateLimit(t *testing.T) {
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := NewRedis(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewJSONCache(rdb, "stats:", time.Minute)
	require.NoError(t, c.Set(ctx, "admin", map[string]int64{"totalUsers": 3}))

	var got map[string]int64
	hit, err := c.Get(ctx, "admin", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(3), got["totalUsers"])

	l := NewRateLimiter(rdb, 2, time.Minute)
	for i, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "hit %d", i+1)
	}
}
