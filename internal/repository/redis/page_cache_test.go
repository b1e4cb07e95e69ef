package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, Init(mr.Addr(), "", 0))
	t.Cleanup(func() { _ = Close() })
	return mr
}

func TestPageCacheRoundTrip(t *testing.T) {
	setupRedis(t)
	cache := NewPageCache(20 * time.Second)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "index:1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "index:1", []byte(`{"page":1}`)))

	payload, ok, err := cache.Get(ctx, "index:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"page":1}`), payload)
}

func TestPageCacheExpiry(t *testing.T) {
	mr := setupRedis(t)
	cache := NewPageCache(20 * time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "index:1", []byte("x")))
	mr.FastForward(21 * time.Second)

	_, ok, err := cache.Get(ctx, "index:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPageCacheClear(t *testing.T) {
	mr := setupRedis(t)
	cache := NewPageCache(20 * time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "index:1", []byte("a")))
	require.NoError(t, cache.Set(ctx, "index:2", []byte("b")))
	// unrelated keys must survive a page cache clear
	require.NoError(t, Client.Set(ctx, "login:user:token:1", "tok", 0).Err())

	require.NoError(t, cache.Clear(ctx))

	_, ok, err := cache.Get(ctx, "index:1")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = cache.Get(ctx, "index:2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, mr.Exists("login:user:token:1"))
}
