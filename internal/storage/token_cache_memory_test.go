package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryTokenCache()

	_, err := cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	value, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, cache.Delete(ctx, "k"))
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTokenCacheExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewMemoryTokenCache()

	now := time.Now()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(30 * time.Second)
	_, err := cache.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(31 * time.Second)
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
