package cachestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemCacheStore(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	store := NewMemCacheStore(10, time.Minute)

	_, err := store.Get(ctx, "post:v1:none:100")
	assert.ErrorIs(err, ErrCacheMiss)

	require.NoError(t, store.Set(ctx, "post:v1:none:100", []byte("payload")))

	val, err := store.Get(ctx, "post:v1:none:100")
	require.NoError(t, err)
	assert.Equal([]byte("payload"), val)

	// mutating the returned slice must not affect the stored entry
	val[0] = 'X'
	val2, err := store.Get(ctx, "post:v1:none:100")
	require.NoError(t, err)
	assert.Equal([]byte("payload"), val2)

	require.NoError(t, store.Purge(ctx, "post:v1:none:100"))
	_, err = store.Get(ctx, "post:v1:none:100")
	assert.ErrorIs(err, ErrCacheMiss)

	// purging an absent key is not an error
	require.NoError(t, store.Purge(ctx, "post:v1:none:100"))
}

func TestMemCacheStoreEviction(t *testing.T) {
	ctx := context.Background()
	store := NewMemCacheStore(2, time.Minute)

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))
	require.NoError(t, store.Set(ctx, "c", []byte("3")))

	// oldest entry evicted at capacity
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	val, err := store.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)
}
