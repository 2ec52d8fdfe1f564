package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/booklibrary/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisStore struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedisStore() *fakeRedisStore {
	return &fakeRedisStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedisStore) SetNX(_ context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	return true, nil
}

func (f *fakeRedisStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeRedisStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func TestLocalLockIsExclusive(t *testing.T) {
	lock := &LocalLock{}
	ctx := context.Background()

	ok, err := lock.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = lock.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, lock.Release(ctx))
	ok, err = lock.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLockAcquireRelease(t *testing.T) {
	store := newFakeRedisStore()
	first, err := NewRedisLock(store, "bl:lock:cart-expiry-sweep", 0)
	require.NoError(t, err)
	second, err := NewRedisLock(store, "bl:lock:cart-expiry-sweep", time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, defaultLockTTL, store.ttls["bl:lock:cart-expiry-sweep"])

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, second.Release(ctx))
	assert.Contains(t, store.values, "bl:lock:cart-expiry-sweep", "non-owner must not release")

	require.NoError(t, first.Release(ctx))
	assert.NotContains(t, store.values, "bl:lock:cart-expiry-sweep")
}

func TestRedisLockReleaseAfterTakeover(t *testing.T) {
	store := newFakeRedisStore()
	lock, err := NewRedisLock(store, "k", time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	store.values["k"] = "someone-else"
	require.NoError(t, lock.Release(ctx))
	assert.Equal(t, "someone-else", store.values["k"])

	delete(store.values, "k")
	require.NoError(t, lock.Release(ctx))
}

func TestRedisLockErrors(t *testing.T) {
	_, err := NewRedisLock(nil, "k", 0)
	assert.Error(t, err)

	store := newFakeRedisStore()
	_, err = NewRedisLock(store, "", 0)
	assert.Error(t, err)

	store.err = errors.New("down")
	lock, err := NewRedisLock(store, "k", 0)
	require.NoError(t, err)
	_, err = lock.Acquire(context.Background())
	assert.ErrorIs(t, err, store.err)
}
