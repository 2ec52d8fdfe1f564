package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/booklibrary/pkg/errors"
	"github.com/angelmondragon/booklibrary/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	deleted []string
	getErr  error
	setErr  error
	delErr  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Expire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return false, nil
	}
	f.ttls[key] = ttl
	return true, nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	for _, k := range keys {
		delete(f.values, k)
		delete(f.ttls, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

func (f *fakeRedis) CartKey(sessionID string) string {
	return "bl:cart:" + sessionID
}

func (f *fakeRedis) ttl(key string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ttls[key]
}

func newTestRedisStore(t *testing.T, backend *fakeRedis, clock *fakeClock) *RedisStore {
	t.Helper()
	s, err := NewRedisStore(backend, Expiry{Absolute: 24 * time.Hour, Sliding: 30 * time.Minute}, clock.Now)
	require.NoError(t, err)
	return s
}

func TestRedisStoreRoundTrip(t *testing.T) {
	t.Parallel()

	backend := newFakeRedis()
	s := newTestRedisStore(t, backend, newFakeClock())
	ctx := context.Background()

	empty, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, backend.values)

	updated, err := s.Update(ctx, "s1", func(c *Cart) error {
		c.AddItem(testBook(4, "10.99"), 2)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalItems())
	assert.Equal(t, 30*time.Minute, backend.ttl("bl:cart:s1"))

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	item, ok := got.Item(4)
	require.True(t, ok)
	assert.Equal(t, "21.98", item.LineTotal().StringFixed(2))
}

func TestRedisStoreTTLTracksAbsoluteDeadline(t *testing.T) {
	t.Parallel()

	backend := newFakeRedis()
	clock := newFakeClock()
	s := newTestRedisStore(t, backend, clock)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "s1", cartWith(1, 1)))

	clock.Advance(10 * time.Minute)
	_, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, backend.ttl("bl:cart:s1"))

	clock.Advance(23*time.Hour + 40*time.Minute)
	_, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, backend.ttl("bl:cart:s1"))

	clock.Advance(10 * time.Minute)
	c, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Contains(t, backend.deleted, "bl:cart:s1")
}

func TestRedisStoreDropsCorruptDocument(t *testing.T) {
	t.Parallel()

	backend := newFakeRedis()
	backend.values["bl:cart:s1"] = "{not json"
	s := newTestRedisStore(t, backend, newFakeClock())

	c, err := s.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.NotContains(t, backend.values, "bl:cart:s1")
}

func TestRedisStoreCorruptDocumentDeleteFailure(t *testing.T) {
	t.Parallel()

	backend := newFakeRedis()
	backend.values["bl:cart:s1"] = "{not json"
	backend.delErr = errors.New("connection reset")
	s := newTestRedisStore(t, backend, newFakeClock())

	_, err := s.Get(context.Background(), "s1")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestRedisStoreBackendFailuresAreDependencyErrors(t *testing.T) {
	t.Parallel()

	backend := newFakeRedis()
	backend.getErr = errors.New("connection refused")
	s := newTestRedisStore(t, backend, newFakeClock())

	_, err := s.Get(context.Background(), "s1")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	backend.getErr = nil
	backend.setErr = errors.New("read only replica")
	err = s.Save(context.Background(), "s1", New())
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestRedisStoreSweepIsNoop(t *testing.T) {
	t.Parallel()

	s := newTestRedisStore(t, newFakeRedis(), newFakeClock())
	n, err := s.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewRedisStoreRequiresBackend(t *testing.T) {
	t.Parallel()

	_, err := NewRedisStore(nil, Expiry{}, nil)
	assert.Error(t, err)
}
