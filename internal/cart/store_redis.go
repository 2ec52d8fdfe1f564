package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/angelmondragon/booklibrary/pkg/errors"
	"github.com/angelmondragon/booklibrary/pkg/redis"
)

// redisBackend is the slice of pkg/redis.Client used by RedisStore.
type redisBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

type redisDocument struct {
	Items   []Item    `json:"items"`
	SavedAt time.Time `json:"saved_at"`
}

// RedisStore keeps one JSON document per session and lets redis expire it.
// Updates are serialised per session inside this process only.
type RedisStore struct {
	backend redisBackend
	keys    *keyLock
	expiry  Expiry
	now     Clock
}

// NewRedisStore builds a redis-backed store. Zero durations fall back to the defaults.
func NewRedisStore(backend redisBackend, expiry Expiry, clock Clock) (*RedisStore, error) {
	if backend == nil {
		return nil, errors.New("redis backend required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &RedisStore{
		backend: backend,
		keys:    newKeyLock(),
		expiry:  expiry.withDefaults(),
		now:     clock,
	}, nil
}

// Get implements Store. A live document has its TTL pushed out on every read.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	key, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, s.backend.CartKey(key))
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *Cart) error {
	key, err := normalizeSessionID(sessionID)
	if err != nil {
		return err
	}
	return s.store(ctx, s.backend.CartKey(key), cart)
}

// Update implements Store.
func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(*Cart) error) (*Cart, error) {
	key, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	unlock := s.keys.Lock(key)
	defer unlock()

	redisKey := s.backend.CartKey(key)
	cart, err := s.load(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := s.store(ctx, redisKey, cart); err != nil {
		return nil, err
	}
	return cart.Clone(), nil
}

// Sweep implements Store. Redis expires keys on its own, so there is nothing to do.
func (s *RedisStore) Sweep(context.Context) (int, error) {
	return 0, nil
}

func (s *RedisStore) load(ctx context.Context, key string) (*Cart, error) {
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var doc redisDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		if err := s.backend.Del(ctx, key); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "drop corrupt cart")
		}
		return New(), nil
	}

	ttl := s.expiry.remaining(s.now(), doc.SavedAt)
	if ttl <= 0 {
		if err := s.backend.Del(ctx, key); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "evict cart")
		}
		return New(), nil
	}
	if _, err := s.backend.Expire(ctx, key, ttl); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "refresh cart ttl")
	}

	cart := &Cart{Items: doc.Items}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return cart, nil
}

func (s *RedisStore) store(ctx context.Context, key string, cart *Cart) error {
	now := s.now()
	payload, err := json.Marshal(redisDocument{Items: cart.Clone().Items, SavedAt: now})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.backend.Set(ctx, key, string(payload), s.expiry.remaining(now, now)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}
