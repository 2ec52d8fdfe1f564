package cart

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	cart       *Cart
	savedAt    time.Time
	accessedAt time.Time
}

// MemoryStore keeps carts in the process heap.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	keys    *keyLock
	expiry  Expiry
	now     Clock
}

// MemoryOption customises a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source.
func WithClock(clock Clock) MemoryOption {
	return func(s *MemoryStore) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewMemoryStore builds an in-memory store. Zero durations fall back to the defaults.
func NewMemoryStore(expiry Expiry, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		keys:    newKeyLock(),
		expiry:  expiry.withDefaults(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.load(key), nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart *Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := normalizeSessionID(sessionID)
	if err != nil {
		return err
	}
	s.store(key, cart)
	return nil
}

// Update implements Store.
func (s *MemoryStore) Update(ctx context.Context, sessionID string, fn func(*Cart) error) (*Cart, error) {
	key, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	unlock := s.keys.Lock(key)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cart := s.load(key)
	if err := fn(cart); err != nil {
		return nil, err
	}
	s.store(key, cart)
	return cart.Clone(), nil
}

// Sweep implements Store.
func (s *MemoryStore) Sweep(ctx context.Context) (int, error) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, entry := range s.entries {
		if err := ctx.Err(); err != nil {
			return evicted, err
		}
		if s.expiry.expired(now, entry.savedAt, entry.accessedAt) {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted, nil
}

// Len reports the number of entries currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) load(key string) *Cart {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return New()
	}
	if s.expiry.expired(now, entry.savedAt, entry.accessedAt) {
		delete(s.entries, key)
		return New()
	}
	entry.accessedAt = now
	return entry.cart.Clone()
}

func (s *MemoryStore) store(key string, cart *Cart) {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &memoryEntry{cart: cart.Clone(), savedAt: now, accessedAt: now}
}

func normalizeSessionID(sessionID string) (string, error) {
	key := strings.TrimSpace(sessionID)
	if key == "" {
		return "", ErrSessionRequired
	}
	return key, nil
}
