package cart

import (
	"context"
	"time"
)

const (
	// DefaultAbsoluteTTL bounds how long a cart lives after its last save.
	DefaultAbsoluteTTL = 24 * time.Hour
	// DefaultSlidingTTL bounds how long a cart lives after its last access.
	DefaultSlidingTTL = 30 * time.Minute
)

// Store maps session ids to carts with dual expiry.
type Store interface {
	// Get returns the session's cart, or a fresh empty cart when none is live.
	// It never creates an entry.
	Get(ctx context.Context, sessionID string) (*Cart, error)
	// Save stores cart for the session and restarts both expiry clocks.
	Save(ctx context.Context, sessionID string, cart *Cart) error
	// Update runs fn on the session's cart and saves the result. Calls for the
	// same session are serialised. If fn fails nothing is saved.
	Update(ctx context.Context, sessionID string, fn func(*Cart) error) (*Cart, error)
	// Sweep evicts expired entries and reports how many were removed.
	Sweep(ctx context.Context) (int, error)
}

// Clock reports the current time.
type Clock func() time.Time

// Expiry holds the absolute and sliding lifetimes of a stored cart.
type Expiry struct {
	Absolute time.Duration
	Sliding  time.Duration
}

func (e Expiry) withDefaults() Expiry {
	if e.Absolute <= 0 {
		e.Absolute = DefaultAbsoluteTTL
	}
	if e.Sliding <= 0 {
		e.Sliding = DefaultSlidingTTL
	}
	return e
}

// expired reports whether an entry saved at savedAt and last read at accessedAt is dead at now.
func (e Expiry) expired(now, savedAt, accessedAt time.Time) bool {
	return !now.Before(savedAt.Add(e.Absolute)) || !now.Before(accessedAt.Add(e.Sliding))
}

// remaining is how long an entry saved at savedAt may live if accessed at now.
func (e Expiry) remaining(now, savedAt time.Time) time.Duration {
	left := e.Absolute - now.Sub(savedAt)
	if e.Sliding < left {
		return e.Sliding
	}
	return left
}
