package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/booklibrary/internal/cart"
	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSweeper struct {
	evicted int
	err     error
}

func (s stubSweeper) Sweep(context.Context) (int, error) { return s.evicted, s.err }

func TestCartSweepJobEvictsExpiredCarts(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := cart.NewMemoryStore(cart.Expiry{Absolute: time.Hour, Sliding: 10 * time.Minute}, cart.WithClock(clock))
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "stale", cart.New()))
	now = now.Add(11 * time.Minute)
	require.NoError(t, store.Save(ctx, "live", cart.New()))

	reg := prometheus.NewRegistry()
	cartMetrics := metrics.NewCartMetrics(reg)
	job, err := NewCartSweepJob(CartSweepJobParams{Logger: logger.Nop(), Store: store, Metrics: cartMetrics})
	require.NoError(t, err)
	assert.Equal(t, "cart-expiry-sweep", job.Name())

	require.NoError(t, job.Run(ctx))
	assert.Equal(t, 1, store.Len())

	families, err := reg.Gather()
	require.NoError(t, err)
	var evictions float64
	for _, family := range families {
		if family.GetName() == "booklib_cart_evictions_total" {
			evictions = family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), evictions)
}

func TestCartSweepJobPropagatesErrors(t *testing.T) {
	job, err := NewCartSweepJob(CartSweepJobParams{Logger: logger.Nop(), Store: stubSweeper{err: errors.New("boom")}})
	require.NoError(t, err)
	assert.Error(t, job.Run(context.Background()))
}

func TestNewCartSweepJobValidation(t *testing.T) {
	_, err := NewCartSweepJob(CartSweepJobParams{Store: stubSweeper{}})
	assert.Error(t, err)
	_, err = NewCartSweepJob(CartSweepJobParams{Logger: logger.Nop()})
	assert.Error(t, err)
}
