package cron

import (
	"context"
	"fmt"

	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/metrics"
)

// CartSweepJobName identifies the expired-cart sweep in logs and metrics.
const CartSweepJobName = "cart-expiry-sweep"

type cartSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// CartSweepJobParams configure the expired-cart sweep.
type CartSweepJobParams struct {
	Logger  *logger.Logger
	Store   cartSweeper
	Metrics *metrics.CartMetrics
}

type cartSweepJob struct {
	logg    *logger.Logger
	store   cartSweeper
	metrics *metrics.CartMetrics
}

// NewCartSweepJob builds the job that evicts carts whose expiry has elapsed.
func NewCartSweepJob(params CartSweepJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &cartSweepJob{
		logg:    params.Logger,
		store:   params.Store,
		metrics: params.Metrics,
	}, nil
}

func (j *cartSweepJob) Name() string { return CartSweepJobName }

func (j *cartSweepJob) Run(ctx context.Context) error {
	evicted, err := j.store.Sweep(ctx)
	j.metrics.AddEvictions(evicted)
	if err != nil {
		return fmt.Errorf("sweep carts: %w", err)
	}
	if evicted > 0 {
		j.logg.Info(j.logg.WithField(ctx, "evicted", evicted), "expired carts evicted")
	}
	return nil
}
