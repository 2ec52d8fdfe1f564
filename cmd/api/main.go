package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/booklibrary/api/controllers"
	"github.com/angelmondragon/booklibrary/api/routes"
	"github.com/angelmondragon/booklibrary/internal/cart"
	"github.com/angelmondragon/booklibrary/internal/catalog"
	"github.com/angelmondragon/booklibrary/internal/cron"
	"github.com/angelmondragon/booklibrary/pkg/config"
	"github.com/angelmondragon/booklibrary/pkg/instance"
	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/metrics"
	"github.com/angelmondragon/booklibrary/pkg/redis"
	"github.com/angelmondragon/booklibrary/pkg/session"
)

const serviceName = "booklibrary-api"

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	cartMetrics := metrics.NewCartMetrics(registry)

	books, err := catalog.New(catalog.Options{
		PageSize:        cfg.Catalog.PageSize,
		SearchCacheSize: cfg.Catalog.SearchCacheSize,
	})
	if err != nil {
		return err
	}

	expiry := cart.Expiry{Absolute: cfg.Cart.AbsoluteTTL, Sliding: cfg.Cart.SlidingTTL}
	readyChecks := map[string]controllers.Pinger{}

	var (
		store     cart.Store
		sweepLock cron.Lock = &cron.LocalLock{}
	)
	if cfg.Cart.UsesRedis() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		if store, err = cart.NewRedisStore(redisClient, expiry, time.Now); err != nil {
			return err
		}
		lockKey := redisClient.LockKey(cron.CartSweepJobName + ":" + cfg.App.Env)
		if sweepLock, err = cron.NewRedisLock(redisClient, lockKey, cfg.Cart.SweepInterval); err != nil {
			return err
		}
		readyChecks["redis"] = redisClient
	} else {
		store = cart.NewMemoryStore(expiry)
	}

	cartService, err := cart.NewService(store, books, cart.ServiceOptions{
		SharedFallback: cfg.Cart.SharedFallback,
		Logger:         logg,
		Metrics:        cartMetrics,
	})
	if err != nil {
		return err
	}

	issuer, err := session.NewIssuer(cfg.Session)
	if err != nil {
		return err
	}

	sweepJob, err := cron.NewCartSweepJob(cron.CartSweepJobParams{Logger: logg, Store: store, Metrics: cartMetrics})
	if err != nil {
		return err
	}
	sweeper, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(sweepJob),
		Lock:     sweepLock,
		Metrics:  metrics.NewCronJobMetrics(registry),
		Interval: cfg.Cart.SweepInterval,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr: ":" + cfg.App.Port,
		Handler: routes.NewRouter(routes.Params{
			Config:      cfg,
			Logger:      logg,
			Catalog:     books,
			CartService: cartService,
			Sessions:    issuer,
			ReadyChecks: readyChecks,
			Gatherer:    registry,
			HTTPMetrics: metrics.NewHTTPMetrics(registry),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"addr":        server.Addr,
		"cart_driver": cfg.Cart.Driver,
		"instance":    instance.GetID(),
	})
	logg.Info(logCtx, "starting api server")

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		return sweeper.Run(groupCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownWait)
		defer cancel()
		logg.Info(logCtx, "shutting down api server")
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
