package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"path/filepath"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/docstore"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/docstore/memory"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/docstore/redis"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/docstore/sqlite"
	adapthttp "github.com/jsamuelsen11/storefront-core/internal/adapters/http"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/publisher"
	"github.com/jsamuelsen11/storefront-core/internal/app"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/health"
	"github.com/jsamuelsen11/storefront-core/internal/platform/httpclient"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

const connectTimeout = 5 * time.Second

// resources tracks what the wiring opened so shutdown can release it, and
// which components report readiness.
type resources struct {
	closers  []io.Closer
	checkers []ports.HealthChecker
}

func (r *resources) Close(logger *slog.Logger) {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			logger.Error("closing resource", slog.Any("error", err))
		}
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, res *resources) {
	do.Provide(injector, func(i do.Injector) (ports.DocumentStore, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		inner, err := openStore(cfg.Store, res)
		if err != nil {
			return nil, err
		}
		guard := docstore.NewGuard(inner, cfg.Store.Driver, cfg.Store.CircuitBreaker, metrics, logger)
		res.checkers = append(res.checkers, guard)
		return guard, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "event-gateway", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventPublisher, error) {
		switch cfg.Publisher.Driver {
		case config.PublisherWebhook:
			client := do.MustInvoke[*httpclient.Client](i)
			res.checkers = append(res.checkers, client)
			return publisher.NewWebhook(client, cfg.Publisher.WebhookPath), nil
		case config.PublisherRedis:
			rdb := goredis.NewClient(&goredis.Options{
				Addr:        cfg.Publisher.RedisAddr,
				DialTimeout: connectTimeout,
			})
			res.closers = append(res.closers, rdb)
			pub := publisher.NewRedis(rdb, cfg.Publisher.RedisChannel)
			res.checkers = append(res.checkers, pub)
			return pub, nil
		default:
			return publisher.NewLog(logger), nil
		}
	})

	do.Provide(injector, func(i do.Injector) (ports.LifecycleService, error) {
		store := do.MustInvoke[ports.DocumentStore](i)
		pub := do.MustInvoke[ports.EventPublisher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewLifecycleService(store, pub, logger,
			app.WithCollectionPrefix(cfg.Store.CollectionPrefix),
			app.WithMetrics(metrics),
			app.WithBulkWorkers(cfg.Lifecycle.BulkWorkers),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		svc := do.MustInvoke[ports.LifecycleService](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			handlers.NewLifecycleHandler(svc, lifecycle.KindRole),
			handlers.NewLifecycleHandler(svc, lifecycle.KindCategory),
			healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthChecks adds every component collected during wiring to the
// readiness registry.
func registerHealthChecks(injector *do.RootScope, res *resources) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, c := range res.checkers {
		registry.Register(c)
	}
}

// openStore opens the configured document store backend.
func openStore(cfg config.StoreConfig, res *resources) (ports.DocumentStore, error) {
	switch cfg.Driver {
	case config.StoreSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("creating sqlite directory: %w", err)
			}
		}
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		res.closers = append(res.closers, store)
		return store, nil
	case config.StoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		store, err := redis.Open(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("opening redis store: %w", err)
		}
		res.closers = append(res.closers, store)
		return store, nil
	default:
		return memory.New(), nil
	}
}
