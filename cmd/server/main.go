// Command server runs the storefront lifecycle service: role and category
// commands over HTTP, persisted through the configured document store and
// announced through the configured event publisher.
//
// STOREFRONT_PROFILE picks configs/{profile}.yaml. The process drains
// in-flight commands on SIGINT or SIGTERM before closing the store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/storefront-core/internal/adapters/http"
	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "storefront-core: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv(config.ProfileEnv)
	if profile == "" {
		return fmt.Errorf("%s must name a profile in configs/ (local, dev, prod)", config.ProfileEnv)
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr).
		With(slog.String("profile", profile))

	obs, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer obs.flush(logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, obs.metrics)

	res := &resources{}
	defer res.Close(logger)
	registerDependencies(injector, cfg, logger, res)

	// Invoking the server resolves the whole graph, which opens the store
	// and fills res.checkers.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring service: %w", err)
	}
	registerHealthChecks(injector, res)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	shutdownErr := server.Shutdown(drainCtx)
	if err := errors.Join(shutdownErr, <-served); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// observability owns the OpenTelemetry providers. With telemetry disabled
// every field is nil and instrumented components skip recording.
type observability struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*observability, error) {
	if !cfg.Enabled {
		return &observability{}, nil
	}

	o := &observability{}
	var err error
	if o.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, err
	}
	if o.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err == nil {
		o.metrics, err = telemetry.NewMetrics(o.meter, cfg.ServiceName)
	}
	if err != nil {
		_ = o.shutdown(ctx)
		return nil, err
	}
	return o, nil
}

// shutdown flushes pending spans and metric points. Nil providers are
// skipped.
func (o *observability) shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (o *observability) flush(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := o.shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
