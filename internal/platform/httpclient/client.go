// Package httpclient delivers committed lifecycle events to the downstream
// event gateway. A call to Do goes through, in order:
//
//	circuit breaker → rate limiter → id headers → client span → retry → net/http
//
// The webhook publisher is the only caller:
//
//	client := httpclient.New(&cfg.Client, "event-gateway", metrics, logger)
//	err := client.PostJSON(ctx, "/events", batch)
//
// The inbound middleware stores X-Request-ID and X-Correlation-ID with
// WithRequestID and WithCorrelationID; Do forwards them so the gateway can
// tie an event batch to the command that produced it.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a copy of ctx whose outbound requests carry
// X-Request-ID: id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a copy of ctx whose outbound requests carry
// X-Correlation-ID: id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client posts to one downstream service with a circuit breaker, an optional
// rate limit, retries and tracing.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retry       config.RetryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New returns a Client for the service named serviceName at cfg.BaseURL.
// serviceName labels spans, metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: uint32(min(max(cfg.CircuitBreaker.HalfOpenLimit, 0), math.MaxUint32)),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A command whose caller went away says nothing about the gateway.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     breaker,
		limiter:     limiter,
		retry:       cfg.Retry,
		metrics:     metrics,
		logger:      logger,
	}
}

// Do sends req and returns the final response, whose body the caller closes.
//
// A non-retryable status comes back with a nil error. When retries run out on
// a retryable status, both the last response and an error are returned. A
// breaker rejection, a rate-limit wait cut short by ctx, or a transport
// failure returns a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("waiting for %s rate limit: %w", c.serviceName, err)
			}
		}

		c.injectHeaders(ctx, req)
		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var resp *http.Response
		err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &resp)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// Name returns the downstream service name. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck reports the breaker state without calling the service: open is
// failing, half-open is degraded, closed is healthy.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan opens the client span and writes W3C trace context into req's
// headers so the gateway joins the command's trace.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			attribute.String("http.url", req.URL.String()),
			telemetry.AttrPeerService.String(c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(callResult(status, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// callResult labels one Do call for the client metrics.
func callResult(status int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case status == 0 || status >= http.StatusInternalServerError || err != nil:
		return "error"
	case status >= http.StatusBadRequest:
		return "rejected"
	default:
		return "success"
	}
}
