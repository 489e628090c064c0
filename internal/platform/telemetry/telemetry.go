// Package telemetry sets up OpenTelemetry tracing and metrics for the
// service, exporting to stdout in development or OTLP/HTTP in production:
//
//	tp, err := telemetry.InitTracer(ctx, "storefront-core", "otlp", "http://collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "storefront-core", "otlp", "http://collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "storefront-core")
//
// Both providers must be shut down on exit. Metrics feeds the HTTP
// middleware, the gateway client, the document stores and the unit of work.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrUnsupportedExporter is returned for an exporter name other than
// ExporterStdout or ExporterOTLP.
var ErrUnsupportedExporter = errors.New("telemetry: unsupported exporter")

// errMissingEndpoint is returned when the otlp exporter has no endpoint.
var errMissingEndpoint = errors.New("telemetry: otlp exporter requires an endpoint")

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrCollection  = attribute.Key("store.collection")
	AttrOperation   = attribute.Key("store.operation")
	AttrStoreDriver = attribute.Key("store.driver")

	// Span attributes naming the aggregate a command targets.
	AttrAggregateKind = attribute.Key("aggregate.kind")
	AttrAggregateID   = attribute.Key("aggregate.id")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	StoreOpDuration       metric.Float64Histogram
	StoreOpTotal          metric.Int64Counter
	UoWCommitTotal        metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "otlp" uses OTLP/HTTP
// with the given endpoint; "stdout" uses a pretty-printed stdout exporter
// for development. Any other value returns ErrUnsupportedExporter.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// The exporter parameter selects the metric exporter: "otlp" uses OTLP/HTTP
// with the given endpoint; "stdout" uses a stdout exporter for development.
// Any other value returns ErrUnsupportedExporter.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers the service's instruments on mp under a meter named
// serviceName. Every registration failure is reported, not just the first.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}
	var errs []error

	seconds := func(dst *metric.Float64Histogram, name, desc string) {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
			return
		}
		*dst = h
	}
	count := func(dst *metric.Int64Counter, name, desc, unit string) {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
			return
		}
		*dst = c
	}

	seconds(&m.ServerRequestDuration, "http.server.request.duration", "Duration of inbound lifecycle command requests")
	count(&m.ServerRequestTotal, "http.server.request.total", "Inbound lifecycle command requests", "{request}")
	seconds(&m.ClientRequestDuration, "http.client.request.duration", "Duration of event gateway calls, retries included")
	count(&m.ClientRequestTotal, "http.client.request.total", "Event gateway calls by result", "{request}")
	seconds(&m.StoreOpDuration, "store.operation.duration", "Duration of document store operations")
	count(&m.StoreOpTotal, "store.operation.total", "Document store operations by collection and result", "{operation}")
	count(&m.UoWCommitTotal, "uow.commit.total", "Unit of work commits by result", "{commit}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errMissingEndpoint
		}
		target, secure := otlpTarget(endpoint)
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target)}
		if !secure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errMissingEndpoint
		}
		target, secure := otlpTarget(endpoint)
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target)}
		if !secure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// otlpTarget splits an OTLP endpoint URL into the host:port the exporters
// expect and whether TLS applies ("https://collector:4318" is TLS, a bare
// "collector:4318" is not).
func otlpTarget(endpoint string) (hostPort string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
