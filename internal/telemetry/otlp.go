package telemetry

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName identifies spans emitted by this service.
const TracerName = "houseprice/estimator"

// Options configures trace export.
type Options struct {
	// Endpoint is host:port or a full URL (http://collector:4318) of an
	// OTLP/HTTP collector. Empty disables export.
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer used around estimates.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates an OTLP exporter when opts.Endpoint is set, and a no-op
// tracer otherwise.
func Setup(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(TracerName)}, nil
	}
	exOpts := []otlptracehttp.Option{endpointOption(opts.Endpoint)}
	if opts.Insecure {
		exOpts = append(exOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exOpts...)
	if err != nil {
		return nil, err
	}
	name := opts.ServiceName
	if name == "" {
		name = "houseprice"
	}
	res := resource.NewSchemaless(attribute.String("service.name", name))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{provider: tp, tracer: tp.Tracer(TracerName)}, nil
}

// tracesPath is where OTLP/HTTP collectors accept spans.
const tracesPath = "/v1/traces"

// endpointOption accepts the URL form used by OTEL_EXPORTER_OTLP_ENDPOINT as
// well as a bare host:port. A URL's scheme decides TLS. A URL without a path
// gets /v1/traces; an explicit path is kept.
func endpointOption(endpoint string) otlptracehttp.Option {
	if !strings.Contains(endpoint, "://") {
		return otlptracehttp.WithEndpoint(endpoint)
	}
	if u, err := url.Parse(endpoint); err == nil && strings.Trim(u.Path, "/") == "" {
		u.Path = tracesPath
		endpoint = u.String()
	}
	return otlptracehttp.WithEndpointURL(endpoint)
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p != nil && p.provider != nil }

// Tracer returns the tracer, never nil.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil || p.tracer == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.tracer
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
