package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/flashbar-dev/flashbar/pkg/status"
)

// Default tracer name for flashbar servers.
const defaultTracerName = "flashbar"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "flashbar").
	TracerName string

	// IncludeQuery includes the raw query string in spans.
	// May contain sensitive information - disabled by default.
	IncludeQuery bool

	// Filter determines which requests to trace.
	// Return true to trace the request, false to skip.
	// If nil, all requests are traced.
	Filter func(r *http.Request) bool

	// AttributeExtractor extracts custom attributes from the request.
	// Called for each traced request.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeQuery enables including the query string in spans.
func WithIncludeQuery(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeQuery = include
	}
}

// WithRequestFilter sets a filter function for requests.
func WithRequestFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(r *http.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates middleware that traces every HTTP request.
//
// The middleware:
//   - Creates a span per request named "flashbar.<method> <path>"
//   - Injects the span context into the request context for downstream calls
//   - Records the response status and marks 5xx responses as errors
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	    sdktrace.WithResource(resource.NewWithAttributes(
//	        semconv.SchemaURL,
//	        semconv.ServiceName("my-app"),
//	    )),
//	)
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) func(http.Handler) http.Handler {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			spanName := fmt.Sprintf("flashbar.%s %s", r.Method, r.URL.Path)

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.path", r.URL.Path),
			}
			if config.IncludeQuery && r.URL.RawQuery != "" {
				attrs = append(attrs, attribute.String("http.query", r.URL.RawQuery))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(r)...)
			}

			spanCtx, span := config.tracer.Start(
				r.Context(),
				spanName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(spanCtx))

			span.SetAttributes(attribute.Int("http.status_code", sw.code))
			if sw.code >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sw.code))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

// TraceToast records a toast emission as a span event on the current
// span, if any. Servers call this when pushing a toast to clients so
// notification traffic shows up alongside request traces.
func TraceToast(ctx context.Context, severity status.Severity, message string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("flashbar.toast", trace.WithAttributes(
		attribute.String("toast.severity", string(severity)),
		attribute.String("toast.message", message),
	))
}
