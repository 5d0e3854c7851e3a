package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// HTTPMetrics holds the HTTP server instruments.
type HTTPMetrics struct {
	requestDuration metric.Float64Histogram
	activeRequests  metric.Int64UpDownCounter
}

// NewHTTPMetrics creates the HTTP server instruments on the global meter provider.
func NewHTTPMetrics() (*HTTPMetrics, error) {
	meter := otel.Meter(InstrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests, including open event streams"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{requestDuration: requestDuration, activeRequests: activeRequests}, nil
}

// Middleware returns the otelgin tracer followed by request metrics and the
// X-Trace-ID response header.
func Middleware(serviceName string) []gin.HandlerFunc {
	metrics, err := NewHTTPMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return []gin.HandlerFunc{otelgin.Middleware(serviceName), metrics.handler}
}

func (m *HTTPMetrics) handler(c *gin.Context) {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		c.Header("X-Trace-ID", span.SpanContext().TraceID().String())
	}

	if m == nil {
		c.Next()
		return
	}

	ctx := c.Request.Context()
	route := metric.WithAttributes(
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	)

	start := time.Now()

	m.activeRequests.Add(ctx, 1, route)
	defer m.activeRequests.Add(ctx, -1, route)

	c.Next()

	m.requestDuration.Record(ctx, time.Since(start).Seconds(),
		route,
		metric.WithAttributes(attribute.Int("http.status_code", c.Writer.Status())),
	)
}
