package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// UpstreamMetrics holds instruments for calls to the Langflow instance.
type UpstreamMetrics struct {
	requestTotal    metric.Int64Counter
	requestDuration metric.Float64Histogram
	retryTotal      metric.Int64Counter
}

// NewUpstreamMetrics creates upstream instruments on the given meter.
// Pass a nil meter to use the global one.
func NewUpstreamMetrics(meter metric.Meter) (*UpstreamMetrics, error) {
	if meter == nil {
		meter = otel.Meter(tracerName)
	}

	requestTotal, err := meter.Int64Counter("upstream.request.total",
		metric.WithDescription("Total requests to the Langflow instance"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating upstream.request.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("upstream.request.duration",
		metric.WithDescription("Duration of upstream requests, retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating upstream.request.duration histogram: %w", err)
	}

	retryTotal, err := meter.Int64Counter("upstream.retry.total",
		metric.WithDescription("Retried upstream request attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating upstream.retry.total counter: %w", err)
	}

	return &UpstreamMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		retryTotal:      retryTotal,
	}, nil
}

// RecordRequest records one completed upstream request.
func (m *UpstreamMetrics) RecordRequest(ctx context.Context, method, path, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", status),
	)
	m.requestTotal.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
}

// RecordRetry records one retried attempt.
func (m *UpstreamMetrics) RecordRetry(ctx context.Context, method, path string) {
	m.retryTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
}
