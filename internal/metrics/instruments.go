package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/looplj/objecthub"

var (
	serviceAttr = attribute.String("service.name", "objecthub")

	instrumentsOnce    sync.Once
	paramResolutions   metric.Int64Counter
	httpRequests       metric.Int64Counter
	httpRequestLatency metric.Float64Histogram
)

func initInstruments() {
	instrumentsOnce.Do(func() {
		meter := otel.Meter(meterName)

		paramResolutions, _ = meter.Int64Counter("objecthub.param.resolutions",
			metric.WithDescription("Data object argument resolutions by outcome"))
		httpRequests, _ = meter.Int64Counter("objecthub.http.requests",
			metric.WithDescription("HTTP requests by route and status"))
		httpRequestLatency, _ = meter.Float64Histogram("objecthub.http.request.duration",
			metric.WithDescription("HTTP request latency"),
			metric.WithUnit("s"))
	})
}

// RecordParamResolution counts one argument resolution.
func RecordParamResolution(ctx context.Context, class, outcome string) {
	initInstruments()

	if paramResolutions == nil {
		return
	}

	paramResolutions.Add(ctx, 1, metric.WithAttributes(
		serviceAttr,
		attribute.String("class", class),
		attribute.String("outcome", outcome),
	))
}

// RecordHTTPRequest counts one served request and its latency in seconds.
func RecordHTTPRequest(ctx context.Context, route string, status int, seconds float64) {
	initInstruments()

	attrs := metric.WithAttributes(
		serviceAttr,
		attribute.String("route", route),
		attribute.Int("status", status),
	)

	if httpRequests != nil {
		httpRequests.Add(ctx, 1, attrs)
	}

	if httpRequestLatency != nil {
		httpRequestLatency.Record(ctx, seconds, attrs)
	}
}
