package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/resource"

	sdk "go.opentelemetry.io/otel/sdk/metric"

	"github.com/looplj/objecthub/internal/log"
)

// NewProvider creates the meter provider, it returns nil when metrics are disabled.
func NewProvider(cfg Config, serviceName string) (*sdk.MeterProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	exporter, err := newExporter(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = time.Minute
	}

	return sdk.NewMeterProvider(
		sdk.WithResource(Resource(serviceName)),
		sdk.WithReader(sdk.NewPeriodicReader(exporter, sdk.WithInterval(interval))),
	), nil
}

func newExporter(ctx context.Context, cfg Config) (sdk.Exporter, error) {
	switch cfg.Exporter {
	case "", ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLPHTTP:
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, opts...)
	case ExporterOTLPGRPC:
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported metrics exporter: %s", cfg.Exporter)
	}
}

// SetupMetrics installs the provider as the global one, tagged with the service name.
func SetupMetrics(provider *sdk.MeterProvider, serviceName string) error {
	if provider == nil {
		return nil
	}

	serviceAttr = attribute.String("service.name", serviceName)

	otel.SetMeterProvider(provider)
	log.Info(context.Background(), "metrics enabled", log.String("service", serviceName))

	return nil
}

// Resource describes this service for exporters that need one.
func Resource(serviceName string) *resource.Resource {
	return resource.NewSchemaless(attribute.String("service.name", serviceName))
}
