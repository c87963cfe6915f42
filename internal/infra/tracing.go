package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/fx"

	"sumstats.dev/explorer/internal/app/appconfig"
	"sumstats.dev/explorer/internal/app/appcontext"
	"sumstats.dev/explorer/internal/pkg/bininfo"
	"sumstats.dev/explorer/internal/pkg/observability"
)

// TracingInit installs the global OpenTelemetry tracer provider when tracing is enabled.
// Spans are flushed when the fx app stops.
func TracingInit(conf *appconfig.Config, lc fx.Lifecycle) error {
	if !conf.TracingEnabled {
		return nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			attribute.Bool("dev_mode", conf.DevMode),
			attribute.Bool("cli", conf.AppContext.Env == appcontext.EnvCLI),
		)),
	}

	for _, name := range conf.TracingExporters {
		var (
			exporter tracesdk.SpanExporter
			err      error
		)
		switch name {
		case appconfig.TracingExporterOTLP:
			exporter, err = otlptracegrpc.New(context.Background())
		case appconfig.TracingExporterStdout:
			exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		default:
			err = errors.Errorf("unknown tracing exporter %q", name)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to create %s tracing exporter", name)
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	log.Info().
		Str("evt.name", "infra.tracing.init").
		Strs("exporters", conf.TracingExporters).
		Float64("sample_rate", conf.TracingSampleRate).
		Msg("OpenTelemetry tracing enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return nil
}
