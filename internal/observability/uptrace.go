package observability

import (
	"context"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/foot-manager/internal/config"
	"github.com/riskibarqy/foot-manager/internal/platform/logging"
)

const tracerName = "foot-manager"

// InitUptrace configures global OpenTelemetry providers for Uptrace. The
// returned shutdown flushes pending spans.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled || cfg.UptraceDSN == "" {
		logger.Debug("uptrace disabled", "reason", "UPTRACE_ENABLED=false or UPTRACE_DSN empty")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return uptrace.Shutdown, nil
}

// StartSeasonSpan opens the root span a whole game runs under. Usecase spans
// are only recorded beneath it.
func StartSeasonSpan(ctx context.Context, cfg config.Config) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "footmanager.season",
		trace.WithAttributes(
			attribute.Int("season.clubs", len(cfg.Clubs)),
			attribute.Int64("season.seed", cfg.Seed),
			attribute.Bool("season.autoplay", cfg.AutoPlay),
		),
	)
}
