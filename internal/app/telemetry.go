package app

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type metrics struct {
	bookingsCreated   metric.Int64Counter
	bookingsCancelled metric.Int64Counter
}

// newMetrics registers the instruments on the global meter provider. Until
// InitTelemetry installs a real provider these are no-ops, which is what
// handler tests rely on.
func newMetrics() (metrics, error) {
	meter := otel.Meter("github.com/anshika-1705/movieapp")

	created, err := meter.Int64Counter("bookings.created",
		metric.WithDescription("Number of bookings created"),
	)
	if err != nil {
		return metrics{}, err
	}

	cancelled, err := meter.Int64Counter("bookings.cancelled",
		metric.WithDescription("Number of bookings cancelled"),
	)
	if err != nil {
		return metrics{}, err
	}

	return metrics{
		bookingsCreated:   created,
		bookingsCancelled: cancelled,
	}, nil
}

// InitTelemetry initializes the OpenTelemetry meter provider and returns a
// shutdown function.
func (app *Application) InitTelemetry() (func(context.Context), error) {
	if app.config.OtelCollectorUrl == "" {
		app.logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("movie-booking-api"),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(app.config.Env),
		),
	)
	if err != nil {
		return nil, errors.New("failed to create otel resource")
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(app.config.OtelCollectorUrl),
	)
	if err != nil {
		return nil, errors.New("failed to create otel metric exporter")
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(15*time.Second))),
	)

	otel.SetMeterProvider(meterProvider)

	// Re-create the instruments on the real provider.
	app.metrics, err = newMetrics()
	if err != nil {
		return nil, err
	}

	shutdown := func(ctx context.Context) {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := meterProvider.Shutdown(shutdownCtx)
		if err != nil {
			app.logger.Error("failed to shutdown telemetry provider", "error", err)
		}
	}

	return shutdown, nil
}
