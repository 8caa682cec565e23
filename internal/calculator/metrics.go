package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments, replaced by InitMetrics. The no-op defaults keep
// Dispatch usable before metrics are initialised.
var (
	pageCounter   metric.Int64Counter     = noop.Int64Counter{}
	pageHistogram metric.Float64Histogram = noop.Float64Histogram{}
	opsCounter    metric.Int64Counter     = noop.Int64Counter{}
	errorCounter  metric.Int64Counter     = noop.Int64Counter{}
	historyGauge  metric.Int64Gauge       = noop.Int64Gauge{}
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	pageCounter, err = meter.Int64Counter("calculator.pages.total",
		metric.WithDescription("Total number of pages dispatched"),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		return fmt.Errorf("creating page counter: %w", err)
	}

	pageHistogram, err = meter.Float64Histogram("calculator.page.duration",
		metric.WithDescription("Duration of page handlers in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating page histogram: %w", err)
	}

	opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of successful calculator operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of calculator errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	historyGauge, err = meter.Int64Gauge("calculator.history.size",
		metric.WithDescription("Number of entries in the answer history"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return fmt.Errorf("creating history gauge: %w", err)
	}

	return nil
}
