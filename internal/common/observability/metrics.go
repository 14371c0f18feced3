// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider     *metric.MeterProvider
	meter             otelmetric.Meter
	predictionCounter otelmetric.Int64Counter
	scoreDuration     otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	predictionCounter, _ := meter.Int64Counter(
		"predictions.served",
		otelmetric.WithDescription("Number of predictions served"),
	)

	scoreDuration, _ := meter.Float64Histogram(
		"predictions.duration",
		otelmetric.WithDescription("Scoring call duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:     provider,
		meter:             meter,
		predictionCounter: predictionCounter,
		scoreDuration:     scoreDuration,
	}
}

func (o *Observability) RecordPrediction(ctx context.Context, risk, path string) {
	if o.predictionCounter != nil {
		o.predictionCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("risk", risk),
			attribute.String("path", path),
		))
	}
}

func (o *Observability) RecordScoreDuration(ctx context.Context, duration time.Duration) {
	if o.scoreDuration != nil {
		o.scoreDuration.Record(ctx, float64(duration.Microseconds())/1000.0)
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
