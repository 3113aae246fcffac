package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	fanoutMeterName = "fanout.service"
)

type FanoutMetrics struct {
	runsTotal        metric.Int64Counter
	deliveriesTotal  metric.Int64Counter
	runDuration      metric.Float64Histogram
	exchangeDuration metric.Float64Histogram
	redriveEnqueued  metric.Int64Counter
}

func NewFanoutMetrics() (*FanoutMetrics, error) {
	meter := otel.Meter(fanoutMeterName)

	runsTotal, err := meter.Int64Counter(
		"fanout_runs_total",
		metric.WithDescription("Total number of fanout runs by final stage"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	deliveriesTotal, err := meter.Int64Counter(
		"fanout_deliveries_total",
		metric.WithDescription("Total number of push deliveries by status"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"fanout_run_duration_seconds",
		metric.WithDescription("Fanout run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	exchangeDuration, err := meter.Float64Histogram(
		"fanout_credential_exchange_duration_seconds",
		metric.WithDescription("Time spent exchanging service-account credentials"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	redriveEnqueued, err := meter.Int64Counter(
		"fanout_redrive_tasks_total",
		metric.WithDescription("Total number of redrive task registrations by outcome"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	return &FanoutMetrics{
		runsTotal:        runsTotal,
		deliveriesTotal:  deliveriesTotal,
		runDuration:      runDuration,
		exchangeDuration: exchangeDuration,
		redriveEnqueued:  redriveEnqueued,
	}, nil
}

func (m *FanoutMetrics) RecordRun(ctx context.Context, stage, shortCircuit string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := appendLoadtestLabels(ctx, []attribute.KeyValue{
		attribute.String("stage", stage),
		attribute.String("short_circuit", shortCircuit),
	})
	m.runsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

func (m *FanoutMetrics) RecordDeliveries(ctx context.Context, succeeded, failed int) {
	if m == nil {
		return
	}
	if succeeded > 0 {
		m.deliveriesTotal.Add(ctx, int64(succeeded), metric.WithAttributes(
			appendLoadtestLabels(ctx, []attribute.KeyValue{attribute.String("status", "delivered")})...,
		))
	}
	if failed > 0 {
		m.deliveriesTotal.Add(ctx, int64(failed), metric.WithAttributes(
			appendLoadtestLabels(ctx, []attribute.KeyValue{attribute.String("status", "failed")})...,
		))
	}
}

func (m *FanoutMetrics) RecordCredentialExchange(ctx context.Context, strategy string, duration time.Duration, success bool) {
	if m == nil {
		return
	}
	m.exchangeDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.Bool("success", success),
	))
}

func (m *FanoutMetrics) RecordRedriveEnqueued(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.redriveEnqueued.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
