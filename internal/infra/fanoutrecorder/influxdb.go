//go:build !gcloud

package fanoutrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

const runMeasurement = "fanout_run"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.FanoutResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "fanout result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, fanout result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "fanout result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordRun(ctx context.Context, record domain.FanoutRunRecord) error {
	if err := r.writeAPI.WritePoint(ctx, runPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write fanout result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
			slog.String("stage", record.Stage),
		)
	}
	return nil
}

func runPoint(record domain.FanoutRunRecord) *write.Point {
	pointTime := record.RecordedAt
	if pointTime.IsZero() {
		pointTime = time.Now()
	}

	tags := map[string]string{
		"run_id":       record.RunID,
		"service_type": record.ServiceType,
		"stage":        record.Stage,
	}
	// Line protocol rejects empty tag values.
	if record.ShortCircuit != "" {
		tags["short_circuit"] = record.ShortCircuit
	}

	return influxdb2.NewPoint(
		runMeasurement,
		tags,
		map[string]any{
			"request_id":  record.RequestID,
			"eligible":    record.Eligible,
			"tokens":      record.Tokens,
			"succeeded":   record.Succeeded,
			"failed":      record.Failed,
			"duration_ms": record.Duration.Milliseconds(),
		},
		pointTime,
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
