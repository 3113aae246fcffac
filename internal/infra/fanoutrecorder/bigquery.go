//go:build gcloud

package fanoutrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt   time.Time `bigquery:"recorded_at"`
	RunID        string    `bigquery:"run_id"`
	RequestID    string    `bigquery:"request_id"`
	ServiceType  string    `bigquery:"service_type"`
	Stage        string    `bigquery:"stage"`
	ShortCircuit string    `bigquery:"short_circuit"`
	Eligible     int64     `bigquery:"eligible"`
	Tokens       int64     `bigquery:"tokens"`
	Succeeded    int64     `bigquery:"succeeded"`
	Failed       int64     `bigquery:"failed"`
	DurationMs   int64     `bigquery:"duration_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.FanoutResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "fanout result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, fanout result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, fanout result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "fanout result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordRun(ctx context.Context, record domain.FanoutRunRecord) error {
	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	row := &bigQueryRecord{
		RecordedAt:   recordedAt,
		RunID:        record.RunID,
		RequestID:    record.RequestID,
		ServiceType:  record.ServiceType,
		Stage:        record.Stage,
		ShortCircuit: record.ShortCircuit,
		Eligible:     int64(record.Eligible),
		Tokens:       int64(record.Tokens),
		Succeeded:    int64(record.Succeeded),
		Failed:       int64(record.Failed),
		DurationMs:   record.Duration.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert fanout result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
