//go:build !gcloud

package fanoutrecorder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

func TestNewRecorderFallsBackToNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "disabled", cfg: &Config{Disabled: true, InfluxDBToken: "t", InfluxDBOrg: "o"}},
		{name: "missing token", cfg: &Config{InfluxDBOrg: "o"}},
		{name: "missing org", cfg: &Config{InfluxDBToken: "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewRecorder(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := rec.(*noopRecorder); !ok {
				t.Errorf("expected noop recorder, got %T", rec)
			}
		})
	}
}

func TestRunPoint(t *testing.T) {
	at := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	point := runPoint(domain.FanoutRunRecord{
		RunID:       "run-1",
		RequestID:   "r1",
		ServiceType: "Plumbing",
		Stage:       "report_built",
		Eligible:    2,
		Tokens:      3,
		Succeeded:   2,
		Failed:      1,
		Duration:    1500 * time.Millisecond,
		RecordedAt:  at,
	})

	line := write.PointToLineProtocol(point, time.Second)

	for _, want := range []string{
		"fanout_run,",
		"run_id=run-1",
		"service_type=Plumbing",
		"stage=report_built",
		"succeeded=2i",
		"failed=1i",
		"duration_ms=1500i",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line protocol %q missing %q", line, want)
		}
	}
}
