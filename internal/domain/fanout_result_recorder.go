package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=fanout_result_recorder.go -destination=fanout_result_recorder_mock.go -package=domain

type FanoutRunRecord struct {
	RunID        string
	RequestID    string
	ServiceType  string
	Stage        string
	ShortCircuit string
	Eligible     int
	Tokens       int
	Succeeded    int
	Failed       int
	Duration     time.Duration
	RecordedAt   time.Time
}

type FanoutResultRecorder interface {
	RecordRun(ctx context.Context, record FanoutRunRecord) error
	Flush(ctx context.Context) error
	Close() error
}
