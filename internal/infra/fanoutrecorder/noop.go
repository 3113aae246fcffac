package fanoutrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.FanoutResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordRun(_ context.Context, _ domain.FanoutRunRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
