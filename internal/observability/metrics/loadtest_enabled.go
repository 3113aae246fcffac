//go:build loadtest

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
)

const loadtestRunBaggageKey = "loadtest.run_id"

// appendLoadtestLabels tags series with the load-test run carried in baggage.
func appendLoadtestLabels(ctx context.Context, attrs []attribute.KeyValue) []attribute.KeyValue {
	runID := baggage.FromContext(ctx).Member(loadtestRunBaggageKey).Value()
	if runID == "" {
		return attrs
	}
	return append(attrs, attribute.String("loadtest_run_id", runID))
}
