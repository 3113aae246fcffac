package taskqueue

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

func backoffFor(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
}

// withRetry runs fn up to maxRetries times with exponential backoff between attempts.
func withRetry[T any](ctx context.Context, maxRetries int, runID string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := backoffFor(attempt)
			slog.DebugContext(ctx, "retrying task registration",
				slog.String("run_id", runID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := fn()
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for task registration",
		slog.String("run_id", runID),
		slog.Int("max_retries", maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return zero, fmt.Errorf("failed to register task after %d retries: %w", maxRetries, lastErr)
}

func taskHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	for k, v := range extra {
		headers[k] = v
	}
	return headers
}
