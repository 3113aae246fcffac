//go:build !gcloud

package taskqueue

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KasumiMercury/primind-push-fanout/internal/observability/logging"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/tracing"
)

type PrimindTasksClient struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
}

func NewPrimindTasksClient(baseURL, queueName string, maxRetries int) *PrimindTasksClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &PrimindTasksClient{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *PrimindTasksClient) RegisterRedrive(ctx context.Context, task *RedriveTask) (*TaskResponse, error) {
	payload, err := task.Payload()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redrive task: %w", err)
	}

	extra := tracing.InjectToMap(ctx)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		extra[logging.RequestIDHeader] = requestID
	}

	primindReq := PrimindTaskRequest{
		Task: PrimindTask{
			HTTPRequest: PrimindHTTPRequest{
				Body:    base64.StdEncoding.EncodeToString(payload),
				Headers: taskHeaders(extra),
			},
		},
	}

	if !task.ScheduleAt.IsZero() {
		primindReq.Task.ScheduleTime = task.ScheduleAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(primindReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal primind request: %w", err)
	}

	url := fmt.Sprintf("%s/tasks", c.baseURL)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}

	return withRetry(ctx, c.maxRetries, task.RunID, func() (*TaskResponse, error) {
		return c.doRequest(ctx, url, reqBody, task.RunID)
	})
}

func (c *PrimindTasksClient) doRequest(ctx context.Context, url string, reqBody []byte, runID string) (*TaskResponse, error) {
	slog.DebugContext(ctx, "registering redrive task to Primind Tasks",
		slog.String("url", url),
		slog.String("run_id", runID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send request to Primind Tasks",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.WarnContext(ctx, "unexpected status code from Primind Tasks",
			slog.String("run_id", runID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var primindResp PrimindTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&primindResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, primindResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, primindResp.CreateTime)

	slog.InfoContext(ctx, "redrive task registered to Primind Tasks",
		slog.String("task_name", primindResp.Name),
		slog.String("run_id", runID),
	)

	return &TaskResponse{
		Name:         primindResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}
