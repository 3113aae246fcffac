//go:build gcloud

package taskqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-push-fanout/internal/observability/logging"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/tracing"
)

type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
	}, nil
}

func (c *CloudTasksClient) RegisterRedrive(ctx context.Context, task *RedriveTask) (*TaskResponse, error) {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		c.projectID, c.locationID, c.queueID)

	payload, err := task.Payload()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redrive task: %w", err)
	}

	extra := tracing.InjectToMap(ctx)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		extra[logging.RequestIDHeader] = requestID
	}

	// Named after the run so a retried registration cannot enqueue twice.
	taskName := fmt.Sprintf("%s/tasks/redrive-%s", queuePath, task.RunID)

	cloudTask := &taskspb.Task{
		Name: taskName,
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers:    taskHeaders(extra),
				Body:       payload,
			},
		},
	}

	if !task.ScheduleAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(task.ScheduleAt)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   cloudTask,
	}

	return withRetry(ctx, c.maxRetries, task.RunID, func() (*TaskResponse, error) {
		return c.createTask(ctx, req, task.RunID)
	})
}

func (c *CloudTasksClient) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, runID string) (*TaskResponse, error) {
	slog.DebugContext(ctx, "registering redrive task to Cloud Tasks",
		slog.String("queue_path", req.Parent),
		slog.String("run_id", runID),
	)

	createdTask, err := c.client.CreateTask(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			slog.InfoContext(ctx, "redrive task already registered",
				slog.String("task_name", req.Task.Name),
				slog.String("run_id", runID),
			)
			return &TaskResponse{Name: req.Task.Name}, nil
		}

		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	slog.InfoContext(ctx, "redrive task registered to Cloud Tasks",
		slog.String("task_name", createdTask.Name),
		slog.String("run_id", runID),
	)

	var scheduleTime, createTime time.Time
	if createdTask.ScheduleTime != nil {
		scheduleTime = createdTask.ScheduleTime.AsTime()
	}
	if createdTask.CreateTime != nil {
		createTime = createdTask.CreateTime.AsTime()
	}

	return &TaskResponse{
		Name:         createdTask.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
